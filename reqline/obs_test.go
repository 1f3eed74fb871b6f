package reqline

import (
	"sync"

	"dqx0.com/go/framing/internal/obs"
)

type logEvent struct {
	level  obs.Level
	event  string
	fields map[string]any
}

type recordLogger struct {
	mu     sync.Mutex
	events []logEvent
}

func (l *recordLogger) Log(level obs.Level, event string, fields ...obs.Field) {
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[f.Key] = f.Value
	}
	l.mu.Lock()
	l.events = append(l.events, logEvent{level: level, event: event, fields: m})
	l.mu.Unlock()
}

func (l *recordLogger) find(event string) (logEvent, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.events {
		if e.event == event {
			return e, true
		}
	}
	return logEvent{}, false
}

type recordMeter struct {
	mu       sync.Mutex
	counters map[string]float64
	samples  int
}

func (m *recordMeter) Counter(name string, value float64, labels ...obs.Label) {
	key := name
	for _, l := range labels {
		key += "," + l.Key + "=" + l.Value
	}
	m.mu.Lock()
	if m.counters == nil {
		m.counters = make(map[string]float64)
	}
	m.counters[key] += value
	m.mu.Unlock()
}

func (m *recordMeter) Histogram(name string, value float64, labels ...obs.Label) {
	m.mu.Lock()
	m.samples++
	m.mu.Unlock()
}

func (m *recordMeter) count(key string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[key]
}
