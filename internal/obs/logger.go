package obs

import (
	"github.com/rs/zerolog"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Field is one key/value attached to a log event.
type Field struct {
	Key   string
	Value any
}

// F builds a Field.
func F(key string, value any) Field { return Field{Key: key, Value: value} }

// Logger receives structured events. Implementations must be safe for
// concurrent use; every connection logs through the same value.
type Logger interface {
	Log(level Level, event string, fields ...Field)
}

// NopLogger discards all logs.
type NopLogger struct{}

func (NopLogger) Log(level Level, event string, fields ...Field) {}

// Zerolog adapts a zerolog.Logger.
type Zerolog struct {
	L zerolog.Logger
}

// NewZerolog returns a Logger writing through l.
func NewZerolog(l zerolog.Logger) Zerolog { return Zerolog{L: l} }

func (z Zerolog) Log(level Level, event string, fields ...Field) {
	e := z.L.WithLevel(zerologLevel(level))
	if e == nil {
		return
	}
	for _, f := range fields {
		switch v := f.Value.(type) {
		case error:
			e = e.AnErr(f.Key, v)
		case string:
			e = e.Str(f.Key, v)
		case map[string]string:
			d := zerolog.Dict()
			for k, hv := range v {
				d = d.Str(k, hv)
			}
			e = e.Dict(f.Key, d)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	e.Msg(event)
}

func zerologLevel(l Level) zerolog.Level {
	switch l {
	case Debug:
		return zerolog.DebugLevel
	case Info:
		return zerolog.InfoLevel
	case Warn:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	default:
		return zerolog.NoLevel
	}
}

// ParseLevel maps a level name ("debug", "info", ...) to a zerolog level,
// defaulting to info.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
