package reqline

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"dqx0.com/go/framing/internal/obs"
)

const (
	DefaultAddr            = ":8080"
	DefaultReadTimeout     = 500 * time.Millisecond
	DefaultWriteTimeout    = 500 * time.Millisecond
	DefaultMaxRequestBytes = 8 << 10
)

type Handler interface {
	ServeRequest(ctx context.Context, r *Request) (*Response, error)
}

type HandlerFunc func(ctx context.Context, r *Request) (*Response, error)

func (f HandlerFunc) ServeRequest(ctx context.Context, r *Request) (*Response, error) {
	return f(ctx, r)
}

// OKHandler answers every request with 200 OK.
var OKHandler = HandlerFunc(func(context.Context, *Request) (*Response, error) {
	return NewResponse(StatusOK), nil
})

// Server accepts connections and serves one request on each. Zero values
// select the defaults above; Logger and Meter default to no-ops.
type Server struct {
	Addr            string
	Handler         Handler
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRequestBytes int
	// RequireHeaders makes a missing blank line after the headers an error
	// instead of serving the request line on its own.
	RequireHeaders bool
	Logger         obs.Logger
	Meter          obs.Meter

	mu        sync.Mutex
	listeners map[net.Listener]struct{}
	closed    bool
	conns     sync.WaitGroup
	// baseCtx is the parent of every accepted connection's context;
	// Shutdown cancels it once its own deadline passes.
	baseCtx context.Context
	cancel  context.CancelFunc
}

func (s *Server) ListenAndServe() error {
	addr := s.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on l and handles each on its own goroutine.
// It returns ErrServerClosed after Shutdown.
func (s *Server) Serve(l net.Listener) error {
	if !s.track(l) {
		_ = l.Close()
		return ErrServerClosed
	}
	defer s.untrack(l)
	defer l.Close()

	s.logger().Log(obs.Info, "listening", obs.F("addr", l.Addr().String()))
	ctx := s.connContext()
	for {
		c, err := l.Accept()
		if err != nil {
			if s.shuttingDown() {
				return ErrServerClosed
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				s.logger().Log(obs.Warn, "accept failed", obs.F("error", err))
				continue
			}
			return err
		}
		if !s.addConn() {
			_ = c.Close()
			return ErrServerClosed
		}
		s.logger().Log(obs.Debug, "new connection", obs.F("remote", c.RemoteAddr().String()))
		go func() {
			defer s.conns.Done()
			_ = s.ServeConn(ctx, c)
		}()
	}
}

// Shutdown closes all listeners and waits for in-flight connections to
// finish. If ctx is done first, the contexts handed to handlers are
// canceled and ctx's error is returned. A connection still reading its
// request then ends without a response once the head is parsed.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	for l := range s.listeners {
		_ = l.Close()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.conns.Wait()
		close(done)
	}()
	select {
	case <-done:
		s.cancelConns()
		return nil
	case <-ctx.Done():
		s.cancelConns()
		s.logger().Log(obs.Warn, "shutdown deadline passed, canceling connections", obs.F("error", ctx.Err()))
		return ctx.Err()
	}
}

// connContext returns the context accepted connections are served under,
// creating it on first use.
func (s *Server) connContext() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.baseCtx == nil {
		s.baseCtx, s.cancel = context.WithCancel(context.Background())
	}
	return s.baseCtx
}

func (s *Server) cancelConns() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (s *Server) track(l net.Listener) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	if s.listeners == nil {
		s.listeners = make(map[net.Listener]struct{})
	}
	s.listeners[l] = struct{}{}
	return true
}

// addConn registers an in-flight connection unless Shutdown has begun.
func (s *Server) addConn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns.Add(1)
	return true
}

func (s *Server) untrack(l net.Listener) {
	s.mu.Lock()
	delete(s.listeners, l)
	s.mu.Unlock()
}

func (s *Server) shuttingDown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Server) handler() Handler {
	if s.Handler == nil {
		return OKHandler
	}
	return s.Handler
}

func (s *Server) readTimeout() time.Duration {
	if s.ReadTimeout <= 0 {
		return DefaultReadTimeout
	}
	return s.ReadTimeout
}

func (s *Server) writeTimeout() time.Duration {
	if s.WriteTimeout <= 0 {
		return DefaultWriteTimeout
	}
	return s.WriteTimeout
}

func (s *Server) maxRequestBytes() int {
	if s.MaxRequestBytes <= 0 {
		return DefaultMaxRequestBytes
	}
	return s.MaxRequestBytes
}

func (s *Server) logger() obs.Logger {
	if s.Logger == nil {
		return obs.NopLogger{}
	}
	return s.Logger
}

func (s *Server) meter() obs.Meter {
	if s.Meter == nil {
		return obs.NopMeter{}
	}
	return s.Meter
}
