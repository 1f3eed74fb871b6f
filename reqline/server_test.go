package reqline

import (
	"context"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, s *Server) (string, <-chan error) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	errc := make(chan error, 1)
	go func() { errc <- s.Serve(ln) }()
	return ln.Addr().String(), errc
}

func send(t *testing.T, addr, raw string) string {
	t.Helper()
	c, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer c.Close()
	_, err = c.Write([]byte(raw))
	require.NoError(t, err)
	require.NoError(t, c.SetReadDeadline(time.Now().Add(5*time.Second)))
	// a reset after a rejected request is fine; only the bytes matter
	b, _ := io.ReadAll(c)
	return string(b)
}

func TestServer_ConcurrentConnections(t *testing.T) {
	s := &Server{Handler: HandlerFunc(func(_ context.Context, r *Request) (*Response, error) {
		if r.Path() == "/hello" {
			return NewResponse(StatusOK), nil
		}
		return NewResponse(StatusNotFound), nil
	})}
	addr, errc := startServer(t, s)

	var wg sync.WaitGroup
	results := make([]string, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := net.Dial("tcp", addr)
			if err != nil {
				results[i] = err.Error()
				return
			}
			defer c.Close()
			path := "/hello"
			if i%2 == 1 {
				path = "/nope"
			}
			_, _ = c.Write([]byte("GET " + path + " HTTP/1.1\r\n\r\n"))
			_ = c.SetReadDeadline(time.Now().Add(5 * time.Second))
			b, _ := io.ReadAll(c)
			results[i] = string(b)
		}(i)
	}
	wg.Wait()
	for i, got := range results {
		want := "HTTP/1.1 200 OK\r\n\r\n"
		if i%2 == 1 {
			want = "HTTP/1.1 404 Not Found\r\n\r\n"
		}
		require.Equal(t, want, got, "connection %d", i)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))
	require.ErrorIs(t, <-errc, ErrServerClosed)
}

func TestServer_RejectsWithoutResponse(t *testing.T) {
	s := &Server{}
	addr, errc := startServer(t, s)

	require.Equal(t, "HTTP/1.1 200 OK\r\n\r\n", send(t, addr, "GET /hello HTTP/1.1\r\n\r\n"))
	require.Empty(t, send(t, addr, "POST / HTTP/1.1\r\n\r\n"))
	require.Empty(t, send(t, addr, "GET\r\n\r\n"))

	require.NoError(t, s.Shutdown(context.Background()))
	require.ErrorIs(t, <-errc, ErrServerClosed)
}

func TestServer_ShutdownDeadlineCancelsHandlers(t *testing.T) {
	entered := make(chan struct{})
	handlerErr := make(chan error, 1)
	s := &Server{Handler: HandlerFunc(func(ctx context.Context, _ *Request) (*Response, error) {
		close(entered)
		<-ctx.Done()
		handlerErr <- ctx.Err()
		return nil, ctx.Err()
	})}
	addr, errc := startServer(t, s)

	reply := make(chan string, 1)
	go func() {
		c, err := net.Dial("tcp", addr)
		if err != nil {
			reply <- err.Error()
			return
		}
		defer c.Close()
		_, _ = c.Write([]byte("GET /slow HTTP/1.1\r\n\r\n"))
		_ = c.SetReadDeadline(time.Now().Add(5 * time.Second))
		b, _ := io.ReadAll(c)
		reply <- string(b)
	}()

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, s.Shutdown(ctx), context.DeadlineExceeded)
	require.ErrorIs(t, <-handlerErr, context.Canceled)
	require.Empty(t, <-reply)

	require.NoError(t, s.Shutdown(context.Background()))
	require.ErrorIs(t, <-errc, ErrServerClosed)
}

func TestServer_ServeAfterShutdown(t *testing.T) {
	s := &Server{}
	require.NoError(t, s.Shutdown(context.Background()))
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.ErrorIs(t, s.Serve(ln), ErrServerClosed)
}

func TestServer_Defaults(t *testing.T) {
	s := &Server{}
	require.Equal(t, DefaultReadTimeout, s.readTimeout())
	require.Equal(t, DefaultWriteTimeout, s.writeTimeout())
	require.Equal(t, DefaultMaxRequestBytes, s.maxRequestBytes())
	require.NotNil(t, s.handler())
	require.NotNil(t, s.logger())
	require.NotNil(t, s.meter())
}
