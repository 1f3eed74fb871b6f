package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"dqx0.com/go/framing/internal/obs"
	"dqx0.com/go/framing/reqline"
)

func main() {
	addr := flag.String("addr", envOr("REQLINE_ADDR", "0.0.0.0:8080"), "listen address")
	readTimeout := flag.Duration("read-timeout", reqline.DefaultReadTimeout, "deadline for reading the request head")
	writeTimeout := flag.Duration("write-timeout", reqline.DefaultWriteTimeout, "deadline for writing the response")
	maxBytes := flag.Int("max-request-bytes", reqline.DefaultMaxRequestBytes, "read buffer capacity")
	requireHeaders := flag.Bool("require-headers", false, "reject requests whose header section is not terminated")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	format := flag.String("log-format", "console", "log format (console, json)")
	flag.Parse()

	zl := newZerolog(*format, *level)
	s := &reqline.Server{
		Addr:            *addr,
		ReadTimeout:     *readTimeout,
		WriteTimeout:    *writeTimeout,
		MaxRequestBytes: *maxBytes,
		RequireHeaders:  *requireHeaders,
		Logger:          obs.NewZerolog(zl),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- s.ListenAndServe() }()

	select {
	case err := <-errc:
		zl.Fatal().Err(err).Msg("server stopped")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		zl.Error().Err(err).Msg("shutdown")
	}
	if err := <-errc; err != nil && !errors.Is(err, reqline.ErrServerClosed) {
		zl.Error().Err(err).Msg("serve")
	}
}

func newZerolog(format, level string) zerolog.Logger {
	var l zerolog.Logger
	if format == "json" {
		l = zerolog.New(os.Stderr)
	} else {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	return l.Level(obs.ParseLevel(level)).With().Timestamp().Logger()
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
