package httpserver

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Server. Options validate their arguments at
// construction time and panic on misuse.
type Option func(*config)

// WithAddr sets the listen address. Empty addresses panic.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: WithAddr requires a non-empty address")
	}
	return func(c *config) { c.addr = addr }
}

// WithReadTimeout bounds reading an entire request, body included.
func WithReadTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("httpserver: WithReadTimeout requires a positive duration")
	}
	return func(c *config) { c.readTimeout = d }
}

// WithWriteTimeout bounds writing a response.
func WithWriteTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("httpserver: WithWriteTimeout requires a positive duration")
	}
	return func(c *config) { c.writeTimeout = d }
}

// WithIdleTimeout bounds waiting for the next request on a kept-alive
// connection.
func WithIdleTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("httpserver: WithIdleTimeout requires a positive duration")
	}
	return func(c *config) { c.idleTimeout = d }
}

// WithShutdownTimeout bounds graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("httpserver: WithShutdownTimeout requires a positive duration")
	}
	return func(c *config) { c.shutdownTimeout = d }
}

// WithServer runs the provided http.Server instead of a fresh one. Its
// Handler and unset timeout fields are filled in by Run; fields already set
// are left alone.
func WithServer(srv *http.Server) Option {
	if srv == nil {
		panic("httpserver: WithServer requires a non-nil server")
	}
	return func(c *config) { c.server = srv }
}

// WithLogger supplies the logger passed to start and stop hooks. A nil
// logger falls back to a discarding one.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStartHook registers a callback invoked when the server begins
// listening.
func WithStartHook(h func(*slog.Logger)) Option {
	if h == nil {
		panic("httpserver: WithStartHook requires a non-nil hook")
	}
	return func(c *config) { c.startHooks = append(c.startHooks, h) }
}

// WithStopHook registers a callback invoked after the server has shut down.
func WithStopHook(h func(*slog.Logger)) Option {
	if h == nil {
		panic("httpserver: WithStopHook requires a non-nil hook")
	}
	return func(c *config) { c.stopHooks = append(c.stopHooks, h) }
}
