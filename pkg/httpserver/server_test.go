package httpserver_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/viewkit/pkg/httpserver"
)

// freeAddr reserves a local port and releases it for the server under test.
func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

// runServer starts srv in the background and returns the channel Run's
// result lands on.
func runServer(srv *httpserver.Server, ctx context.Context, handler http.Handler) <-chan error {
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, handler) }()
	return done
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "server did not stop in time")
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("serves requests and stops on context cancel", func(t *testing.T) {
		t.Parallel()

		addr := freeAddr(t)
		srv := httpserver.New(
			httpserver.WithAddr(addr),
			httpserver.WithShutdownTimeout(100*time.Millisecond),
		)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		done := runServer(srv, ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		var resp *http.Response
		var err error
		for range 50 {
			resp, err = http.Get("http://" + addr)
			if err == nil {
				break
			}
			time.Sleep(20 * time.Millisecond)
		}
		require.NoError(t, err, "server never became reachable")
		require.NoError(t, resp.Body.Close())
		require.Equal(t, http.StatusOK, resp.StatusCode)

		cancel()
		waitDone(t, done)
	})

	t.Run("stops on manual shutdown", func(t *testing.T) {
		t.Parallel()

		started := make(chan struct{})
		srv := httpserver.New(
			httpserver.WithAddr(freeAddr(t)),
			httpserver.WithShutdownTimeout(100*time.Millisecond),
			httpserver.WithStartHook(func(*slog.Logger) { close(started) }),
		)

		done := runServer(srv, context.Background(), http.NewServeMux())
		<-started

		require.NoError(t, srv.Shutdown(context.Background()))
		waitDone(t, done)
	})

	t.Run("listen failure wraps ErrStart", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New(httpserver.WithAddr(":invalid"))
		err := srv.Run(context.Background(), http.NewServeMux())
		require.Error(t, err)
		assert.ErrorIs(t, err, httpserver.ErrStart)
	})

	t.Run("second run on the same server fails", func(t *testing.T) {
		t.Parallel()

		started := make(chan struct{})
		srv := httpserver.New(
			httpserver.WithAddr(freeAddr(t)),
			httpserver.WithShutdownTimeout(100*time.Millisecond),
			httpserver.WithStartHook(func(*slog.Logger) { close(started) }),
		)

		ctx, cancel := context.WithCancel(context.Background())
		done := runServer(srv, ctx, http.NewServeMux())
		<-started

		err := srv.Run(context.Background(), http.NewServeMux())
		require.Error(t, err)
		assert.ErrorIs(t, err, httpserver.ErrStart)

		cancel()
		waitDone(t, done)
	})

	t.Run("nil handler answers 404", func(t *testing.T) {
		t.Parallel()

		addr := freeAddr(t)
		srv := httpserver.New(
			httpserver.WithAddr(addr),
			httpserver.WithShutdownTimeout(100*time.Millisecond),
		)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		done := runServer(srv, ctx, nil)

		var resp *http.Response
		var err error
		for range 50 {
			resp, err = http.Get("http://" + addr)
			if err == nil {
				break
			}
			time.Sleep(20 * time.Millisecond)
		}
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		cancel()
		waitDone(t, done)
	})
}

// TestSignalShutdown stays sequential: the signal is delivered to the whole
// process and would stop every server the parallel tests have running.
func TestSignalShutdown(t *testing.T) {
	addr := freeAddr(t)
	srv := httpserver.New(
		httpserver.WithAddr(addr),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
	)
	done := runServer(srv, context.Background(), http.NewServeMux())

	for range 50 {
		conn, err := net.Dial("tcp", addr)
		if err == nil {
			_ = conn.Close()
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	p, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, p.Signal(syscall.SIGTERM))
	waitDone(t, done)
}

func TestShutdown(t *testing.T) {
	t.Parallel()

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		started := make(chan struct{})
		srv := httpserver.New(
			httpserver.WithAddr(freeAddr(t)),
			httpserver.WithShutdownTimeout(100*time.Millisecond),
			httpserver.WithStartHook(func(*slog.Logger) { close(started) }),
		)
		done := runServer(srv, context.Background(), http.NewServeMux())
		<-started

		require.NoError(t, srv.Shutdown(context.Background()))
		require.NoError(t, srv.Shutdown(context.Background()))
		waitDone(t, done)
	})

	t.Run("before run is a no-op", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New(httpserver.WithAddr(freeAddr(t)))
		require.NoError(t, srv.Shutdown(context.Background()))
	})
}

func TestHooks(t *testing.T) {
	t.Parallel()

	var started, stopped atomic.Bool
	start := make(chan struct{})
	srv := httpserver.New(
		httpserver.WithAddr(freeAddr(t)),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		httpserver.WithStartHook(func(*slog.Logger) {
			started.Store(true)
			close(start)
		}),
		httpserver.WithStopHook(func(*slog.Logger) { stopped.Store(true) }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := runServer(srv, ctx, http.NewServeMux())
	<-start
	cancel()
	waitDone(t, done)

	assert.True(t, started.Load())
	assert.True(t, stopped.Load())
}

func TestWithServer(t *testing.T) {
	t.Parallel()

	hs := &http.Server{ReadTimeout: time.Second}
	started := make(chan struct{})
	addr := freeAddr(t)
	srv := httpserver.New(
		httpserver.WithServer(hs),
		httpserver.WithAddr(addr),
		httpserver.WithReadTimeout(30*time.Second),
		httpserver.WithWriteTimeout(2*time.Second),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		httpserver.WithStartHook(func(*slog.Logger) { close(started) }),
	)
	done := runServer(srv, context.Background(), http.NewServeMux())
	<-started

	assert.Equal(t, addr, hs.Addr)
	assert.Equal(t, time.Second, hs.ReadTimeout, "preset field must win over the option")
	assert.Equal(t, 2*time.Second, hs.WriteTimeout)
	assert.NotNil(t, hs.Handler)

	require.NoError(t, srv.Shutdown(context.Background()))
	waitDone(t, done)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	hs := &http.Server{}
	started := make(chan struct{})
	addr := freeAddr(t)
	srv := httpserver.NewFromConfig(httpserver.Config{
		Addr:            addr,
		ReadTimeout:     time.Second,
		WriteTimeout:    2 * time.Second,
		IdleTimeout:     3 * time.Second,
		ShutdownTimeout: 100 * time.Millisecond,
	},
		httpserver.WithServer(hs),
		httpserver.WithStartHook(func(*slog.Logger) { close(started) }),
	)
	done := runServer(srv, context.Background(), http.NewServeMux())
	<-started

	assert.Equal(t, addr, hs.Addr)
	assert.Equal(t, time.Second, hs.ReadTimeout)
	assert.Equal(t, 2*time.Second, hs.WriteTimeout)
	assert.Equal(t, 3*time.Second, hs.IdleTimeout)

	require.NoError(t, srv.Shutdown(context.Background()))
	waitDone(t, done)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{name: "empty addr", fn: func() { httpserver.WithAddr("") }},
		{name: "negative read timeout", fn: func() { httpserver.WithReadTimeout(-time.Second) }},
		{name: "negative write timeout", fn: func() { httpserver.WithWriteTimeout(-time.Second) }},
		{name: "negative idle timeout", fn: func() { httpserver.WithIdleTimeout(-time.Second) }},
		{name: "negative shutdown timeout", fn: func() { httpserver.WithShutdownTimeout(-time.Second) }},
		{name: "nil server", fn: func() { httpserver.WithServer(nil) }},
		{name: "nil start hook", fn: func() { httpserver.WithStartHook(nil) }},
		{name: "nil stop hook", fn: func() { httpserver.WithStopHook(nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, tt.fn)
		})
	}

	t.Run("nil logger is allowed", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() { httpserver.WithLogger(nil) })
	})
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("liveness without checks", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		httpserver.Healthz(log).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
	})

	t.Run("readiness with passing checks", func(t *testing.T) {
		t.Parallel()

		ok := func(context.Context) error { return nil }
		rec := httptest.NewRecorder()
		httpserver.Healthz(log, ok, ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("readiness with a failing check", func(t *testing.T) {
		t.Parallel()

		ok := func(context.Context) error { return nil }
		bad := func(context.Context) error { return errors.New("theme file unreadable") }
		rec := httptest.NewRecorder()
		httpserver.Healthz(log, ok, bad).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())
	})
}
