// Package httpserver wraps net/http with graceful shutdown, lifecycle
// hooks, environment-driven configuration and probe handlers.
//
// Run starts the server in its own goroutine and blocks until the given
// context is canceled, the process receives an interrupt or SIGTERM, or the
// listener fails. Shutdown then drains in-flight requests within the
// configured timeout. All failures surface through the ErrStart and
// ErrShutdown sentinels for errors.Is.
//
// # Usage
//
//	import (
//		"github.com/go-chi/chi/v5"
//
//		"github.com/dmitrymomot/viewkit/pkg/httpserver"
//	)
//
//	func main() {
//		r := chi.NewRouter()
//		r.Get("/healthz", httpserver.Healthz(slog.Default()))
//
//		srv := httpserver.New(
//			httpserver.WithAddr(":8080"),
//			httpserver.WithShutdownTimeout(10*time.Second),
//			httpserver.WithLogger(log),
//			httpserver.WithStartHook(func(l *slog.Logger) {
//				l.Info("listening", slog.String("addr", ":8080"))
//			}),
//		)
//		if err := srv.Run(ctx, r); err != nil {
//			log.Error("server stopped", logger.Error(err))
//		}
//	}
//
// NewFromConfig builds a server from a Config struct populated by
// pkg/config, keeping HTTP tuning in environment variables.
package httpserver
