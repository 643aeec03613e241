package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/viewkit/pkg/logger"
)

// Healthz returns a handler for liveness and readiness probes. Without
// checks it always answers 200 "ALIVE". With checks it runs each one
// against the request context and answers 200 "READY", or 500 "NOT_READY"
// on the first failure.
func Healthz(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ALIVE"))
			return
		}

		ctx := r.Context()
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	}
}
