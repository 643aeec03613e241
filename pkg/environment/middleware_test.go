package environment_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/viewkit/pkg/environment"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("attaches environment to request context", func(t *testing.T) {
		t.Parallel()

		var seen environment.Environment
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = environment.FromContext(r.Context())
			w.WriteHeader(http.StatusNoContent)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		environment.Middleware(environment.Staging)(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, environment.Staging, seen)
	})

	t.Run("does not leak into the original request", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
		environment.Middleware(environment.Production)(next).ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, environment.Environment(""), environment.FromContext(req.Context()))
	})
}
