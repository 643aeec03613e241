package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/viewkit/pkg/requestid"
)

// serve runs one request through the middleware and returns the ID the
// handler saw in its context plus the response header value.
func serve(t *testing.T, headerID string) (ctxID, headerOut string) {
	t.Helper()

	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if headerID != "" {
		req.Header.Set(requestid.Header, headerID)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates an ID when none is supplied", func(t *testing.T) {
		t.Parallel()

		ctxID, headerID := serve(t, "")
		assert.NotEmpty(t, ctxID)
		assert.Equal(t, ctxID, headerID)
	})

	t.Run("reuses a valid client ID", func(t *testing.T) {
		t.Parallel()

		valid := []string{
			"abc123",
			"pick-form-7",
			"trace_42",
			"550e8400-e29b-41d4-a716-446655440000",
		}
		for _, id := range valid {
			t.Run(id, func(t *testing.T) {
				t.Parallel()

				ctxID, headerID := serve(t, id)
				assert.Equal(t, id, ctxID)
				assert.Equal(t, id, headerID)
			})
		}
	})

	t.Run("replaces an invalid client ID", func(t *testing.T) {
		t.Parallel()

		invalid := []string{
			"has spaces",
			"slash/separated",
			"semi;colon",
			"<script>alert(1)</script>",
			strings.Repeat("x", 129),
		}
		for _, id := range invalid {
			t.Run(id, func(t *testing.T) {
				t.Parallel()

				ctxID, headerID := serve(t, id)
				assert.NotEmpty(t, ctxID)
				assert.NotEqual(t, id, ctxID)
				assert.Equal(t, ctxID, headerID)
			})
		}
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("roundtrip", func(t *testing.T) {
		t.Parallel()

		ctx := requestid.WithContext(context.Background(), "test-id")
		assert.Equal(t, "test-id", requestid.FromContext(ctx))
	})

	t.Run("missing ID yields empty string", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, requestid.FromContext(context.Background()))
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	t.Run("emits request_id attribute when present", func(t *testing.T) {
		t.Parallel()

		ctx := requestid.WithContext(context.Background(), "req-9")
		attr, ok := extract(ctx)
		require.True(t, ok)
		assert.Equal(t, "request_id", attr.Key)
		assert.Equal(t, "req-9", attr.Value.String())
	})

	t.Run("emits nothing when absent", func(t *testing.T) {
		t.Parallel()

		_, ok := extract(context.Background())
		assert.False(t, ok)
	})
}
