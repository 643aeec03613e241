package viewkit

import (
	"context"
	"net/http"
	"time"

	"github.com/starfederation/datastar-go/datastar"
)

// Context wraps http.Request and http.ResponseWriter with context.Context.
// It embeds the request's context and provides access to HTTP components.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	SSE() *datastar.ServerSentEventGenerator
}

// NewContext creates a new Context from HTTP request and response writer.
// For Datastar requests the SSE generator is initialized eagerly so handlers
// can start patching without extra setup.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	ctx := &httpContext{
		w: w,
		r: r,
	}

	if IsDataStar(r) {
		ctx.sse = NewSSE(w, r)
	}

	return ctx
}

// httpContext is the default implementation of Context.
type httpContext struct {
	w   http.ResponseWriter
	r   *http.Request
	sse *datastar.ServerSentEventGenerator
}

func (c *httpContext) Request() *http.Request {
	return c.r
}

func (c *httpContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

func (c *httpContext) SSE() *datastar.ServerSentEventGenerator {
	return c.sse
}

// Delegate context.Context methods to the request's context.
func (c *httpContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *httpContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *httpContext) Err() error {
	return c.r.Context().Err()
}

func (c *httpContext) Value(key any) any {
	return c.r.Context().Value(key)
}

// ContextKey provides type-safe context keys to prevent key collisions.
// Create them as package-level variables.
//
// Example:
//
//	var themeKey = viewkit.NewContextKey("theme")
type ContextKey struct{ name string }

// String returns the key's name for debugging.
func (c *ContextKey) String() string {
	return c.name
}

// NewContextKey creates a new context key. The name should be unique within
// the application.
func NewContextKey(name string) *ContextKey {
	return &ContextKey{name}
}

// ContextValue retrieves a typed value from the context. It returns the zero
// value of T if the key is absent or holds a different type.
//
// Example:
//
//	loc := viewkit.ContextValue[datefmt.Locale](ctx, localeKey)
func ContextValue[T any](ctx context.Context, key any) T {
	val, _ := ctx.Value(key).(T)
	return val
}

// ContextValueOK retrieves a typed value from the context with an ok bool,
// distinguishing a missing key from a stored zero value.
func ContextValueOK[T any](ctx context.Context, key any) (T, bool) {
	val, ok := ctx.Value(key).(T)
	return val, ok
}
