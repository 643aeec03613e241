package binder

import (
	"net/http"
)

// Query creates a binder for URL query parameters driven by `query:` tags.
//
// Example:
//
//	type CalendarRequest struct {
//		Month  time.Time `query:"month" pattern:"YYYY-MM"`
//		Locale string    `query:"locale"`
//		Weeks  []int     `query:"weeks"`  // ?weeks=1&weeks=2 or ?weeks=1,2
//		Debug  *bool     `query:"debug"`  // optional
//	}
//
// Every request has a URL, so Query never reports ErrBinderNotApplicable.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
