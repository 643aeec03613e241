// Package binder provides type-safe HTTP request data binding for viewkit
// handlers.
//
// Binders map form data and query parameters onto tagged structs, so demo
// pages and interactive component endpoints work with typed requests instead
// of raw url.Values. Binders compose: each one processes only its own struct
// tags and reports ErrBinderNotApplicable for requests it cannot serve, which
// lets viewkit.Wrap try the next one.
//
// # Basic Usage
//
//	type PickDateRequest struct {
//		Day     string `form:"day"`
//		Month   time.Time `query:"month" pattern:"YYYY-MM"`
//		Page    int    `query:"page"`
//		Tags    []string `query:"tags"`   // ?tags=a&tags=b or ?tags=a,b
//		Optional *bool  `query:"active"`  // pointer fields stay nil when absent
//	}
//
//	mux.HandleFunc("/datepicker/pick", viewkit.Wrap(handler,
//		viewkit.WithBinders[viewkit.Context, PickDateRequest](
//			binder.Query(),
//			binder.Form(),
//		),
//	))
//
// # Supported Types
//
// Basic types (string, ints, uints, floats, bool), slices of basic types for
// multi-value fields, pointers for optional fields, and time.Time parsed with
// a datefmt display pattern from the `pattern` tag (default "YYYY-MM-DD").
//
// # Error Handling
//
// Parse failures return errors wrapping the package sentinels, and
// IsBindError reports whether an error chain came from binding. viewkit's
// error handler maps those to 400 responses.
package binder
