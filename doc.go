// Package viewkit provides a schema-validated UI component kit and the
// type-safe HTTP plumbing to serve it, built on templ components and
// Datastar reactive updates.
//
// The kit has three layers:
//
//   - schema: declarative parameter schemas components validate their
//     arguments against before rendering
//   - ui: the component library (labels, titles, paragraphs, layout boxes,
//     a date picker), every constructor checked by its schema
//   - viewkit (this package): handlers, responses and error handling that
//     deliver components as full pages or Datastar SSE patches
//
// Key features:
//
//   - Type-safe HTTP handlers using generics
//   - Responses that adapt to the request: HTML for plain requests, SSE
//     element patches for Datastar ones
//   - Component misuse surfaces as structured errors, never as broken markup
//   - Context management with typed values
//   - Router-agnostic design
//
// Basic Usage:
//
//	// Define the request type
//	type PickDateRequest struct {
//		Day string `form:"day"`
//	}
//
//	// Create a type-safe handler
//	handler := viewkit.HandlerFunc[viewkit.Context, PickDateRequest](
//		func(ctx viewkit.Context, req PickDateRequest) viewkit.Response {
//			day, err := datefmt.Parse("YYYY-MM-DD", req.Day)
//			if err != nil {
//				return viewkit.JSONError(viewkit.ErrBadRequest)
//			}
//			return viewkit.Templ(pages.SelectedDate(day),
//				viewkit.WithTarget("#selected"))
//		},
//	)
//
//	// Use with any router
//	mux.Handle("/datepicker/pick", viewkit.Wrap(handler,
//		viewkit.WithBinders[viewkit.Context, PickDateRequest](binder.Form()),
//	))
//
// Custom Context Support:
//
// Handlers can use application-specific context types for direct access to
// request-scoped data:
//
//	type GalleryContext interface {
//		viewkit.Context
//		Locale() datefmt.Locale
//	}
//
//	type galleryContext struct {
//		viewkit.Context
//		locale datefmt.Locale
//	}
//
//	func (c *galleryContext) Locale() datefmt.Locale { return c.locale }
//
//	func NewGalleryContext(w http.ResponseWriter, r *http.Request) GalleryContext {
//		return &galleryContext{
//			Context: viewkit.NewContext(w, r),
//			locale:  datefmt.MatchLocale(r.Header.Get("Accept-Language")),
//		}
//	}
//
//	handler := viewkit.HandlerFunc[GalleryContext, PickDateRequest](
//		func(ctx GalleryContext, req PickDateRequest) viewkit.Response {
//			loc := ctx.Locale() // No type assertion needed.
//			// ...
//		},
//	)
//
//	mux.Handle("/datepicker/pick", viewkit.Wrap(handler,
//		viewkit.WithContextFactory[GalleryContext, PickDateRequest](NewGalleryContext),
//	))
//
// Error Handling:
//
// NewErrorHandler builds the handler the demo wires everywhere: it classifies
// errors (component argument violations are server errors carrying the
// component name and per-parameter breakdown; binding failures are client
// errors), logs them with request context, and renders either a full error
// page or a Datastar toast depending on the request type.
package viewkit
