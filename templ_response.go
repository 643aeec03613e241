package viewkit

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent matches github.com/a-h/templ.Component without importing it,
// so response types stay decoupled from the template engine.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption is an alias for datastar's PatchElementOption.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the component is patched into.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch pairs a component with its own rendering options.
type TemplPatch struct {
	Component TemplComponent
	Options   []datastar.PatchElementOption
}

// Patch creates a TemplPatch for use with TemplMulti.
func Patch(component TemplComponent, opts ...TemplOption) TemplPatch {
	return TemplPatch{
		Component: component,
		Options:   opts,
	}
}

// templResponse wraps a templ component to implement Response.
type templResponse struct {
	component TemplComponent
	options   []datastar.PatchElementOption
}

// Render outputs the component via SSE for Datastar or as HTML otherwise.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(t.component, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.component.Render(r.Context(), w)
}

// Templ creates a response from a templ component. Datastar requests receive
// it as an SSE element patch honoring target and patch mode options; plain
// requests get the rendered HTML directly.
//
// Simple usage:
//
//	return viewkit.Templ(ui.Paragraph(schema.Args{"text": ui.Text(msg)}))
//
// Patching one element on the page:
//
//	return viewkit.Templ(
//		pages.Calendar(month),
//		viewkit.WithTarget("#calendar"),
//		viewkit.WithPatchMode(viewkit.PatchOuter),
//	)
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templResponse{
		component: component,
		options:   opts,
	}
}

// templPartialResponse renders the partial or the full component depending on
// the request type.
type templPartialResponse struct {
	partial TemplComponent
	full    TemplComponent
	options []datastar.PatchElementOption
}

func (t templPartialResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(t.partial, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.full.Render(r.Context(), w)
}

// TemplPartial renders only the partial component via SSE for Datastar
// requests and the full component for plain ones. This keeps one handler
// serving both the initial page load and subsequent reactive updates.
//
// Example:
//
//	partial := pages.Calendar(month)
//	full := pages.DatePickerPage(month)
//	return viewkit.TemplPartial(partial, full, viewkit.WithTarget("#calendar"))
func TemplPartial(partial, full TemplComponent, opts ...TemplOption) Response {
	return templPartialResponse{
		partial: partial,
		full:    full,
		options: opts,
	}
}

// templMultiResponse renders multiple components to different targets.
type templMultiResponse struct {
	patches []TemplPatch
}

func (t templMultiResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, patch := range t.patches {
			if err := sse.PatchElementTempl(patch.Component, patch.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	for _, patch := range t.patches {
		if err := patch.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// TemplMulti renders multiple components in one response. Datastar requests
// receive one SSE patch per component with its own options; plain requests
// get the components concatenated in order.
//
// Example:
//
//	return viewkit.TemplMulti(
//		viewkit.Patch(pages.Calendar(month), viewkit.WithTarget("#calendar")),
//		viewkit.Patch(pages.SelectedDate(day), viewkit.WithTarget("#selected")),
//	)
func TemplMulti(patches ...TemplPatch) Response {
	return templMultiResponse{
		patches: patches,
	}
}
