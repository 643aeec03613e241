package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Content is what a component renders as its text: either a plain string,
// escaped on output, or a templ fragment rendered as-is. The zero value
// renders nothing.
type Content struct {
	text string
	frag templ.Component
}

// Text creates content from a plain string. The string is HTML-escaped when
// rendered.
func Text(s string) Content {
	return Content{text: s}
}

// Fragment creates content from any templ component. The fragment is
// responsible for its own escaping.
func Fragment(c templ.Component) Content {
	return Content{frag: c}
}

// Render implements templ.Component.
func (c Content) Render(ctx context.Context, w io.Writer) error {
	if c.frag != nil {
		return c.frag.Render(ctx, w)
	}
	_, err := io.WriteString(w, templ.EscapeString(c.text))
	return err
}

// AsContent coerces an argument value into Content. Accepted are Content
// itself, plain strings, and any templ.Component.
func AsContent(v any) (Content, bool) {
	switch val := v.(type) {
	case Content:
		return val, true
	case string:
		return Text(val), true
	case templ.Component:
		return Fragment(val), true
	default:
		return Content{}, false
	}
}

// IsContent reports whether a value is renderable component content. It is
// the schema predicate behind every content-typed parameter.
func IsContent(v any) bool {
	_, ok := AsContent(v)
	return ok
}
