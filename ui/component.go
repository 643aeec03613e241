package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/viewkit/schema"
)

// renderFunc produces a component's markup from its resolved arguments.
type renderFunc func(ctx context.Context, w io.Writer, args schema.Args) error

// validated gates rendering behind schema resolution. When the arguments
// violate the schema the component writes nothing: Render returns the
// *schema.Violations listing every problem with the call, confined to the one
// offending component instance.
func validated(s *schema.Schema, args schema.Args, fn renderFunc) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		resolved, err := s.Resolve(args)
		if err != nil {
			return err
		}
		return fn(ctx, w, resolved)
	})
}
