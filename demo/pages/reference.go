package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/viewkit/schema"
	"github.com/dmitrymomot/viewkit/ui"
)

// ParamTable renders a component schema as a reference table: one row per
// parameter in declaration order.
func ParamTable(s *schema.Schema) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<table class="params"><thead><tr>`)
		b.WriteString("<th>Name</th><th>Type</th><th>Required</th><th>Default</th><th>Description</th>")
		b.WriteString("</tr></thead><tbody>")
		for _, p := range s.Params() {
			b.WriteString("<tr><td><code>")
			b.WriteString(templ.EscapeString(p.Name))
			b.WriteString("</code></td><td><code>")
			b.WriteString(templ.EscapeString(p.Type))
			b.WriteString("</code></td><td>")
			if p.Required {
				b.WriteString(`<span class="badge">required</span>`)
			}
			b.WriteString("</td><td>")
			if p.Default != nil {
				b.WriteString("<code>")
				b.WriteString(templ.EscapeString(fmt.Sprintf("%v", p.Default)))
				b.WriteString("</code>")
			}
			b.WriteString("</td><td>")
			b.WriteString(templ.EscapeString(p.Doc))
			b.WriteString("</td></tr>")
		}
		b.WriteString("</tbody></table>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// SchemaSection renders the "Parameters" reference block for the named
// component. An unknown name renders nothing.
func SchemaSection(component string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s, ok := ui.SchemaFor(component)
		if !ok {
			return nil
		}
		if _, err := io.WriteString(w, `<h2 class="vk-title">Parameters</h2>`); err != nil {
			return err
		}
		return ParamTable(s).Render(ctx, w)
	})
}

// Example shows a component next to the call that produced it.
func Example(title, snippet string, demo templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="example"><h3 class="vk-title">`)
		b.WriteString(templ.EscapeString(title))
		b.WriteString(`</h3><div class="example-demo">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := demo.Render(ctx, w); err != nil {
			return err
		}
		var tail strings.Builder
		tail.WriteString(`</div><pre class="example-code"><code>`)
		tail.WriteString(templ.EscapeString(snippet))
		tail.WriteString("</code></pre></section>")
		_, err := io.WriteString(w, tail.String())
		return err
	})
}
