package pages

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/viewkit/pkg/theme"
	"github.com/dmitrymomot/viewkit/schema"
	"github.com/dmitrymomot/viewkit/ui"
)

type misuseCase struct {
	title     string
	snippet   string
	component templ.Component
}

func misuseCases() []misuseCase {
	return []misuseCase{
		{
			title:   "Unknown argument",
			snippet: `ui.Label(schema.Args{"text": "Email", "colour": "red"})`,
			component: ui.Label(schema.Args{
				"text":   "Email",
				"colour": "red",
			}),
		},
		{
			title:     "Missing required argument",
			snippet:   `ui.Title(schema.Args{"level": 2})`,
			component: ui.Title(schema.Args{"level": 2}),
		},
		{
			title:     "Wrong value type",
			snippet:   `ui.Title(schema.Args{"text": "Stats", "level": "two"})`,
			component: ui.Title(schema.Args{"text": "Stats", "level": "two"}),
		},
		{
			title:     "Value out of range",
			snippet:   `ui.Title(schema.Args{"text": "Stats", "level": 9})`,
			component: ui.Title(schema.Args{"text": "Stats", "level": 9}),
		},
		{
			title: "Several mistakes at once",
			snippet: `ui.DatePicker(schema.Args{
	"value": "next tuesday",
	"frmat": "YYYY-MM-DD",
})`,
			component: ui.DatePicker(schema.Args{
				"value": "next tuesday",
				"frmat": "YYYY-MM-DD",
			}),
		},
	}
}

// MisusePage renders a set of deliberately broken component calls and the
// violation report each one returned. Every case also shows how many bytes
// the failed render wrote, which is always zero.
func MisusePage(t *theme.Theme) templ.Component {
	cases := misuseCases()
	body := make([]templ.Component, 0, len(cases)+2)
	body = append(body,
		ui.Title(schema.Args{"text": "Misuse", "level": 1}),
		ui.Paragraph(schema.Args{
			"text": "Each call below breaks its component's schema on purpose. " +
				"The component writes nothing and returns a report listing every " +
				"violation, not just the first one.",
		}),
	)
	for _, c := range cases {
		body = append(body, renderMisuse(c))
	}
	return Shell(ShellParams{Title: "Misuse", Active: "misuse", Theme: t}, body...)
}

func renderMisuse(c misuseCase) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		err := c.component.Render(ctx, &buf)

		var b strings.Builder
		b.WriteString(`<section class="example"><h3 class="vk-title">`)
		b.WriteString(templ.EscapeString(c.title))
		b.WriteString(`</h3><pre class="example-code"><code>`)
		b.WriteString(templ.EscapeString(c.snippet))
		b.WriteString("</code></pre>")

		switch v := schema.AsViolations(err); {
		case v != nil:
			b.WriteString(violationTable(v))
			b.WriteString(`<p class="vk-paragraph"><em>`)
			b.WriteString(templ.EscapeString(fmt.Sprintf(
				"Render aborted: %d violation(s), %d bytes written.", v.Len(), buf.Len(),
			)))
			b.WriteString("</em></p>")
		case err != nil:
			b.WriteString(`<p class="vk-paragraph">Render failed: `)
			b.WriteString(templ.EscapeString(err.Error()))
			b.WriteString("</p>")
		default:
			b.WriteString(`<p class="vk-paragraph">Rendered without violations.</p>`)
		}
		b.WriteString("</section>")

		_, werr := io.WriteString(w, b.String())
		return werr
	})
}

func violationTable(v *schema.Violations) string {
	var b strings.Builder
	b.WriteString(`<table class="params"><thead><tr>`)
	b.WriteString("<th>Component</th><th>Param</th><th>Kind</th><th>Message</th>")
	b.WriteString("</tr></thead><tbody>")
	for _, violation := range v.List {
		b.WriteString("<tr><td><code>")
		b.WriteString(templ.EscapeString(v.Component))
		b.WriteString("</code></td><td><code>")
		b.WriteString(templ.EscapeString(violation.Param))
		b.WriteString("</code></td><td><code>")
		b.WriteString(templ.EscapeString(string(violation.Kind)))
		b.WriteString("</code></td><td>")
		b.WriteString(templ.EscapeString(violation.Message))
		b.WriteString("</td></tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}
