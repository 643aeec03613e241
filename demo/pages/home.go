package pages

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/viewkit/pkg/theme"
	"github.com/dmitrymomot/viewkit/schema"
	"github.com/dmitrymomot/viewkit/ui"
)

// HomePage is the gallery overview: what the kit is, one card per component.
func HomePage(t *theme.Theme) templ.Component {
	return Shell(ShellParams{Title: "Overview", Active: "home", Theme: t},
		ui.Title(schema.Args{"text": "viewkit component gallery", "level": 1}),
		ui.Paragraph(schema.Args{
			"text": "Every component takes a named-argument map and validates it " +
				"against a declared schema before rendering. A call that breaks the " +
				"schema produces no markup at all, only a structured diagnostic " +
				"naming each offending argument.",
		}),
		componentCards(),
		ui.Paragraph(schema.Args{
			"text": "Edit the theme file while a page is open: token changes stream " +
				"in over SSE and restyle the gallery without a reload.",
		}),
	)
}

func componentCards() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		for _, item := range navItems {
			if item.id == "home" || item.id == "schemas" {
				continue
			}
			b.WriteString(`<p class="vk-paragraph"><a href="` + item.href + `">`)
			b.WriteString(templ.EscapeString(item.label))
			b.WriteString("</a>")
			if s, ok := ui.SchemaFor(item.id); ok {
				b.WriteString(": ")
				b.WriteString(templ.EscapeString(summarize(s)))
			}
			b.WriteString("</p>")
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// summarize lists a schema's parameter names, required ones first as declared.
func summarize(s *schema.Schema) string {
	params := s.Params()
	names := make([]string, 0, len(params))
	for _, p := range params {
		name := p.Name
		if p.Required {
			name += "*"
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}
