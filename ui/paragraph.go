package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/viewkit/schema"
)

var paragraphSchema = schema.MustNew("paragraph",
	schema.Param{Name: "text", Required: true, Type: "content", Check: IsContent, Doc: "Paragraph text; accepts a string, ui.Text, or any templ fragment."},
	schema.Param{Name: "align", Type: "string", Check: schema.OneOf("left", "right", "center", "justify"), Doc: "Text alignment."},
	schema.Param{Name: "class", Type: "string", Check: schema.IsString, Doc: "Additional CSS classes."},
	schema.Param{Name: "id", Type: "string", Check: schema.IsString, Doc: "Element ID."},
)

// Paragraph renders a <p> element.
//
//	ui.Paragraph(schema.Args{"text": "No date selected yet.", "align": "center"})
func Paragraph(args schema.Args) templ.Component {
	return validated(paragraphSchema, args, func(ctx context.Context, w io.Writer, resolved schema.Args) error {
		var st styles
		st.add("text-align", stringArg(resolved, "align"))

		var a attrs
		a.set("id", stringArg(resolved, "id"))
		a.set("class", classes("vk-paragraph", stringArg(resolved, "class")))
		a.set("style", st.String())

		return writeElement(ctx, w, "p", a, contentArg(resolved, "text"))
	})
}
