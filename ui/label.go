package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/viewkit/schema"
)

var labelSchema = schema.MustNew("label",
	schema.Param{Name: "text", Required: true, Type: "content", Check: IsContent, Doc: "Label text; accepts a string, ui.Text, or any templ fragment."},
	schema.Param{Name: "for", Type: "string", Check: schema.IsString, Doc: "ID of the form control the label describes."},
	schema.Param{Name: "class", Type: "string", Check: schema.IsString, Doc: "Additional CSS classes."},
	schema.Param{Name: "id", Type: "string", Check: schema.IsString, Doc: "Element ID."},
)

// Label renders a <label> element.
//
//	ui.Label(schema.Args{"text": "Day", "for": "day-input"})
func Label(args schema.Args) templ.Component {
	return validated(labelSchema, args, func(ctx context.Context, w io.Writer, resolved schema.Args) error {
		var a attrs
		a.set("id", stringArg(resolved, "id"))
		a.set("class", classes("vk-label", stringArg(resolved, "class")))
		a.set("for", stringArg(resolved, "for"))
		return writeElement(ctx, w, "label", a, contentArg(resolved, "text"))
	})
}
