package ui

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/viewkit/schema"
)

var titleSchema = schema.MustNew("title",
	schema.Param{Name: "text", Required: true, Type: "content", Check: IsContent, Doc: "Heading text; accepts a string, ui.Text, or any templ fragment."},
	schema.Param{Name: "level", Type: "int", Default: 2, Check: schema.IntBetween(1, 6), Doc: "Heading level, 1 through 6."},
	schema.Param{Name: "align", Type: "string", Check: schema.OneOf("left", "center", "right"), Doc: "Text alignment."},
	schema.Param{Name: "class", Type: "string", Check: schema.IsString, Doc: "Additional CSS classes."},
	schema.Param{Name: "id", Type: "string", Check: schema.IsString, Doc: "Element ID."},
)

// Title renders a heading element, h1 through h6 according to level.
//
//	ui.Title(schema.Args{"text": "Pick a day", "level": 3})
func Title(args schema.Args) templ.Component {
	return validated(titleSchema, args, func(ctx context.Context, w io.Writer, resolved schema.Args) error {
		var st styles
		st.add("text-align", stringArg(resolved, "align"))

		var a attrs
		a.set("id", stringArg(resolved, "id"))
		a.set("class", classes("vk-title", stringArg(resolved, "class")))
		a.set("style", st.String())

		tag := "h" + strconv.Itoa(intArg(resolved, "level"))
		return writeElement(ctx, w, tag, a, contentArg(resolved, "text"))
	})
}
