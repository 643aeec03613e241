package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/viewkit/schema"
)

var boxSchema = schema.MustNew("box",
	schema.Param{Name: "padding", Type: "string", Check: schema.IsString, Doc: "CSS padding value."},
	schema.Param{Name: "width", Type: "string", Check: schema.IsString, Doc: "CSS width value."},
	schema.Param{Name: "height", Type: "string", Check: schema.IsString, Doc: "CSS height value."},
	schema.Param{Name: "border", Type: "string", Check: schema.IsString, Doc: "CSS border shorthand."},
	schema.Param{Name: "background", Type: "string", Check: schema.IsString, Doc: "CSS background value."},
	schema.Param{Name: "class", Type: "string", Check: schema.IsString, Doc: "Additional CSS classes."},
	schema.Param{Name: "id", Type: "string", Check: schema.IsString, Doc: "Element ID."},
)

// Box renders a plain <div> container around its children.
//
//	ui.Box(schema.Args{"padding": "16px", "border": "1px solid #ccc"},
//		ui.Title(schema.Args{"text": "Pick a day"}),
//		ui.Paragraph(schema.Args{"text": "Dates outside August are disabled."}),
//	)
func Box(args schema.Args, children ...templ.Component) templ.Component {
	return validated(boxSchema, args, func(ctx context.Context, w io.Writer, resolved schema.Args) error {
		var st styles
		st.add("padding", stringArg(resolved, "padding"))
		st.add("width", stringArg(resolved, "width"))
		st.add("height", stringArg(resolved, "height"))
		st.add("border", stringArg(resolved, "border"))
		st.add("background", stringArg(resolved, "background"))

		var a attrs
		a.set("id", stringArg(resolved, "id"))
		a.set("class", classes("vk-box", stringArg(resolved, "class")))
		a.set("style", st.String())

		return writeElement(ctx, w, "div", a, templ.Join(children...))
	})
}

// Flex axis values for align-items and justify-content, keyed by the short
// names the box schemas accept.
var (
	flexAlign = map[string]string{
		"start":   "flex-start",
		"center":  "center",
		"end":     "flex-end",
		"stretch": "stretch",
	}
	flexJustify = map[string]string{
		"start":   "flex-start",
		"center":  "center",
		"end":     "flex-end",
		"between": "space-between",
		"around":  "space-around",
	}
)

func flexBoxSchema(component string) *schema.Schema {
	return schema.MustNew(component,
		schema.Param{Name: "gap", Type: "string", Check: schema.IsString, Doc: "CSS gap between children."},
		schema.Param{Name: "align", Type: "string", Check: schema.OneOf("start", "center", "end", "stretch"), Doc: "Cross-axis alignment."},
		schema.Param{Name: "justify", Type: "string", Check: schema.OneOf("start", "center", "end", "between", "around"), Doc: "Main-axis distribution."},
		schema.Param{Name: "wrap", Type: "bool", Default: false, Check: schema.IsBool, Doc: "Wrap children onto multiple lines."},
		schema.Param{Name: "padding", Type: "string", Check: schema.IsString, Doc: "CSS padding value."},
		schema.Param{Name: "class", Type: "string", Check: schema.IsString, Doc: "Additional CSS classes."},
		schema.Param{Name: "id", Type: "string", Check: schema.IsString, Doc: "Element ID."},
	)
}

var (
	vboxSchema = flexBoxSchema("vbox")
	hboxSchema = flexBoxSchema("hbox")
)

func flexBox(s *schema.Schema, baseClass, direction string, args schema.Args, children []templ.Component) templ.Component {
	return validated(s, args, func(ctx context.Context, w io.Writer, resolved schema.Args) error {
		var st styles
		st.add("display", "flex")
		st.add("flex-direction", direction)
		st.add("gap", stringArg(resolved, "gap"))
		st.add("align-items", flexAlign[stringArg(resolved, "align")])
		st.add("justify-content", flexJustify[stringArg(resolved, "justify")])
		if boolArg(resolved, "wrap") {
			st.add("flex-wrap", "wrap")
		}
		st.add("padding", stringArg(resolved, "padding"))

		var a attrs
		a.set("id", stringArg(resolved, "id"))
		a.set("class", classes(baseClass, stringArg(resolved, "class")))
		a.set("style", st.String())

		return writeElement(ctx, w, "div", a, templ.Join(children...))
	})
}

// VBox renders a flex column of its children.
//
//	ui.VBox(schema.Args{"gap": "8px"}, label, input)
func VBox(args schema.Args, children ...templ.Component) templ.Component {
	return flexBox(vboxSchema, "vk-vbox", "column", args, children)
}

// HBox renders a flex row of its children.
//
//	ui.HBox(schema.Args{"gap": "8px", "align": "center"}, icon, text)
func HBox(args schema.Args, children ...templ.Component) templ.Component {
	return flexBox(hboxSchema, "vk-hbox", "row", args, children)
}
