package pages

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/viewkit/pkg/theme"
	"github.com/dmitrymomot/viewkit/schema"
	"github.com/dmitrymomot/viewkit/ui"
)

// LabelPage showcases ui.Label.
func LabelPage(t *theme.Theme) templ.Component {
	return Shell(ShellParams{Title: "Label", Active: "label", Theme: t},
		ui.Title(schema.Args{"text": "Label", "level": 1}),
		ui.Paragraph(schema.Args{"text": "A form label. The text argument accepts a plain string or any templ fragment."}),
		Example("Basic",
			`ui.Label(schema.Args{"text": "Day"})`,
			ui.Label(schema.Args{"text": "Day"}),
		),
		Example("Bound to a control",
			`ui.Label(schema.Args{"text": "Day", "for": "day-input"})`,
			ui.Label(schema.Args{"text": "Day", "for": "day-input"}),
		),
		Example("Structured content",
			`ui.Label(schema.Args{"text": ui.Fragment(ui.Title(schema.Args{"text": "Day", "level": 6}))})`,
			ui.Label(schema.Args{"text": ui.Fragment(ui.Title(schema.Args{"text": "Day", "level": 6}))}),
		),
		SchemaSection("label"),
	)
}

// TitlePage showcases ui.Title.
func TitlePage(t *theme.Theme) templ.Component {
	return Shell(ShellParams{Title: "Title", Active: "title", Theme: t},
		ui.Title(schema.Args{"text": "Title", "level": 1}),
		ui.Paragraph(schema.Args{"text": "A heading, h1 through h6. The level defaults to 2 and is bounds-checked by the schema."}),
		Example("Default level",
			`ui.Title(schema.Args{"text": "Pick a day"})`,
			ui.Title(schema.Args{"text": "Pick a day"}),
		),
		Example("Deep heading, centered",
			`ui.Title(schema.Args{"text": "Pick a day", "level": 4, "align": "center"})`,
			ui.Title(schema.Args{"text": "Pick a day", "level": 4, "align": "center"}),
		),
		SchemaSection("title"),
	)
}

// ParagraphPage showcases ui.Paragraph.
func ParagraphPage(t *theme.Theme) templ.Component {
	return Shell(ShellParams{Title: "Paragraph", Active: "paragraph", Theme: t},
		ui.Title(schema.Args{"text": "Paragraph", "level": 1}),
		ui.Paragraph(schema.Args{"text": "Body text with an optional alignment, checked against the four CSS text-align keywords."}),
		Example("Basic",
			`ui.Paragraph(schema.Args{"text": "Dates outside August are disabled."})`,
			ui.Paragraph(schema.Args{"text": "Dates outside August are disabled."}),
		),
		Example("Justified",
			`ui.Paragraph(schema.Args{"text": longCopy, "align": "justify"})`,
			ui.Paragraph(schema.Args{"text": longCopy, "align": "justify"}),
		),
		SchemaSection("paragraph"),
	)
}

const longCopy = "The validator collects every problem with a call before " +
	"reporting, so a component author fixes all of them from one diagnostic " +
	"instead of replaying the request once per mistake."

// BoxesPage showcases ui.Box, ui.VBox and ui.HBox.
func BoxesPage(t *theme.Theme) templ.Component {
	return Shell(ShellParams{Title: "Layout boxes", Active: "boxes", Theme: t},
		ui.Title(schema.Args{"text": "Layout boxes", "level": 1}),
		ui.Paragraph(schema.Args{"text": "Box is a plain container; VBox and HBox are flex columns and rows. All three nest freely."}),
		Example("Box",
			`ui.Box(schema.Args{"padding": "16px", "border": "1px dashed #94a3b8"},
	ui.Paragraph(schema.Args{"text": "Boxed content."}),
)`,
			ui.Box(schema.Args{"padding": "16px", "border": "1px dashed #94a3b8"},
				ui.Paragraph(schema.Args{"text": "Boxed content."}),
			),
		),
		Example("VBox",
			`ui.VBox(schema.Args{"gap": "8px"},
	ui.Label(schema.Args{"text": "Day"}),
	ui.Paragraph(schema.Args{"text": "Stacked with an 8px gap."}),
)`,
			ui.VBox(schema.Args{"gap": "8px"},
				ui.Label(schema.Args{"text": "Day"}),
				ui.Paragraph(schema.Args{"text": "Stacked with an 8px gap."}),
			),
		),
		Example("HBox",
			`ui.HBox(schema.Args{"gap": "16px", "align": "center", "justify": "between"},
	ui.Title(schema.Args{"text": "Left", "level": 5}),
	ui.Title(schema.Args{"text": "Right", "level": 5}),
)`,
			ui.HBox(schema.Args{"gap": "16px", "align": "center", "justify": "between"},
				ui.Title(schema.Args{"text": "Left", "level": 5}),
				ui.Title(schema.Args{"text": "Right", "level": 5}),
			),
		),
		SchemaSection("box"),
		boxVariantsNote(),
	)
}

func boxVariantsNote() templ.Component {
	return ui.Paragraph(schema.Args{
		"text": "VBox and HBox share one schema shape: gap, align, justify, " +
			"wrap, padding, class and id. See /api/schemas for the full " +
			"machine-readable definitions.",
	})
}
