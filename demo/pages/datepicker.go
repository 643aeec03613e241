package pages

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/viewkit/pkg/datefmt"
	"github.com/dmitrymomot/viewkit/pkg/theme"
	"github.com/dmitrymomot/viewkit/schema"
	"github.com/dmitrymomot/viewkit/ui"
)

// PickPath is the form endpoint the date-picker page posts the selected day
// to. The picker's own calendar interactions stay on the page URL.
const PickPath = "/components/datepicker/pick"

// PickerParams is the state of the interactive picker demo, round-tripped
// through every calendar interaction and form submit.
type PickerParams struct {
	Name   string
	Day    time.Time
	Month  time.Time
	Locale string
	Open   bool
	Min    time.Time
	Max    time.Time
}

// Picker renders the demo's date picker from its round-tripped state.
// Zero values are omitted so the component's own defaults apply.
func Picker(p PickerParams) templ.Component {
	args := schema.Args{"name": p.Name}
	if !p.Day.IsZero() {
		args["value"] = p.Day
	}
	if !p.Month.IsZero() {
		args["month"] = p.Month
	}
	if p.Locale != "" {
		args["locale"] = p.Locale
	}
	if p.Open {
		args["open"] = true
	}
	if !p.Min.IsZero() {
		args["min"] = p.Min
	}
	if !p.Max.IsZero() {
		args["max"] = p.Max
	}
	return ui.DatePicker(args)
}

// SelectedDay is the caption below the picker naming the current selection.
// Its id anchors the patch sent after day clicks and form submits.
func SelectedDay(p PickerParams) templ.Component {
	text := "No date selected yet."
	if !p.Day.IsZero() {
		loc := datefmt.MatchLocale(p.Locale)
		text = "Selected: " + loc.Format(p.Day, "dddd, D MMMM YYYY")
	}
	return ui.Paragraph(schema.Args{"id": "selected-day", "text": text})
}

// PickerPatch is the Datastar partial for calendar interactions: the picker
// and its caption, morphed into place by their element ids.
func PickerPatch(p PickerParams) templ.Component {
	return templ.Join(Picker(p), SelectedDay(p))
}

// DatePickerPage is the full picker demo page.
func DatePickerPage(t *theme.Theme, p PickerParams) templ.Component {
	return Shell(ShellParams{Title: "Date picker", Active: "datepicker", Theme: t},
		ui.Title(schema.Args{"text": "Date picker", "level": 1}),
		ui.Paragraph(schema.Args{
			"text": "Opening the calendar, switching months and picking a day are " +
				"Datastar GET requests; the server re-renders the picker and patches " +
				"it over SSE. Selectable days are limited to one month around today. " +
				"Submitting the form posts the day through the form binder and " +
				"patches the caption below.",
		}),
		pickForm(p),
		SelectedDay(p),
		localeLinks(p.Locale),
		SchemaSection("datepicker"),
	)
}

// pickForm wraps the picker so a plain submit round-trips through the form
// binder; with Datastar available the submit becomes an SSE patch instead.
func pickForm(p PickerParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<form id="pick-form" method="post" action="` + PickPath + `"`)
		b.WriteString(` data-on-submit="@post('` + PickPath + `', {contentType: 'form'})">`)
		if p.Locale != "" {
			b.WriteString(`<input type="hidden" name="locale" value="`)
			b.WriteString(templ.EscapeString(p.Locale))
			b.WriteString(`">`)
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		row := ui.HBox(schema.Args{"gap": "12px", "align": "center"},
			ui.Label(schema.Args{"text": "Day", "for": "datepicker-" + p.Name + "-input"}),
			Picker(p),
			submitButton(),
		)
		if err := row.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, "</form>")
		return err
	})
}

func submitButton() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<button type="submit" class="vk-datepicker-input">Pick</button>`)
		return err
	})
}

// localeLinks re-renders the page in each built-in locale via a plain GET.
func localeLinks(active string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<p class="vk-paragraph">Locale: `)
		for i, tag := range datefmt.Supported() {
			if i > 0 {
				b.WriteString(" · ")
			}
			name := tag.String()
			if name == active || (active == "" && name == "en") {
				b.WriteString("<strong>" + templ.EscapeString(name) + "</strong>")
				continue
			}
			b.WriteString(`<a href="?locale=` + templ.EscapeString(name) + `">`)
			b.WriteString(templ.EscapeString(name))
			b.WriteString("</a>")
		}
		b.WriteString("</p>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
