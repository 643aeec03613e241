package ui

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/viewkit/pkg/datefmt"
	"github.com/dmitrymomot/viewkit/schema"
)

// Wire patterns for the query parameters picker interactions carry. The
// display format is a presentation concern and never travels.
const (
	wireDayPattern   = "YYYY-MM-DD"
	wireMonthPattern = "YYYY-MM"
)

// DefaultDateFormat is the display pattern used when the format argument is
// absent.
const DefaultDateFormat = "YYYY-MM-DD"

var datePickerSchema = schema.MustNew("datepicker",
	schema.Param{Name: "name", Required: true, Type: "string", Check: schema.NonEmptyString, Doc: "Form field name. Element IDs derive from it."},
	schema.Param{Name: "value", Type: "time.Time", Check: schema.IsTime, Doc: "Selected day."},
	schema.Param{Name: "min", Type: "time.Time", Check: schema.IsTime, Doc: "Earliest selectable day."},
	schema.Param{Name: "max", Type: "time.Time", Check: schema.IsTime, Doc: "Latest selectable day."},
	schema.Param{Name: "format", Type: "string", Default: DefaultDateFormat, Check: schema.NonEmptyString, Doc: "Display pattern for the input value, in datefmt tokens."},
	schema.Param{Name: "locale", Type: "string", Default: "en", Check: schema.NonEmptyString, Doc: "BCP 47 tag for month and weekday names."},
	schema.Param{Name: "month", Type: "time.Time", Check: schema.IsTime, Doc: "Visible month. Defaults to the selected day's month."},
	schema.Param{Name: "today", Type: "time.Time", Check: schema.IsTime, Doc: "Day highlighted as today. Defaults to the current day."},
	schema.Param{Name: "open", Type: "bool", Default: false, Check: schema.IsBool, Doc: "Render the calendar expanded."},
	schema.Param{Name: "action", Type: "string", Check: schema.IsString, Doc: "URL that month navigation and day selection target. Defaults to the current page."},
	schema.Param{Name: "class", Type: "string", Check: schema.IsString, Doc: "Additional CSS classes."},
	schema.Param{Name: "id", Type: "string", Check: schema.IsString, Doc: "Element ID. Defaults to datepicker-<name>."},
)

// DatePicker renders a text input paired with a calendar grid. Month
// navigation and day selection issue Datastar GET requests against the
// action URL carrying the picker state (name, month, day, locale, open), so
// a handler can re-render the picker as an SSE patch. Days outside the
// min/max bounds are disabled.
//
//	ui.DatePicker(schema.Args{
//		"name":  "day",
//		"value": picked,
//		"month": visible,
//		"open":  true,
//	})
func DatePicker(args schema.Args) templ.Component {
	return validated(datePickerSchema, args, func(ctx context.Context, w io.Writer, resolved schema.Args) error {
		return newPickerState(resolved).render(w)
	})
}

// pickerState is the fully-resolved picker: defaults applied, derived values
// computed once.
type pickerState struct {
	name     string
	id       string
	class    string
	action   string
	format   string
	locale   datefmt.Locale
	value    time.Time
	hasValue bool
	min      time.Time
	max      time.Time
	month    time.Time
	today    time.Time
	open     bool
}

func newPickerState(resolved schema.Args) pickerState {
	p := pickerState{
		name:   stringArg(resolved, "name"),
		class:  stringArg(resolved, "class"),
		action: stringArg(resolved, "action"),
		format: stringArg(resolved, "format"),
		open:   boolArg(resolved, "open"),
		locale: datefmt.MatchLocale(stringArg(resolved, "locale")),
	}

	p.id = stringArg(resolved, "id")
	if p.id == "" {
		p.id = "datepicker-" + p.name
	}

	p.value, p.hasValue = timeArg(resolved, "value")

	if min, ok := timeArg(resolved, "min"); ok {
		p.min = datefmt.StartOfDay(min)
	}
	if max, ok := timeArg(resolved, "max"); ok {
		p.max = datefmt.StartOfDay(max)
	}

	if today, ok := timeArg(resolved, "today"); ok {
		p.today = datefmt.StartOfDay(today)
	} else {
		p.today = datefmt.StartOfDay(time.Now())
	}

	if month, ok := timeArg(resolved, "month"); ok {
		p.month = datefmt.StartOfMonth(month)
	} else if p.hasValue {
		p.month = datefmt.StartOfMonth(p.value)
	} else {
		p.month = datefmt.StartOfMonth(p.today)
	}

	return p
}

func (p pickerState) render(w io.Writer) error {
	var root attrs
	root.set("id", p.id)
	root.set("class", classes("vk-datepicker", p.class))

	var b strings.Builder
	b.WriteString("<div")
	root.writeTo(&b)
	b.WriteString(">")
	p.writeInput(&b)
	if p.open {
		p.writeCalendar(&b)
	}
	b.WriteString("</div>")

	_, err := io.WriteString(w, b.String())
	return err
}

func (p pickerState) writeInput(b *strings.Builder) {
	var a attrs
	a.set("type", "text")
	a.set("id", p.id+"-input")
	a.set("class", "vk-datepicker-input")
	a.set("name", p.name)
	if p.hasValue {
		a.set("value", p.locale.Format(p.value, p.format))
	}
	a.set("placeholder", p.format)
	a.flag("readonly")
	a.set("data-on-click", "@get('"+p.toggleURL()+"')")

	b.WriteString("<input")
	a.writeTo(b)
	b.WriteString(">")
}

func (p pickerState) writeCalendar(b *strings.Builder) {
	var cal attrs
	cal.set("id", p.id+"-calendar")
	cal.set("class", "vk-datepicker-calendar")

	b.WriteString("<div")
	cal.writeTo(b)
	b.WriteString(">")
	p.writeNav(b)
	p.writeGrid(b)
	b.WriteString("</div>")
}

func (p pickerState) writeNav(b *strings.Builder) {
	b.WriteString(`<div class="vk-datepicker-nav">`)
	p.writeNavButton(b, "Previous month", "‹", datefmt.AddMonths(p.month, -1))
	b.WriteString(`<span class="vk-datepicker-month">`)
	b.WriteString(templ.EscapeString(p.locale.Format(p.month, "MMMM YYYY")))
	b.WriteString(`</span>`)
	p.writeNavButton(b, "Next month", "›", datefmt.AddMonths(p.month, 1))
	b.WriteString(`</div>`)
}

func (p pickerState) writeNavButton(b *strings.Builder, label, glyph string, target time.Time) {
	var a attrs
	a.set("type", "button")
	a.set("class", "vk-datepicker-nav-btn")
	a.set("aria-label", label)
	a.set("data-on-click", "@get('"+p.monthURL(target)+"')")

	b.WriteString("<button")
	a.writeTo(b)
	b.WriteString(">")
	b.WriteString(glyph)
	b.WriteString("</button>")
}

func (p pickerState) writeGrid(b *strings.Builder) {
	b.WriteString(`<div class="vk-datepicker-grid">`)
	for _, wd := range p.locale.WeekdayOrder() {
		b.WriteString(`<span class="vk-datepicker-weekday">`)
		b.WriteString(templ.EscapeString(p.locale.WeekdayShort(wd)))
		b.WriteString(`</span>`)
	}
	for _, week := range datefmt.MonthGrid(p.month, p.locale.WeekStart) {
		for _, day := range week {
			p.writeDay(b, day)
		}
	}
	b.WriteString(`</div>`)
}

func (p pickerState) writeDay(b *strings.Builder, day time.Time) {
	cls := "vk-datepicker-day"
	if day.Month() != p.month.Month() {
		cls += " is-outside"
	}
	if datefmt.SameDay(day, p.today) {
		cls += " is-today"
	}
	if p.hasValue && datefmt.SameDay(day, p.value) {
		cls += " is-selected"
	}

	var a attrs
	a.set("type", "button")
	a.set("class", cls)
	if datefmt.InRange(day, p.min, p.max) {
		a.set("data-on-click", "@get('"+p.dayURL(day)+"')")
	} else {
		a.flag("disabled")
	}

	b.WriteString("<button")
	a.writeTo(b)
	b.WriteString(">")
	b.WriteString(strconv.Itoa(day.Day()))
	b.WriteString("</button>")
}

// baseQuery carries the state every interaction URL needs to re-render the
// picker: field name, locale when not English, and the current selection.
func (p pickerState) baseQuery() url.Values {
	q := url.Values{}
	q.Set("name", p.name)
	if p.locale.Tag != language.English {
		q.Set("locale", p.locale.Tag.String())
	}
	if p.hasValue {
		q.Set("day", datefmt.Format(p.value, wireDayPattern))
	}
	return q
}

// toggleURL flips the calendar open or closed, keeping the visible month.
func (p pickerState) toggleURL() string {
	q := p.baseQuery()
	q.Set("month", datefmt.Format(p.month, wireMonthPattern))
	if !p.open {
		q.Set("open", "true")
	}
	return p.url(q)
}

// monthURL navigates to another month with the calendar kept open.
func (p pickerState) monthURL(month time.Time) string {
	q := p.baseQuery()
	q.Set("month", datefmt.Format(month, wireMonthPattern))
	q.Set("open", "true")
	return p.url(q)
}

// dayURL selects a day and closes the calendar.
func (p pickerState) dayURL(day time.Time) string {
	q := p.baseQuery()
	q.Set("day", datefmt.Format(day, wireDayPattern))
	q.Set("month", datefmt.Format(p.month, wireMonthPattern))
	return p.url(q)
}

// url joins the action with an encoded query. url.Values.Encode sorts keys,
// so interaction URLs are deterministic.
func (p pickerState) url(q url.Values) string {
	return p.action + "?" + q.Encode()
}
