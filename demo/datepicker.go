package demo

import (
	"time"

	"github.com/dmitrymomot/viewkit"
	"github.com/dmitrymomot/viewkit/demo/pages"
	"github.com/dmitrymomot/viewkit/pkg/datefmt"
)

// pickerRequest is the state a calendar interaction URL carries. The picker
// component builds these query strings itself; day and month arrive in the
// fixed wire patterns, never in the display format.
type pickerRequest struct {
	Name   string    `query:"name"`
	Day    time.Time `query:"day"`
	Month  time.Time `query:"month" pattern:"YYYY-MM"`
	Locale string    `query:"locale"`
	Open   bool      `query:"open"`
}

// pickFormRequest is the form submit payload.
type pickFormRequest struct {
	Day    time.Time `form:"day"`
	Locale string    `form:"locale"`
}

// datePicker serves the picker page and every calendar interaction on it.
func (g *Gallery) datePicker(ctx viewkit.Context, req pickerRequest) viewkit.Response {
	p := g.pickerParams(req)
	return viewkit.TemplPartial(
		pages.PickerPatch(p),
		pages.DatePickerPage(g.themes.Get(), p),
	)
}

// pickDay handles the form submit: the caption is patched for Datastar
// requests, plain submits get the whole page back.
func (g *Gallery) pickDay(ctx viewkit.Context, req pickFormRequest) viewkit.Response {
	p := g.pickerParams(pickerRequest{Day: req.Day, Locale: req.Locale})
	return viewkit.TemplPartial(
		pages.SelectedDay(p),
		pages.DatePickerPage(g.themes.Get(), p),
	)
}

// pickerParams fills the demo's picker state: the field name is fixed and
// selectable days are bounded to a month either side of today.
func (g *Gallery) pickerParams(req pickerRequest) pages.PickerParams {
	name := req.Name
	if name == "" {
		name = "day"
	}

	today := datefmt.StartOfDay(time.Now())
	return pages.PickerParams{
		Name:   name,
		Day:    req.Day,
		Month:  req.Month,
		Locale: req.Locale,
		Open:   req.Open,
		Min:    datefmt.AddMonths(today, -1),
		Max:    datefmt.AddMonths(today, 1),
	}
}
