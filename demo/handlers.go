package demo

import (
	"github.com/dmitrymomot/viewkit"
	"github.com/dmitrymomot/viewkit/demo/pages"
)

// noArgs is the request type for routes that take no input.
type noArgs struct{}

func (g *Gallery) home(ctx viewkit.Context, _ noArgs) viewkit.Response {
	return viewkit.Templ(pages.HomePage(g.themes.Get()))
}

func (g *Gallery) label(ctx viewkit.Context, _ noArgs) viewkit.Response {
	return viewkit.Templ(pages.LabelPage(g.themes.Get()))
}

func (g *Gallery) title(ctx viewkit.Context, _ noArgs) viewkit.Response {
	return viewkit.Templ(pages.TitlePage(g.themes.Get()))
}

func (g *Gallery) paragraph(ctx viewkit.Context, _ noArgs) viewkit.Response {
	return viewkit.Templ(pages.ParagraphPage(g.themes.Get()))
}

func (g *Gallery) boxes(ctx viewkit.Context, _ noArgs) viewkit.Response {
	return viewkit.Templ(pages.BoxesPage(g.themes.Get()))
}

func (g *Gallery) misuse(ctx viewkit.Context, _ noArgs) viewkit.Response {
	return viewkit.Templ(pages.MisusePage(g.themes.Get()))
}
