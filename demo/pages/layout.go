package pages

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/viewkit/pkg/theme"
)

// datastarCDN is the Datastar client bundle every page loads. Interactions
// (calendar navigation, form submits, the live theme stream) go through it.
const datastarCDN = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// ShellParams configures the page shell shared by every gallery page.
type ShellParams struct {
	// Title becomes the document title, suffixed with the gallery name.
	Title string
	// Active is the nav item id highlighted for this page.
	Active string
	// Theme supplies the design tokens for the inline theme stylesheet.
	Theme *theme.Theme
}

type navItem struct {
	id    string
	label string
	href  string
}

// Gallery navigation in display order.
var navItems = []navItem{
	{id: "home", label: "Overview", href: "/"},
	{id: "label", label: "Label", href: "/components/label"},
	{id: "title", label: "Title", href: "/components/title"},
	{id: "paragraph", label: "Paragraph", href: "/components/paragraph"},
	{id: "boxes", label: "Layout boxes", href: "/components/boxes"},
	{id: "datepicker", label: "Date picker", href: "/components/datepicker"},
	{id: "misuse", label: "Misuse diagnostics", href: "/misuse"},
	{id: "schemas", label: "Schemas API", href: "/api/schemas"},
}

// Shell wraps page content in the gallery chrome: head with the Datastar
// bundle and the theme stylesheet, sidebar navigation, a main column for the
// body, and the toast container error patches target. The body element opens
// the /events stream so theme edits restyle the page without a reload.
func Shell(p ShellParams, body ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!doctype html><html lang=\"en\"><head>")
		b.WriteString(`<meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString("<title>")
		b.WriteString(templ.EscapeString(p.Title))
		b.WriteString(" · viewkit gallery</title>")
		b.WriteString(`<script type="module" src="` + datastarCDN + `"></script>`)
		writeThemeStyle(&b, p.Theme)
		b.WriteString("<style>")
		b.WriteString(galleryCSS)
		b.WriteString("</style>")
		b.WriteString(`</head><body data-on-load="@get('/events')">`)
		b.WriteString(`<div class="shell"><nav class="nav"><span class="nav-brand">viewkit</span>`)
		for _, item := range navItems {
			cls := "nav-link"
			if item.id == p.Active {
				cls += " is-active"
			}
			b.WriteString(`<a class="` + cls + `" href="` + item.href + `">`)
			b.WriteString(templ.EscapeString(item.label))
			b.WriteString("</a>")
		}
		b.WriteString(`</nav><main class="main">`)

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		for _, c := range body {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></div><div id="toast-container"></div></body></html>`)
		return err
	})
}

// ThemeStyle renders the theme tokens as the inline stylesheet the /events
// stream replaces on reload. The element id is the patch anchor.
func ThemeStyle(t *theme.Theme) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeThemeStyle(&b, t)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeThemeStyle(b *strings.Builder, t *theme.Theme) {
	b.WriteString(`<style id="theme-style">`)
	if t != nil {
		b.WriteString(t.CSS())
	}
	b.WriteString("</style>")
}

// galleryCSS styles the gallery chrome and the kit's vk-* classes from the
// theme tokens. It is deliberately plain; the kit itself ships no styles.
const galleryCSS = `*{box-sizing:border-box}
body{margin:0;background:var(--color-background);color:var(--color-text);font-family:var(--font-family);font-size:var(--font-size)}
.shell{display:flex;min-height:100vh}
.nav{display:flex;flex-direction:column;gap:2px;width:220px;padding:var(--spacing-md);border-right:1px solid var(--color-border)}
.nav-brand{font-weight:700;margin-bottom:var(--spacing-md)}
.nav-link{padding:6px 10px;border-radius:var(--radius-md);color:var(--color-text);text-decoration:none}
.nav-link:hover{background:var(--color-border)}
.nav-link.is-active{background:var(--color-primary);color:var(--color-background)}
.main{flex:1;max-width:860px;padding:var(--spacing-lg)}
.example{margin:var(--spacing-lg) 0}
.example-demo{padding:var(--spacing-md);border:1px solid var(--color-border);border-radius:var(--radius-md)}
.example-code{margin:0;padding:var(--spacing-sm) var(--spacing-md);overflow-x:auto;background:var(--color-text);color:var(--color-background);border-radius:0 0 var(--radius-md) var(--radius-md);font-size:0.85em}
.params{width:100%;border-collapse:collapse;margin:var(--spacing-md) 0}
.params th,.params td{padding:6px 10px;border:1px solid var(--color-border);text-align:left;vertical-align:top}
.params code{font-size:0.9em}
.badge{display:inline-block;padding:1px 6px;border-radius:var(--radius-md);background:var(--color-primary);color:var(--color-background);font-size:0.75em}
.violations{margin:var(--spacing-sm) 0;padding:var(--spacing-md);border:1px solid var(--color-border);border-left:4px solid #dc2626;border-radius:var(--radius-md)}
.violations ul{margin:var(--spacing-sm) 0 0;padding-left:1.2em}
.toast{position:fixed;right:16px;bottom:16px;max-width:420px;padding:var(--spacing-md);border-radius:var(--radius-md);background:var(--color-text);color:var(--color-background)}
.toast.is-error{background:#dc2626;color:#fff}
.toast.is-warning{background:#d97706;color:#fff}
.vk-datepicker{position:relative;display:inline-block}
.vk-datepicker-input{padding:6px 10px;border:1px solid var(--color-border);border-radius:var(--radius-md);font:inherit}
.vk-datepicker-calendar{position:absolute;z-index:10;margin-top:4px;padding:var(--spacing-sm);background:var(--color-background);border:1px solid var(--color-border);border-radius:var(--radius-md);box-shadow:0 4px 12px rgba(0,0,0,.08)}
.vk-datepicker-nav{display:flex;align-items:center;justify-content:space-between;gap:var(--spacing-sm);margin-bottom:var(--spacing-sm)}
.vk-datepicker-nav-btn{border:none;background:none;padding:2px 8px;cursor:pointer;font:inherit}
.vk-datepicker-grid{display:grid;grid-template-columns:repeat(7,2em);gap:2px}
.vk-datepicker-weekday{text-align:center;font-size:0.75em;opacity:.7}
.vk-datepicker-day{border:none;background:none;padding:4px 0;border-radius:var(--radius-md);cursor:pointer;font:inherit;text-align:center}
.vk-datepicker-day:hover{background:var(--color-border)}
.vk-datepicker-day.is-outside{opacity:.4}
.vk-datepicker-day.is-today{outline:1px solid var(--color-primary)}
.vk-datepicker-day.is-selected{background:var(--color-primary);color:var(--color-background)}
.vk-datepicker-day:disabled{opacity:.25;cursor:default}`
