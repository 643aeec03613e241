package pages

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/viewkit"
	"github.com/dmitrymomot/viewkit/pkg/theme"
	"github.com/dmitrymomot/viewkit/schema"
	"github.com/dmitrymomot/viewkit/ui"
)

// ErrorPage is the full-page error view for plain HTTP requests.
func ErrorPage(t *theme.Theme, p viewkit.ErrorPageParams) templ.Component {
	body := []templ.Component{
		ui.Title(schema.Args{"text": "Error " + strconv.Itoa(p.StatusCode), "level": 1}),
		ui.Paragraph(schema.Args{"text": p.Error}),
	}
	if p.RequestID != "" {
		body = append(body, ui.Paragraph(schema.Args{
			"text":  "Request ID: " + p.RequestID,
			"class": "error-meta",
		}))
	}
	if p.RetryURL != "" {
		body = append(body, retryLink(p.RetryURL))
	}
	return Shell(ShellParams{Title: "Error", Theme: t}, body...)
}

func retryLink(url string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<p class="vk-paragraph"><a href="`+templ.EscapeString(url)+`">Try again</a></p>`)
		return err
	})
}

// ErrorToast is the notification patched into #toast-container on Datastar
// requests that fail.
func ErrorToast(p viewkit.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="toast`)
		switch p.Type {
		case "error", "warning":
			b.WriteString(" is-" + p.Type)
		}
		b.WriteString(`" role="alert">`)
		b.WriteString(templ.EscapeString(p.Message))
		if p.RequestID != "" {
			b.WriteString(`<br><small>request `)
			b.WriteString(templ.EscapeString(p.RequestID))
			b.WriteString(`</small>`)
		}
		b.WriteString("</div>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
