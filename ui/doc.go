// Package ui provides server-rendered UI components: labels, titles,
// paragraphs, layout boxes, and a calendar date picker. Components return
// templ.Component values and render deterministic HTML, so the same arguments
// always produce byte-identical markup.
//
// Arguments are passed named-argument style as schema.Args. Every component
// owns a package-level Schema built with schema.MustNew and resolves its
// arguments against it before producing output. Misuse renders nothing: the
// component's Render returns the *schema.Violations describing every problem
// with the call, and the error travels the normal render error path of that
// one component instance.
//
//	ui.Title(schema.Args{"text": "Pick a day", "level": 3})
//	ui.DatePicker(schema.Args{"name": "day", "month": month, "open": true})
//
// Text-like parameters accept plain strings, ui.Text, or any templ.Component
// wrapped in ui.Fragment; raw templ components are coerced automatically.
//
// Schemas() exposes every component schema in gallery order for reference
// pages and documentation endpoints.
package ui
