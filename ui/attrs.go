package ui

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// attrs accumulates HTML attributes in emission order. Components append in a
// fixed sequence, so identical arguments yield byte-identical markup.
type attrs struct {
	pairs []attr
}

type attr struct {
	name  string
	value string
	bare  bool
}

// set appends a name="value" attribute. Empty values are skipped.
func (a *attrs) set(name, value string) {
	if value == "" {
		return
	}
	a.pairs = append(a.pairs, attr{name: name, value: value})
}

// flag appends a bare boolean attribute such as disabled or readonly.
func (a *attrs) flag(name string) {
	a.pairs = append(a.pairs, attr{name: name, bare: true})
}

func (a *attrs) writeTo(b *strings.Builder) {
	for _, p := range a.pairs {
		b.WriteByte(' ')
		b.WriteString(p.name)
		if p.bare {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(p.value))
		b.WriteByte('"')
	}
}

// styles accumulates CSS declarations for an inline style attribute.
type styles struct {
	decls []string
}

// add appends one property:value declaration. Empty values are skipped.
func (s *styles) add(property, value string) {
	if value == "" {
		return
	}
	s.decls = append(s.decls, property+":"+value)
}

func (s *styles) String() string {
	return strings.Join(s.decls, ";")
}

// classes joins a component's base class with caller-supplied extras.
func classes(base, extra string) string {
	if extra == "" {
		return base
	}
	return base + " " + extra
}

// writeElement writes <tag attrs>body</tag>. A nil body yields an empty
// element.
func writeElement(ctx context.Context, w io.Writer, tag string, a attrs, body templ.Component) error {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	a.writeTo(&b)
	b.WriteByte('>')
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	if body != nil {
		if err := body.Render(ctx, w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+tag+">")
	return err
}

// writeVoid writes an element with no body, such as <input>.
func writeVoid(w io.Writer, tag string, a attrs) error {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	a.writeTo(&b)
	b.WriteByte('>')
	_, err := io.WriteString(w, b.String())
	return err
}
