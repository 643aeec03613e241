package datefmt

import (
	"strings"
	"time"
)

type token struct {
	pattern string
	layout  string
}

// tokens maps display-pattern tokens to Go reference-layout fragments.
// Longest tokens come first so the scanner never splits MMMM into two MM.
var tokens = []token{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"dddd", "Monday"},
	{"MMM", "Jan"},
	{"ddd", "Mon"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
}

// Layout translates a display pattern such as "DD MMM YYYY" into the Go
// reference layout ("02 Jan 2006"). Characters outside the token table pass
// through unchanged.
func Layout(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) + 4)
	for i := 0; i < len(pattern); {
		tok, ok := nextToken(pattern[i:])
		if !ok {
			b.WriteByte(pattern[i])
			i++
			continue
		}
		b.WriteString(tok.layout)
		i += len(tok.pattern)
	}
	return b.String()
}

// Format renders t according to a display pattern with English names. Use
// Locale.Format for localized month and weekday names.
func Format(t time.Time, pattern string) string {
	return t.Format(Layout(pattern))
}

// Parse interprets value according to a display pattern. Location semantics
// are those of time.Parse.
func Parse(pattern, value string) (time.Time, error) {
	if pattern == "" {
		return time.Time{}, ErrEmptyPattern
	}
	if value == "" {
		return time.Time{}, ErrEmptyValue
	}
	return time.Parse(Layout(pattern), value)
}

func nextToken(s string) (token, bool) {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok.pattern) {
			return tok, true
		}
	}
	return token{}, false
}
