package datefmt

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Locale carries the display names a calendar needs for one language. The
// weekday arrays are indexed by time.Weekday (Sunday first) regardless of the
// locale's WeekStart.
type Locale struct {
	Tag           language.Tag
	Months        [12]string
	MonthsShort   [12]string
	Weekdays      [7]string
	WeekdaysShort [7]string
	WeekStart     time.Weekday
}

// MonthName returns the full name of m.
func (l Locale) MonthName(m time.Month) string { return l.Months[m-1] }

// MonthShort returns the abbreviated name of m.
func (l Locale) MonthShort(m time.Month) string { return l.MonthsShort[m-1] }

// WeekdayName returns the full name of d.
func (l Locale) WeekdayName(d time.Weekday) string { return l.Weekdays[d] }

// WeekdayShort returns the abbreviated name of d.
func (l Locale) WeekdayShort(d time.Weekday) string { return l.WeekdaysShort[d] }

// Format renders t according to a display pattern, substituting this locale's
// names for the MMMM, MMM, dddd and ddd tokens. Numeric tokens behave exactly
// as in Format.
func (l Locale) Format(t time.Time, pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) + 8)
	for i := 0; i < len(pattern); {
		switch {
		case strings.HasPrefix(pattern[i:], "MMMM"):
			b.WriteString(l.MonthName(t.Month()))
			i += 4
		case strings.HasPrefix(pattern[i:], "dddd"):
			b.WriteString(l.WeekdayName(t.Weekday()))
			i += 4
		case strings.HasPrefix(pattern[i:], "MMM"):
			b.WriteString(l.MonthShort(t.Month()))
			i += 3
		case strings.HasPrefix(pattern[i:], "ddd"):
			b.WriteString(l.WeekdayShort(t.Weekday()))
			i += 3
		default:
			tok, ok := nextToken(pattern[i:])
			if !ok {
				b.WriteByte(pattern[i])
				i++
				continue
			}
			b.WriteString(t.Format(tok.layout))
			i += len(tok.pattern)
		}
	}
	return b.String()
}

// WeekdayOrder returns the seven weekdays starting from the locale's first
// day of the week, in calendar-header order.
func (l Locale) WeekdayOrder() [7]time.Weekday {
	var order [7]time.Weekday
	for i := range order {
		order[i] = time.Weekday((int(l.WeekStart) + i) % 7)
	}
	return order
}

// Supported returns the tags of the built-in locales, English first. The
// slice is a copy.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// LocaleFor returns the built-in locale best matching the given tag. An
// undetermined or unsupported tag resolves to English.
func LocaleFor(tag language.Tag) Locale {
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return localeEnglish
	}
	return builtinLocales[idx]
}

// MatchLocale resolves a BCP 47 string, including Accept-Language style
// lists such as "de-AT, en;q=0.7", to the closest built-in locale.
// Unparseable or unsupported input falls back to English.
func MatchLocale(bcp47 string) Locale {
	tags, _, err := language.ParseAcceptLanguage(bcp47)
	if err != nil || len(tags) == 0 {
		return localeEnglish
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return localeEnglish
	}
	return builtinLocales[idx]
}
