// Package datefmt provides display-pattern date formatting and the calendar
// math behind date-picker style interfaces.
//
// Date patterns use the token vocabulary common in design systems (YYYY, MM,
// DD, MMMM, ddd, ...) instead of Go's reference time, so a pattern can be
// stored in configuration, shared with designers, and rendered on both sides
// of an API without translation. The package converts patterns to reference
// layouts internally.
//
// # Patterns
//
// Supported tokens, longest match first:
//
//	YYYY  2006    four-digit year
//	YY    06      two-digit year
//	MMMM  January full month name
//	MMM   Jan     abbreviated month name
//	MM    01      zero-padded month
//	M     1       month
//	DD    02      zero-padded day
//	D     2       day
//	dddd  Monday  full weekday name
//	ddd   Mon     abbreviated weekday name
//	HH    15      zero-padded 24h hour
//	mm    04      zero-padded minute
//	ss    05      zero-padded second
//
// Characters outside the token table pass through unchanged:
//
//	datefmt.Format(t, "DD.MM.YYYY")   // "25.08.2026"
//	datefmt.Parse("YYYY-MM-DD", "2026-08-25")
//
// # Calendar Math
//
// MonthGrid lays a month out as complete weeks padded with adjacent-month
// days, which is exactly the shape a calendar widget renders. AddMonths
// clamps instead of normalizing, so stepping from January 31 lands on
// February 28 rather than March 3. InRange and Clamp treat zero-valued
// bounds as open.
//
// # Locales
//
// Month and weekday names are available for a small set of built-in locales
// resolved through golang.org/x/text/language matching:
//
//	loc := datefmt.MatchLocale("de-AT")
//	loc.Format(t, "dddd, D. MMMM YYYY") // "Dienstag, 25. August 2026"
//
// Parsing is intentionally English-only; localized names are a display
// concern.
package datefmt
