package datefmt

import "time"

// StartOfDay returns t truncated to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last instant of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// DaysIn returns the number of days in t's month.
func DaysIn(t time.Time) int {
	y, m, _ := t.Date()
	// Day 0 of the next month is the last day of this one.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// AddMonths shifts t by n calendar months, clamping the day of month to the
// target month's length instead of letting the overflow normalize: January 31
// plus one month is February 28 (or 29), not March 3.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	target := time.Date(y, m, 1, 0, 0, 0, 0, t.Location()).AddDate(0, n, 0)
	if last := DaysIn(target); d > last {
		d = last
	}
	ty, tm, _ := target.Date()
	h, min, sec := t.Clock()
	return time.Date(ty, tm, d, h, min, sec, t.Nanosecond(), t.Location())
}

// SameDay reports whether a and b fall on the same calendar date, each
// observed in its own location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// InRange reports whether t lies within [min, max]. A zero bound leaves that
// side open.
func InRange(t, min, max time.Time) bool {
	if !min.IsZero() && t.Before(min) {
		return false
	}
	if !max.IsZero() && t.After(max) {
		return false
	}
	return true
}

// Clamp constrains t to [min, max]. A zero bound leaves that side open.
func Clamp(t, min, max time.Time) time.Time {
	if !min.IsZero() && t.Before(min) {
		return min
	}
	if !max.IsZero() && t.After(max) {
		return max
	}
	return t
}

// MonthGrid lays out the month containing t as calendar weeks starting on
// weekStart. Leading and trailing cells carry adjacent-month days so every
// week is complete; a month spans four to six weeks.
func MonthGrid(t time.Time, weekStart time.Weekday) [][7]time.Time {
	first := StartOfMonth(t)
	last := first.AddDate(0, 1, -1)

	lead := int(first.Weekday()-weekStart+7) % 7
	cursor := first.AddDate(0, 0, -lead)

	var weeks [][7]time.Time
	for !cursor.After(last) {
		var week [7]time.Time
		for i := range week {
			week[i] = cursor
			cursor = cursor.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}
