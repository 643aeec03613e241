package datefmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/viewkit/pkg/datefmt"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2026, time.August, 25, 14, 30, 45, 123, time.UTC)
	assert.Equal(t, date(2026, time.August, 25), datefmt.StartOfDay(in))
}

func TestStartOfMonth(t *testing.T) {
	in := time.Date(2026, time.August, 25, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, date(2026, time.August, 1), datefmt.StartOfMonth(in))
}

func TestEndOfMonth(t *testing.T) {
	in := date(2026, time.August, 25)
	expected := time.Date(2026, time.August, 31, 23, 59, 59, 999999999, time.UTC)
	assert.Equal(t, expected, datefmt.EndOfMonth(in))
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, datefmt.DaysIn(date(2026, time.August, 10)))
	assert.Equal(t, 28, datefmt.DaysIn(date(2026, time.February, 10)))
	assert.Equal(t, 29, datefmt.DaysIn(date(2024, time.February, 10)))
	assert.Equal(t, 31, datefmt.DaysIn(date(2026, time.December, 31)))
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		in       time.Time
		months   int
		expected time.Time
	}{
		{
			name:     "plain shift",
			in:       date(2026, time.March, 15),
			months:   1,
			expected: date(2026, time.April, 15),
		},
		{
			name:     "clamps to short month",
			in:       date(2026, time.January, 31),
			months:   1,
			expected: date(2026, time.February, 28),
		},
		{
			name:     "clamps to leap february",
			in:       date(2024, time.January, 31),
			months:   1,
			expected: date(2024, time.February, 29),
		},
		{
			name:     "backwards across a short month",
			in:       date(2026, time.August, 31),
			months:   -2,
			expected: date(2026, time.June, 30),
		},
		{
			name:     "full year",
			in:       date(2026, time.March, 15),
			months:   12,
			expected: date(2027, time.March, 15),
		},
		{
			name:     "across year boundary",
			in:       date(2026, time.November, 30),
			months:   3,
			expected: date(2027, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, datefmt.AddMonths(tt.in, tt.months))
		})
	}

	t.Run("preserves the clock", func(t *testing.T) {
		in := time.Date(2026, time.January, 31, 9, 30, 15, 42, time.UTC)
		out := datefmt.AddMonths(in, 1)
		assert.Equal(t, time.Date(2026, time.February, 28, 9, 30, 15, 42, time.UTC), out)
	})
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, time.August, 25, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, time.August, 25, 22, 30, 0, 0, time.UTC)

	assert.True(t, datefmt.SameDay(morning, evening))
	assert.False(t, datefmt.SameDay(morning, morning.AddDate(0, 0, 1)))
}

func TestInRange(t *testing.T) {
	min := date(2026, time.August, 1)
	max := date(2026, time.August, 31)

	t.Run("bounded", func(t *testing.T) {
		assert.True(t, datefmt.InRange(date(2026, time.August, 15), min, max))
		assert.True(t, datefmt.InRange(min, min, max))
		assert.True(t, datefmt.InRange(max, min, max))
		assert.False(t, datefmt.InRange(date(2026, time.July, 31), min, max))
		assert.False(t, datefmt.InRange(date(2026, time.September, 1), min, max))
	})

	t.Run("zero bounds are open", func(t *testing.T) {
		assert.True(t, datefmt.InRange(date(1999, time.January, 1), time.Time{}, max))
		assert.True(t, datefmt.InRange(date(2100, time.January, 1), min, time.Time{}))
	})
}

func TestClamp(t *testing.T) {
	min := date(2026, time.August, 1)
	max := date(2026, time.August, 31)

	assert.Equal(t, min, datefmt.Clamp(date(2026, time.July, 1), min, max))
	assert.Equal(t, max, datefmt.Clamp(date(2026, time.September, 15), min, max))

	mid := date(2026, time.August, 15)
	assert.Equal(t, mid, datefmt.Clamp(mid, min, max))
	assert.Equal(t, mid, datefmt.Clamp(mid, time.Time{}, time.Time{}))
}

func TestMonthGrid(t *testing.T) {
	t.Run("pads with adjacent month days", func(t *testing.T) {
		// August 2026 starts on a Saturday and ends on a Monday.
		weeks := datefmt.MonthGrid(date(2026, time.August, 25), time.Monday)
		require.Len(t, weeks, 6)

		assert.Equal(t, date(2026, time.July, 27), weeks[0][0])
		assert.Equal(t, date(2026, time.August, 1), weeks[0][5])
		assert.Equal(t, date(2026, time.August, 31), weeks[5][0])
		assert.Equal(t, date(2026, time.September, 6), weeks[5][6])
	})

	t.Run("respects week start", func(t *testing.T) {
		weeks := datefmt.MonthGrid(date(2026, time.August, 25), time.Sunday)
		require.Len(t, weeks, 6)

		assert.Equal(t, date(2026, time.July, 26), weeks[0][0])
		assert.Equal(t, time.Sunday, weeks[0][0].Weekday())
		assert.Equal(t, date(2026, time.September, 5), weeks[5][6])
	})

	t.Run("exact month needs no padding", func(t *testing.T) {
		// February 2027 runs Monday the 1st through Sunday the 28th.
		weeks := datefmt.MonthGrid(date(2027, time.February, 10), time.Monday)
		require.Len(t, weeks, 4)

		assert.Equal(t, date(2027, time.February, 1), weeks[0][0])
		assert.Equal(t, date(2027, time.February, 28), weeks[3][6])
	})

	t.Run("every week is fully populated", func(t *testing.T) {
		weeks := datefmt.MonthGrid(date(2026, time.August, 1), time.Monday)
		for _, week := range weeks {
			for i, day := range week {
				assert.False(t, day.IsZero())
				if i > 0 {
					assert.Equal(t, week[i-1].AddDate(0, 0, 1), day)
				}
			}
		}
	})
}
