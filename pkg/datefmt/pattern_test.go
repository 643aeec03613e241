package datefmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/viewkit/pkg/datefmt"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		expected string
	}{
		{
			name:     "iso date",
			pattern:  "YYYY-MM-DD",
			expected: "2006-01-02",
		},
		{
			name:     "european date",
			pattern:  "DD.MM.YYYY",
			expected: "02.01.2006",
		},
		{
			name:     "long form",
			pattern:  "dddd, D MMMM YYYY",
			expected: "Monday, 2 January 2006",
		},
		{
			name:     "abbreviated names",
			pattern:  "ddd DD MMM YY",
			expected: "Mon 02 Jan 06",
		},
		{
			name:     "time of day",
			pattern:  "HH:mm:ss",
			expected: "15:04:05",
		},
		{
			name:     "single digit tokens",
			pattern:  "M/D/YYYY",
			expected: "1/2/2006",
		},
		{
			name:     "literal passthrough",
			pattern:  "le D MMMM",
			expected: "le 2 January",
		},
		{
			name:     "empty pattern",
			pattern:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, datefmt.Layout(tt.pattern))
		})
	}
}

func TestFormat(t *testing.T) {
	ref := time.Date(2026, time.August, 25, 9, 5, 7, 0, time.UTC)

	assert.Equal(t, "2026-08-25", datefmt.Format(ref, "YYYY-MM-DD"))
	assert.Equal(t, "25.08.2026", datefmt.Format(ref, "DD.MM.YYYY"))
	assert.Equal(t, "Tuesday, 25 August 2026", datefmt.Format(ref, "dddd, D MMMM YYYY"))
	assert.Equal(t, "09:05:07", datefmt.Format(ref, "HH:mm:ss"))
	assert.Equal(t, "8/25/26", datefmt.Format(ref, "M/D/YY"))
}

func TestParse(t *testing.T) {
	t.Run("round trips a formatted date", func(t *testing.T) {
		parsed, err := datefmt.Parse("YYYY-MM-DD", "2026-08-25")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("parses month names", func(t *testing.T) {
		parsed, err := datefmt.Parse("D MMMM YYYY", "25 August 2026")
		require.NoError(t, err)
		assert.Equal(t, 25, parsed.Day())
		assert.Equal(t, time.August, parsed.Month())
	})

	t.Run("rejects empty pattern", func(t *testing.T) {
		_, err := datefmt.Parse("", "2026-08-25")
		assert.ErrorIs(t, err, datefmt.ErrEmptyPattern)
	})

	t.Run("rejects empty value", func(t *testing.T) {
		_, err := datefmt.Parse("YYYY-MM-DD", "")
		assert.ErrorIs(t, err, datefmt.ErrEmptyValue)
	})

	t.Run("rejects malformed value", func(t *testing.T) {
		_, err := datefmt.Parse("YYYY-MM-DD", "25.08.2026")
		assert.Error(t, err)
	})
}
