package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODate(t *testing.T) {
	d, err := ParseISODate("2025-10-01")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.October, d.Month())
	assert.Equal(t, 1, d.Day())
	assert.Equal(t, time.UTC, d.Location())

	// whitespace tolerated, garbage rejected
	_, err = ParseISODate(" 2025-10-01 ")
	assert.NoError(t, err)

	for _, bad := range []string{"", "01-10-2025", "2025/10/01", "2025-13-01", "yesterday"} {
		_, err := ParseISODate(bad)
		assert.Error(t, err, "expected rejection for %q", bad)
	}
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(2025, time.February)
	assert.Equal(t, "2025-02-01", FormatISODate(first))
	assert.Equal(t, "2025-02-28", FormatISODate(last))

	// leap year
	first, last = MonthBounds(2024, time.February)
	assert.Equal(t, "2024-02-01", FormatISODate(first))
	assert.Equal(t, "2024-02-29", FormatISODate(last))
}

func TestYearBounds(t *testing.T) {
	first, last := YearBounds(2025)
	assert.Equal(t, "2025-01-01", FormatISODate(first))
	assert.Equal(t, "2025-12-31", FormatISODate(last))
}

func TestDaysInRange(t *testing.T) {
	a, _ := ParseISODate("2025-10-01")
	b, _ := ParseISODate("2025-10-31")
	assert.Equal(t, 31, DaysInRange(a, b))
	assert.Equal(t, 1, DaysInRange(a, a))
	assert.Equal(t, 0, DaysInRange(b, a))
}
