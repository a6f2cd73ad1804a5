// file: internals/helpers/dates.go
package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const ISODateLayout = "2006-01-02"

// ParseISODate parses a strict YYYY-MM-DD string into a UTC-midnight time.Time.
// All calendar-day keys go through here so date comparisons stay exact.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(ISODateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD: "+s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// MonthBounds returns the first and last day of a Gregorian month (inclusive).
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// YearBounds returns Jan 1 and Dec 31 of a Gregorian year (inclusive).
func YearBounds(year int) (time.Time, time.Time) {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// DaysInRange counts calendar days in the inclusive span [start, end].
func DaysInRange(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
