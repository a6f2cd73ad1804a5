package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	helper "kshetraku_backend/internals/helpers"
)

// Range modes for the naal-occurrence search. The window is resolved here,
// before any query is issued.
const (
	RangeModeThisMonth   = "this_month"
	RangeModeThisYear    = "this_year"
	RangeModeCustomRange = "custom_range"
)

// ResolveRangeWindow turns a range mode plus optional bounds into an
// inclusive [start, end] span. custom_range requires both bounds with
// start ≤ end; the fixed modes ignore the bound parameters.
func ResolveRangeWindow(mode, startStr, endStr string, now time.Time) (time.Time, time.Time, error) {
	switch strings.TrimSpace(mode) {
	case RangeModeThisMonth:
		start, end := helper.MonthBounds(now.Year(), now.Month())
		return start, end, nil

	case RangeModeThisYear:
		start, end := helper.YearBounds(now.Year())
		return start, end, nil

	case RangeModeCustomRange:
		if strings.TrimSpace(startStr) == "" || strings.TrimSpace(endStr) == "" {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest,
				"custom_range requires both start_date and end_date")
		}
		start, err := helper.ParseISODate(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, err := helper.ParseISODate(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest,
				"end_date must not be before start_date")
		}
		return start, end, nil

	default:
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest,
			"range_mode must be this_month, this_year, or custom_range")
	}
}
