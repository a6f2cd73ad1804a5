package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kshetraku_backend/internals/features/calendar/malayalam_months/model"
)

func d(t *testing.T, s string) time.Time {
	t.Helper()
	out, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return out.UTC()
}

func rangeModel(t *testing.T, month string, year int, start, end string) model.MalayalamMonthRangeModel {
	t.Helper()
	return model.MalayalamMonthRangeModel{
		MalayalamMonthRangeID:        uuid.New(),
		MalayalamMonthRangeMonth:     month,
		MalayalamMonthRangeYear:      year,
		MalayalamMonthRangeStartDate: d(t, start),
		MalayalamMonthRangeEndDate:   d(t, end),
		MalayalamMonthRangeLabel:     month,
	}
}

func TestValidateRange_RejectsInvertedSpan(t *testing.T) {
	err := ValidateRange(d(t, "2025-10-31"), d(t, "2025-10-01"), nil, uuid.Nil)
	assert.Error(t, err)
}

func TestValidateRange_AcceptsDisjointSpans(t *testing.T) {
	existing := []model.MalayalamMonthRangeModel{
		rangeModel(t, "Chingam", 1201, "2025-08-17", "2025-09-16"),
	}

	// immediately after the stored range
	err := ValidateRange(d(t, "2025-09-17"), d(t, "2025-10-17"), existing, uuid.Nil)
	assert.NoError(t, err)

	// immediately before
	err = ValidateRange(d(t, "2025-07-17"), d(t, "2025-08-16"), existing, uuid.Nil)
	assert.NoError(t, err)
}

func TestValidateRange_RejectsOverlap(t *testing.T) {
	existing := []model.MalayalamMonthRangeModel{
		rangeModel(t, "Chingam", 1201, "2025-08-17", "2025-09-16"),
	}

	cases := []struct {
		name       string
		start, end string
	}{
		{"partial overlap at the tail", "2025-09-10", "2025-10-10"},
		{"partial overlap at the head", "2025-08-01", "2025-08-20"},
		{"fully inside", "2025-08-20", "2025-09-01"},
		{"fully covering", "2025-08-01", "2025-10-01"},
		{"single shared boundary day", "2025-09-16", "2025-10-16"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRange(d(t, tc.start), d(t, tc.end), existing, uuid.Nil)
			assert.Error(t, err)
		})
	}
}

func TestValidateRange_ExcludesRowBeingUpdated(t *testing.T) {
	existing := []model.MalayalamMonthRangeModel{
		rangeModel(t, "Chingam", 1201, "2025-08-17", "2025-09-16"),
	}

	// re-saving the same span over itself is fine when its own ID is excluded
	err := ValidateRange(d(t, "2025-08-17"), d(t, "2025-09-16"), existing, existing[0].MalayalamMonthRangeID)
	assert.NoError(t, err)

	// but not when treated as a fresh insert
	err = ValidateRange(d(t, "2025-08-17"), d(t, "2025-09-16"), existing, uuid.Nil)
	assert.Error(t, err)
}

func TestGetMalayalamDate_OrdinalDayIsOneIndexed(t *testing.T) {
	ranges := []model.MalayalamMonthRangeModel{
		rangeModel(t, "Chingam", 1201, "2025-08-17", "2025-09-16"),
		rangeModel(t, "Kanni", 1201, "2025-09-17", "2025-10-17"),
	}

	md, ok := GetMalayalamDate(d(t, "2025-08-17"), ranges)
	require.True(t, ok)
	assert.Equal(t, "Chingam", md.Month)
	assert.Equal(t, 1201, md.Year)
	assert.Equal(t, 1, md.OrdinalDay)

	md, ok = GetMalayalamDate(d(t, "2025-09-20"), ranges)
	require.True(t, ok)
	assert.Equal(t, "Kanni", md.Month)
	assert.Equal(t, 4, md.OrdinalDay)
}

func TestGetMalayalamDate_NotFoundOutsideAllRanges(t *testing.T) {
	ranges := []model.MalayalamMonthRangeModel{
		rangeModel(t, "Chingam", 1201, "2025-08-17", "2025-09-16"),
	}

	_, ok := GetMalayalamDate(d(t, "2025-07-01"), ranges)
	assert.False(t, ok)
}

func TestGetMalayalamDate_IsPure(t *testing.T) {
	ranges := []model.MalayalamMonthRangeModel{
		rangeModel(t, "Kanni", 1201, "2025-09-17", "2025-10-17"),
		rangeModel(t, "Chingam", 1201, "2025-08-17", "2025-09-16"),
	}
	date := d(t, "2025-09-20")

	first, ok := GetMalayalamDate(date, ranges)
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := GetMalayalamDate(date, ranges)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}
