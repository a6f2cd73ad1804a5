package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "kshetraku_backend/internals/features/calendar/malayalam_months/model"
	helper "kshetraku_backend/internals/helpers"
)

type MalayalamMonthRangeResponse struct {
	MalayalamMonthRangeID        uuid.UUID `json:"malayalam_month_range_id"`
	MalayalamMonthRangeMonth     string    `json:"malayalam_month_range_month"`
	MalayalamMonthRangeYear      int       `json:"malayalam_month_range_year"`
	MalayalamMonthRangeStartDate string    `json:"malayalam_month_range_start_date"`
	MalayalamMonthRangeEndDate   string    `json:"malayalam_month_range_end_date"`
	MalayalamMonthRangeLabel     string    `json:"malayalam_month_range_label"`
	CreatedAt                    time.Time `json:"created_at"`
	UpdatedAt                    time.Time `json:"updated_at"`
}

func FromMalayalamMonthRangeModel(mm m.MalayalamMonthRangeModel) MalayalamMonthRangeResponse {
	return MalayalamMonthRangeResponse{
		MalayalamMonthRangeID:        mm.MalayalamMonthRangeID,
		MalayalamMonthRangeMonth:     mm.MalayalamMonthRangeMonth,
		MalayalamMonthRangeYear:      mm.MalayalamMonthRangeYear,
		MalayalamMonthRangeStartDate: helper.FormatISODate(mm.MalayalamMonthRangeStartDate),
		MalayalamMonthRangeEndDate:   helper.FormatISODate(mm.MalayalamMonthRangeEndDate),
		MalayalamMonthRangeLabel:     mm.MalayalamMonthRangeLabel,
		CreatedAt:                    mm.CreatedAt,
		UpdatedAt:                    mm.UpdatedAt,
	}
}

// MalayalamDateResponse is the derived Malayalam date for one Gregorian day.
type MalayalamDateResponse struct {
	Month      string `json:"month"`
	Year       int    `json:"year"`
	OrdinalDay int    `json:"ordinal_day"`
	Label      string `json:"label"`
}

type UpsertMalayalamMonthRangeRequest struct {
	Month     string `json:"month" validate:"required"`
	Year      int    `json:"year" validate:"required,min=1"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Label     string `json:"label" validate:"omitempty,max=80"`
}

func (r *UpsertMalayalamMonthRangeRequest) Normalize() {
	r.Month = strings.TrimSpace(r.Month)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
	r.Label = strings.TrimSpace(r.Label)
}
