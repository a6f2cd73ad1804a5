package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "kshetraku_backend/internals/features/calendar/calendar_days/model"
	helper "kshetraku_backend/internals/helpers"
)

/* =========================================================
   RESPONSES
   ========================================================= */

// CalendarDayResponse is the day projection sent to clients. Persisted rows
// and virtual days share the same shape; a virtual day carries version 0.
type CalendarDayResponse struct {
	CalendarDayDate          string            `json:"calendar_day_date"`
	CalendarDayYear          int               `json:"calendar_day_year"`
	CalendarDayMonth         int               `json:"calendar_day_month"`
	CalendarDayDay           int               `json:"calendar_day_day"`
	CalendarDayWeekday       string            `json:"calendar_day_weekday"`
	CalendarDayNaal          *string           `json:"calendar_day_naal"`
	CalendarDayMalayalamYear *string           `json:"calendar_day_malayalam_year"`
	CalendarDayMetadata      datatypes.JSONMap `json:"calendar_day_metadata,omitempty"`
	CalendarDayVersion       int               `json:"calendar_day_version"`
	CalendarDayUpdatedBy     *uuid.UUID        `json:"calendar_day_updated_by,omitempty"`
	CreatedAt                *time.Time        `json:"created_at,omitempty"`
	UpdatedAt                *time.Time        `json:"updated_at,omitempty"`
}

func FromCalendarDayModel(mm m.CalendarDayModel) CalendarDayResponse {
	d := mm.CalendarDayDate
	resp := CalendarDayResponse{
		CalendarDayDate:          helper.FormatISODate(d),
		CalendarDayYear:          d.Year(),
		CalendarDayMonth:         int(d.Month()),
		CalendarDayDay:           d.Day(),
		CalendarDayWeekday:       d.Weekday().String(),
		CalendarDayNaal:          mm.CalendarDayNaal,
		CalendarDayMalayalamYear: mm.CalendarDayMalayalamYear,
		CalendarDayMetadata:      mm.CalendarDayMetadata,
		CalendarDayVersion:       mm.CalendarDayVersion,
	}
	if mm.CalendarDayUpdatedBy != uuid.Nil {
		ub := mm.CalendarDayUpdatedBy
		resp.CalendarDayUpdatedBy = &ub
	}
	if !mm.CreatedAt.IsZero() {
		ca := mm.CreatedAt
		resp.CreatedAt = &ca
	}
	if !mm.UpdatedAt.IsZero() {
		ua := mm.UpdatedAt
		resp.UpdatedAt = &ua
	}
	return resp
}

// NewVirtualCalendarDay projects the default shape for a date with no row.
func NewVirtualCalendarDay(d time.Time) CalendarDayResponse {
	return CalendarDayResponse{
		CalendarDayDate:    helper.FormatISODate(d),
		CalendarDayYear:    d.Year(),
		CalendarDayMonth:   int(d.Month()),
		CalendarDayDay:     d.Day(),
		CalendarDayWeekday: d.Weekday().String(),
		CalendarDayVersion: 0,
	}
}

type MonthResponse struct {
	Days         []CalendarDayResponse `json:"days"`
	LastModified *time.Time            `json:"last_modified"`
}

type RangeAssignResponse struct {
	Matched int64 `json:"matched"`
	DryRun  bool  `json:"dry_run"`
}

type NaalSearchResponse struct {
	Naal      string   `json:"naal"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Count     int      `json:"count"`
	Dates     []string `json:"dates"`
}

/* =========================================================
   REQUESTS
   ========================================================= */

type SetNaalRequest struct {
	Date string `json:"date" validate:"required"`
	Naal string `json:"naal" validate:"required"`

	// pointer so that an explicit 0 (virtual day) survives parsing
	Version *int `json:"version" validate:"required,min=0"`
}

func (r *SetNaalRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	r.Naal = strings.TrimSpace(r.Naal)
}

type RangeAssignRequest struct {
	StartDate     string `json:"start_date" validate:"required"`
	EndDate       string `json:"end_date" validate:"required"`
	MalayalamYear string `json:"malayalam_year" validate:"required,numeric,max=8"`
	DryRun        bool   `json:"dry_run"`
}

func (r *RangeAssignRequest) Normalize() {
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
	r.MalayalamYear = strings.TrimSpace(r.MalayalamYear)
}
