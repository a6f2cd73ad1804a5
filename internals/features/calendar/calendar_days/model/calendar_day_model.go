package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CalendarDayModel is one row per calendar date. A date without a row is a
// "virtual day": reads project defaults for it, nothing is persisted until
// the first successful write. Rows are never deleted.
type CalendarDayModel struct {
	CalendarDayID   uuid.UUID `json:"calendar_day_id" gorm:"column:calendar_day_id;type:uuid;primaryKey"`
	CalendarDayDate time.Time `json:"calendar_day_date" gorm:"column:calendar_day_date;type:date;not null;uniqueIndex:uq_calendar_days_date"`

	// one of the 27 naal labels, or NULL when not yet assigned
	CalendarDayNaal *string `json:"calendar_day_naal" gorm:"column:calendar_day_naal"`

	// administrative Malayalam-year tag (numeral-as-string). Independent of
	// the malayalam_month_ranges table; the two are never reconciled.
	CalendarDayMalayalamYear *string `json:"calendar_day_malayalam_year" gorm:"column:calendar_day_malayalam_year"`

	// open extension map, opaque to the calendar core
	CalendarDayMetadata datatypes.JSONMap `json:"calendar_day_metadata" gorm:"column:calendar_day_metadata;type:jsonb"`

	// optimistic-concurrency token: starts at 1 on the first persisted write,
	// +1 per successful write, never reused
	CalendarDayVersion int `json:"calendar_day_version" gorm:"column:calendar_day_version;not null"`

	CalendarDayUpdatedBy uuid.UUID `json:"calendar_day_updated_by" gorm:"column:calendar_day_updated_by;type:uuid"`
	CreatedAt            time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt            time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (CalendarDayModel) TableName() string {
	return "calendar_days"
}

func (m *CalendarDayModel) BeforeCreate(tx *gorm.DB) error {
	if m.CalendarDayID == uuid.Nil {
		m.CalendarDayID = uuid.New()
	}
	return nil
}
