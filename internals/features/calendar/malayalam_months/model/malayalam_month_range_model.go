package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MalayalamMonthRangeModel labels an inclusive Gregorian span with a
// Malayalam month/year. Display configuration only: it neither reads from
// nor writes the day store's malayalam_year tag. No version column, last
// writer wins; the only integrity rule is that stored ranges never overlap.
type MalayalamMonthRangeModel struct {
	MalayalamMonthRangeID        uuid.UUID `json:"malayalam_month_range_id" gorm:"column:malayalam_month_range_id;type:uuid;primaryKey"`
	MalayalamMonthRangeMonth     string    `json:"malayalam_month_range_month" gorm:"column:malayalam_month_range_month;not null"`
	MalayalamMonthRangeYear      int       `json:"malayalam_month_range_year" gorm:"column:malayalam_month_range_year;not null"`
	MalayalamMonthRangeStartDate time.Time `json:"malayalam_month_range_start_date" gorm:"column:malayalam_month_range_start_date;type:date;not null"`
	MalayalamMonthRangeEndDate   time.Time `json:"malayalam_month_range_end_date" gorm:"column:malayalam_month_range_end_date;type:date;not null"`
	MalayalamMonthRangeLabel     string    `json:"malayalam_month_range_label" gorm:"column:malayalam_month_range_label"`
	CreatedAt                    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt                    time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (MalayalamMonthRangeModel) TableName() string {
	return "malayalam_month_ranges"
}

func (m *MalayalamMonthRangeModel) BeforeCreate(tx *gorm.DB) error {
	if m.MalayalamMonthRangeID == uuid.Nil {
		m.MalayalamMonthRangeID = uuid.New()
	}
	return nil
}
