package service

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kshetraku_backend/internals/features/calendar/calendar_days/model"
	helper "kshetraku_backend/internals/helpers"
)

// ErrVersionConflict: the submitted version is stale. Nothing was mutated;
// the caller must re-read the day and retry with the fresh version.
var ErrVersionConflict = errors.New("calendar day version conflict")

type CalendarDayService struct {
	DB *gorm.DB
}

func NewCalendarDayService(db *gorm.DB) *CalendarDayService {
	return &CalendarDayService{DB: db}
}

// GetMonth returns every persisted day of the Gregorian month, ascending by
// date, plus the max updated_at among them (nil when the month is empty).
// Virtual days are never materialized here.
func (s *CalendarDayService) GetMonth(year int, month time.Month) ([]model.CalendarDayModel, *time.Time, error) {
	first, last := helper.MonthBounds(year, month)

	var days []model.CalendarDayModel
	if err := s.DB.
		Where("calendar_day_date BETWEEN ? AND ?", first, last).
		Order("calendar_day_date ASC").
		Find(&days).Error; err != nil {
		return nil, nil, err
	}

	var lastModified *time.Time
	for i := range days {
		if lastModified == nil || days[i].UpdatedAt.After(*lastModified) {
			u := days[i].UpdatedAt
			lastModified = &u
		}
	}
	return days, lastModified, nil
}

// GetDay returns the persisted row for the date, or nil when the day is
// still virtual. Absence is not an error; the controller projects defaults.
func (s *CalendarDayService) GetDay(date time.Time) (*model.CalendarDayModel, error) {
	var m model.CalendarDayModel
	err := s.DB.Where("calendar_day_date = ?", date).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SetNaal is the single-day conditional write.
//
// No row yet: the day comes into existence at version 1 no matter which
// version the caller submitted (first-write-wins, matching the range engine's
// create path). Row exists: the update only lands when the submitted version
// equals the stored one; the guarded UPDATE bumps the version by exactly 1.
// A stale version mutates nothing and returns ErrVersionConflict.
func (s *CalendarDayService) SetNaal(date time.Time, naal string, expectedVersion int, actor uuid.UUID) (*model.CalendarDayModel, error) {
	var out model.CalendarDayModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.CalendarDayModel
		err := tx.Where("calendar_day_date = ?", date).Take(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			now := time.Now()
			out = model.CalendarDayModel{
				CalendarDayID:        uuid.New(),
				CalendarDayDate:      date,
				CalendarDayNaal:      &naal,
				CalendarDayVersion:   1,
				CalendarDayUpdatedBy: actor,
				CreatedAt:            now,
				UpdatedAt:            now,
			}
			return tx.Create(&out).Error
		case err != nil:
			return err
		}

		// compare-and-swap: the version equality guard serializes concurrent
		// writers on the same date, exactly one of them lands
		res := tx.Model(&model.CalendarDayModel{}).
			Where("calendar_day_date = ? AND calendar_day_version = ?", date, expectedVersion).
			Updates(map[string]any{
				"calendar_day_naal":       naal,
				"calendar_day_version":    gorm.Expr("calendar_day_version + 1"),
				"calendar_day_updated_by": actor,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVersionConflict
		}

		return tx.Where("calendar_day_date = ?", date).Take(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CountRange counts persisted days in the inclusive span. This is the
// dry-run half of the range-assignment protocol.
func (s *CalendarDayService) CountRange(start, end time.Time) (int64, error) {
	var n int64
	err := s.DB.Model(&model.CalendarDayModel{}).
		Where("calendar_day_date BETWEEN ? AND ?", start, end).
		Count(&n).Error
	return n, err
}

// ApplyRange sets the Malayalam-year tag on every date in [start, end],
// creating rows for dates that had none (version 1). Naal values are left
// untouched. Writes are per-day and not atomic across the span: a mid-range
// failure leaves earlier days updated, so every step is logged for manual
// reconciliation. Repeating the call converges to the same state.
//
// The returned count is the number of rows that existed before mutation,
// matching what the dry-run preview reported.
func (s *CalendarDayService) ApplyRange(start, end time.Time, malayalamYear string, actor uuid.UUID) (int64, error) {
	matched, err := s.CountRange(start, end)
	if err != nil {
		return 0, err
	}

	written := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		res := s.DB.Model(&model.CalendarDayModel{}).
			Where("calendar_day_date = ?", d).
			Updates(map[string]any{
				"calendar_day_malayalam_year": malayalamYear,
				"calendar_day_version":        gorm.Expr("calendar_day_version + 1"),
				"calendar_day_updated_by":     actor,
			})
		if res.Error != nil {
			log.Printf("[ERROR] range apply stopped at %s after %d day(s) written: %v",
				helper.FormatISODate(d), written, res.Error)
			return matched, res.Error
		}
		if res.RowsAffected == 0 {
			now := time.Now()
			day := model.CalendarDayModel{
				CalendarDayID:            uuid.New(),
				CalendarDayDate:          d,
				CalendarDayMalayalamYear: &malayalamYear,
				CalendarDayVersion:       1,
				CalendarDayUpdatedBy:     actor,
				CreatedAt:                now,
				UpdatedAt:                now,
			}
			if err := s.DB.Create(&day).Error; err != nil {
				log.Printf("[ERROR] range apply stopped at %s after %d day(s) written: %v",
					helper.FormatISODate(d), written, err)
				return matched, err
			}
		}
		written++
	}

	log.Printf("[INFO] range apply %s..%s year=%s matched=%d written=%d",
		helper.FormatISODate(start), helper.FormatISODate(end), malayalamYear, matched, written)
	return matched, nil
}

// SearchNaalInRange returns the dates of every persisted day in [start, end]
// whose naal exactly equals the query, ascending. Virtual days can never
// match since they carry no naal. An empty result is a valid outcome, not an
// error.
func (s *CalendarDayService) SearchNaalInRange(naal string, start, end time.Time) ([]time.Time, error) {
	var dates []time.Time
	err := s.DB.Model(&model.CalendarDayModel{}).
		Where("calendar_day_naal = ? AND calendar_day_date BETWEEN ? AND ?", naal, start, end).
		Order("calendar_day_date ASC").
		Pluck("calendar_day_date", &dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}
