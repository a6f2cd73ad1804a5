package service

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kshetraku_backend/internals/features/calendar/malayalam_months/model"
	helper "kshetraku_backend/internals/helpers"
)

type MalayalamMonthService struct {
	DB *gorm.DB
}

func NewMalayalamMonthService(db *gorm.DB) *MalayalamMonthService {
	return &MalayalamMonthService{DB: db}
}

func (s *MalayalamMonthService) ListRanges() ([]model.MalayalamMonthRangeModel, error) {
	var ranges []model.MalayalamMonthRangeModel
	err := s.DB.Order("malayalam_month_range_start_date ASC").Find(&ranges).Error
	return ranges, err
}

// CreateRange validates the candidate span against every stored range inside
// one transaction, then inserts. Overlap is the only integrity rule; there is
// no version column and concurrent edits are last-writer-wins.
func (s *MalayalamMonthService) CreateRange(mm model.MalayalamMonthRangeModel) (*model.MalayalamMonthRangeModel, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing []model.MalayalamMonthRangeModel
		if err := tx.Find(&existing).Error; err != nil {
			return err
		}
		if err := ValidateRange(mm.MalayalamMonthRangeStartDate, mm.MalayalamMonthRangeEndDate, existing, uuid.Nil); err != nil {
			return err
		}
		return tx.Create(&mm).Error
	})
	if err != nil {
		return nil, err
	}
	return &mm, nil
}

func (s *MalayalamMonthService) UpdateRange(id uuid.UUID, mm model.MalayalamMonthRangeModel) (*model.MalayalamMonthRangeModel, error) {
	var out model.MalayalamMonthRangeModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var current model.MalayalamMonthRangeModel
		if err := tx.Where("malayalam_month_range_id = ?", id).Take(&current).Error; err != nil {
			return err
		}

		var existing []model.MalayalamMonthRangeModel
		if err := tx.Find(&existing).Error; err != nil {
			return err
		}
		// the row being edited is excluded from the overlap test
		if err := ValidateRange(mm.MalayalamMonthRangeStartDate, mm.MalayalamMonthRangeEndDate, existing, id); err != nil {
			return err
		}

		res := tx.Model(&model.MalayalamMonthRangeModel{}).
			Where("malayalam_month_range_id = ?", id).
			Updates(map[string]any{
				"malayalam_month_range_month":      mm.MalayalamMonthRangeMonth,
				"malayalam_month_range_year":       mm.MalayalamMonthRangeYear,
				"malayalam_month_range_start_date": mm.MalayalamMonthRangeStartDate,
				"malayalam_month_range_end_date":   mm.MalayalamMonthRangeEndDate,
				"malayalam_month_range_label":      mm.MalayalamMonthRangeLabel,
			})
		if res.Error != nil {
			return res.Error
		}
		return tx.Where("malayalam_month_range_id = ?", id).Take(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MalayalamMonthService) DeleteRange(id uuid.UUID) error {
	res := s.DB.Where("malayalam_month_range_id = ?", id).Delete(&model.MalayalamMonthRangeModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

/* =========================================================
   PURE HELPERS (no DB)
   ========================================================= */

// ValidateRange rejects an inverted span and any overlap with the stored
// collection (pairwise inclusive-interval test). excludeID skips the row
// being updated.
func ValidateRange(start, end time.Time, existing []model.MalayalamMonthRangeModel, excludeID uuid.UUID) error {
	if end.Before(start) {
		return fiber.NewError(fiber.StatusBadRequest, "end_date must not be before start_date")
	}
	for _, r := range existing {
		if excludeID != uuid.Nil && r.MalayalamMonthRangeID == excludeID {
			continue
		}
		// inclusive intervals overlap unless one ends before the other starts
		if !end.Before(r.MalayalamMonthRangeStartDate) && !r.MalayalamMonthRangeEndDate.Before(start) {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf(
				"range overlaps %s %d (%s .. %s)",
				r.MalayalamMonthRangeMonth, r.MalayalamMonthRangeYear,
				helper.FormatISODate(r.MalayalamMonthRangeStartDate),
				helper.FormatISODate(r.MalayalamMonthRangeEndDate),
			))
		}
	}
	return nil
}

// MalayalamDate is the derived month/year/day for one Gregorian date.
type MalayalamDate struct {
	Month      string
	Year       int
	OrdinalDay int
	Label      string
}

// GetMalayalamDate scans the snapshot for the range containing date. Order
// independent since stored ranges never overlap. Pure: same inputs, same
// output. The ordinal day is 1-indexed within the Malayalam month.
func GetMalayalamDate(date time.Time, ranges []model.MalayalamMonthRangeModel) (*MalayalamDate, bool) {
	for _, r := range ranges {
		if date.Before(r.MalayalamMonthRangeStartDate) || date.After(r.MalayalamMonthRangeEndDate) {
			continue
		}
		return &MalayalamDate{
			Month:      r.MalayalamMonthRangeMonth,
			Year:       r.MalayalamMonthRangeYear,
			OrdinalDay: helper.DaysInRange(r.MalayalamMonthRangeStartDate, date),
			Label:      r.MalayalamMonthRangeLabel,
		}, true
	}
	return nil, false
}
