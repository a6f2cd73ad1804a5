package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kshetraku_backend/internals/constants"
	dayService "kshetraku_backend/internals/features/calendar/calendar_days/service"
	"kshetraku_backend/internals/features/bookings/ritual_pricing/dto"
	"kshetraku_backend/internals/features/bookings/ritual_pricing/model"
	helper "kshetraku_backend/internals/helpers"
)

type QuoteService struct {
	DB   *gorm.DB
	Days *dayService.CalendarDayService
}

func NewQuoteService(db *gorm.DB) *QuoteService {
	return &QuoteService{
		DB:   db,
		Days: dayService.NewCalendarDayService(db),
	}
}

/* =========================================================
   PURE PRICING FORMULAS
   ========================================================= */

// StandardTotal: quantity × multiplier × unit price.
func StandardTotal(unitPrice int64, quantity, multiplier int) int64 {
	if quantity < 0 {
		quantity = 0
	}
	if multiplier < 1 {
		multiplier = 1
	}
	return unitPrice * int64(quantity) * int64(multiplier)
}

// NaalTotal: unit price × occurrence count. Zero occurrences quote to zero;
// whether that booking proceeds is the counter staff's call, not an error.
func NaalTotal(unitPrice int64, occurrences int) int64 {
	if occurrences < 0 {
		occurrences = 0
	}
	return unitPrice * int64(occurrences)
}

/* =========================================================
   QUOTE
   ========================================================= */

// Quote computes the booking total for one ritual. Naal-priced rituals are
// blocked until a naal is chosen; the count is recomputed on every call so a
// changed naal or range selection is always re-quoted from the day store.
func (s *QuoteService) Quote(req dto.QuoteRequest, now time.Time) (*dto.QuoteResponse, error) {
	var ritual model.RitualModel
	err := s.DB.Where("ritual_slug = ? AND ritual_is_active = ?", req.RitualSlug, true).Take(&ritual).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Ritual not found: "+req.RitualSlug)
	}
	if err != nil {
		return nil, err
	}

	if !ritual.RitualIsNaalPriced {
		qty := req.Quantity
		if qty < 1 {
			return nil, fiber.NewError(fiber.StatusBadRequest, "quantity must be at least 1")
		}
		quantity := qty
		multiplier := ritual.RitualSubscriptionMultiplier
		return &dto.QuoteResponse{
			RitualSlug: ritual.RitualSlug,
			RitualName: ritual.RitualName,
			Formula:    "standard",
			UnitPrice:  ritual.RitualUnitPrice,
			Total:      StandardTotal(ritual.RitualUnitPrice, quantity, multiplier),
			Quantity:   &quantity,
			Multiplier: &multiplier,
		}, nil
	}

	// nakshatrapooja path: no naal, no quote
	if req.Naal == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Choose a naal before requesting a quote")
	}
	if !constants.IsValidNaal(req.Naal) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Unknown naal: "+req.Naal)
	}

	mode := req.RangeMode
	if mode == "" {
		mode = dayService.RangeModeThisYear
	}
	start, end, err := dayService.ResolveRangeWindow(mode, req.StartDate, req.EndDate, now)
	if err != nil {
		return nil, err
	}

	dates, err := s.Days.SearchNaalInRange(req.Naal, start, end)
	if err != nil {
		return nil, err
	}

	count := len(dates)
	occ := make([]string, 0, count)
	for _, d := range dates {
		occ = append(occ, helper.FormatISODate(d))
	}

	return &dto.QuoteResponse{
		RitualSlug:      ritual.RitualSlug,
		RitualName:      ritual.RitualName,
		Formula:         "naal_occurrence",
		UnitPrice:       ritual.RitualUnitPrice,
		Total:           NaalTotal(ritual.RitualUnitPrice, count),
		Naal:            req.Naal,
		StartDate:       helper.FormatISODate(start),
		EndDate:         helper.FormatISODate(end),
		OccurrenceCount: &count,
		OccurrenceDates: occ,
	}, nil
}
