// internals/features/calendar/calendar_days/controller/calendar_day_controller.go
package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kshetraku_backend/internals/constants"
	"kshetraku_backend/internals/features/calendar/calendar_days/dto"
	"kshetraku_backend/internals/features/calendar/calendar_days/service"
	helper "kshetraku_backend/internals/helpers"
)

type CalendarDayController struct {
	DB      *gorm.DB
	Service *service.CalendarDayService
}

func NewCalendarDayController(db *gorm.DB) *CalendarDayController {
	return &CalendarDayController{
		DB:      db,
		Service: service.NewCalendarDayService(db),
	}
}

/* =========================================================
   MONTH READ
   GET /calendar/days?year=&month=
   ========================================================= */
func (ctrl *CalendarDayController) GetMonth(c *fiber.Ctx) error {
	year, err := strconv.Atoi(strings.TrimSpace(c.Query("year")))
	if err != nil || year < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "year must be a positive integer")
	}
	month, err := strconv.Atoi(strings.TrimSpace(c.Query("month")))
	if err != nil || month < 1 || month > 12 {
		return fiber.NewError(fiber.StatusBadRequest, "month must be 1..12")
	}

	days, lastModified, err := ctrl.Service.GetMonth(year, time.Month(month))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load calendar month")
	}

	resp := dto.MonthResponse{
		Days:         make([]dto.CalendarDayResponse, 0, len(days)),
		LastModified: lastModified,
	}
	for _, d := range days {
		resp.Days = append(resp.Days, dto.FromCalendarDayModel(d))
	}

	// month grids are re-fetched by clients after every edit; a short public
	// cache still takes the read load off repeated dashboard renders
	if lastModified != nil {
		c.Set(fiber.HeaderLastModified, lastModified.UTC().Format(time.RFC1123))
		setPublicCache(c, 30)
	}

	return helper.JsonOK(c, "Calendar month loaded", resp)
}

/* =========================================================
   SINGLE-DAY READ
   GET /calendar/days/:date
   ========================================================= */
// A date without a row answers with the virtual projection (version 0,
// naal null) instead of 404: absence of a day record is never an error.
func (ctrl *CalendarDayController) GetDay(c *fiber.Ctx) error {
	date, err := helper.ParseISODate(c.Params("date"))
	if err != nil {
		return err
	}

	day, err := ctrl.Service.GetDay(date)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load calendar day")
	}

	if day == nil {
		return helper.JsonOK(c, "Calendar day loaded", dto.NewVirtualCalendarDay(date))
	}
	return helper.JsonOK(c, "Calendar day loaded", dto.FromCalendarDayModel(*day))
}

/* =========================================================
   SINGLE-DAY NAAL EDIT (optimistic concurrency)
   PUT /calendar/days/naal
   ========================================================= */
// A day with no row yet is created at version 1 regardless of the submitted
// version (first-write-wins; days are never deleted, so the stale-create
// window a stricter expected-version=0 rule would close cannot occur here).
func (ctrl *CalendarDayController) SetNaal(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SetNaalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !constants.IsValidNaal(req.Naal) {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown naal: "+req.Naal)
	}

	date, err := helper.ParseISODate(req.Date)
	if err != nil {
		return err
	}

	day, err := ctrl.Service.SetNaal(date, req.Naal, *req.Version, actorID)
	if err != nil {
		if errors.Is(err, service.ErrVersionConflict) {
			// distinguishable from validation (400/422) and auth (401/403):
			// the caller must re-read the day and retry with the new version
			return fiber.NewError(fiber.StatusConflict,
				"Day was modified by someone else. Reload and try again.")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save naal")
	}

	return helper.JsonUpdated(c, "Naal saved", dto.FromCalendarDayModel(*day))
}

/* =========================================================
   RANGE ASSIGNMENT (preview / apply)
   POST /calendar/days/range
   ========================================================= */
// Two-call protocol: the client first sends dry_run=true, shows the matched
// count for confirmation, then repeats the identical request with
// dry_run=false. No server-side session links the two calls; both are
// idempotent in effect.
func (ctrl *CalendarDayController) AssignRange(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.RangeAssignRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	start, err := helper.ParseISODate(req.StartDate)
	if err != nil {
		return err
	}
	end, err := helper.ParseISODate(req.EndDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fiber.NewError(fiber.StatusBadRequest, "end_date must not be before start_date")
	}

	var matched int64
	if req.DryRun {
		matched, err = ctrl.Service.CountRange(start, end)
	} else {
		matched, err = ctrl.Service.ApplyRange(start, end, req.MalayalamYear, actorID)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Range assignment failed")
	}

	return helper.JsonOK(c, "Range assignment processed", dto.RangeAssignResponse{
		Matched: matched,
		DryRun:  req.DryRun,
	})
}

/* =========================================================
   NAAL OCCURRENCE SEARCH
   GET /calendar/naal-occurrences?naal=&range_mode=&start_date=&end_date=
   ========================================================= */
func (ctrl *CalendarDayController) SearchNaal(c *fiber.Ctx) error {
	naal := strings.TrimSpace(c.Query("naal"))
	if naal == "" {
		return fiber.NewError(fiber.StatusBadRequest, "naal is required")
	}
	if !constants.IsValidNaal(naal) {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown naal: "+naal)
	}

	mode := strings.TrimSpace(c.Query("range_mode", service.RangeModeCustomRange))
	start, end, err := service.ResolveRangeWindow(mode, c.Query("start_date"), c.Query("end_date"), time.Now())
	if err != nil {
		return err
	}

	dates, err := ctrl.Service.SearchNaalInRange(naal, start, end)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Naal search failed")
	}

	resp := dto.NaalSearchResponse{
		Naal:      naal,
		StartDate: helper.FormatISODate(start),
		EndDate:   helper.FormatISODate(end),
		Count:     len(dates),
		Dates:     make([]string, 0, len(dates)),
	}
	for _, d := range dates {
		resp.Dates = append(resp.Dates, helper.FormatISODate(d))
	}

	// count 0 is a normal answer, never an error
	return helper.JsonOK(c, "Naal occurrences loaded", resp)
}

func setPublicCache(c *fiber.Ctx, seconds int) {
	c.Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", seconds, seconds*2))
}
