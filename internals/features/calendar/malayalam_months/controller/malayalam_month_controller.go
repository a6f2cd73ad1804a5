// internals/features/calendar/malayalam_months/controller/malayalam_month_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kshetraku_backend/internals/constants"
	"kshetraku_backend/internals/features/calendar/malayalam_months/dto"
	"kshetraku_backend/internals/features/calendar/malayalam_months/model"
	"kshetraku_backend/internals/features/calendar/malayalam_months/service"
	helper "kshetraku_backend/internals/helpers"
)

type MalayalamMonthController struct {
	DB      *gorm.DB
	Service *service.MalayalamMonthService
}

func NewMalayalamMonthController(db *gorm.DB) *MalayalamMonthController {
	return &MalayalamMonthController{
		DB:      db,
		Service: service.NewMalayalamMonthService(db),
	}
}

// GET /calendar/malayalam-months
func (ctrl *MalayalamMonthController) List(c *fiber.Ctx) error {
	ranges, err := ctrl.Service.ListRanges()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load month ranges")
	}
	out := make([]dto.MalayalamMonthRangeResponse, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, dto.FromMalayalamMonthRangeModel(r))
	}
	return helper.JsonOK(c, "Malayalam month ranges loaded", out)
}

// POST /calendar/malayalam-months
func (ctrl *MalayalamMonthController) Create(c *fiber.Ctx) error {
	mm, err := ctrl.parseUpsert(c)
	if err != nil {
		return err
	}

	created, err := ctrl.Service.CreateRange(*mm)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Malayalam month range created", dto.FromMalayalamMonthRangeModel(*created))
}

// PUT /calendar/malayalam-months/:id
func (ctrl *MalayalamMonthController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	mm, err := ctrl.parseUpsert(c)
	if err != nil {
		return err
	}

	updated, err := ctrl.Service.UpdateRange(id, *mm)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Month range not found")
		}
		return err
	}
	return helper.JsonUpdated(c, "Malayalam month range updated", dto.FromMalayalamMonthRangeModel(*updated))
}

// DELETE /calendar/malayalam-months/:id
func (ctrl *MalayalamMonthController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	if err := ctrl.Service.DeleteRange(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Month range not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete month range")
	}
	return helper.JsonDeleted(c, "Malayalam month range deleted", fiber.Map{"deleted_id": id})
}

// GET /calendar/malayalam-date?date=
func (ctrl *MalayalamMonthController) Lookup(c *fiber.Ctx) error {
	date, err := helper.ParseISODate(c.Query("date"))
	if err != nil {
		return err
	}

	ranges, err := ctrl.Service.ListRanges()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load month ranges")
	}

	md, ok := service.GetMalayalamDate(date, ranges)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "No Malayalam month range covers this date")
	}

	return helper.JsonOK(c, "Malayalam date resolved", dto.MalayalamDateResponse{
		Month:      md.Month,
		Year:       md.Year,
		OrdinalDay: md.OrdinalDay,
		Label:      md.Label,
	})
}

func (ctrl *MalayalamMonthController) parseUpsert(c *fiber.Ctx) (*model.MalayalamMonthRangeModel, error) {
	var req dto.UpsertMalayalamMonthRangeRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !constants.IsValidMalayalamMonth(req.Month) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Unknown Malayalam month: "+req.Month)
	}

	start, err := helper.ParseISODate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := helper.ParseISODate(req.EndDate)
	if err != nil {
		return nil, err
	}

	label := req.Label
	if label == "" {
		label = req.Month
	}

	return &model.MalayalamMonthRangeModel{
		MalayalamMonthRangeMonth:     req.Month,
		MalayalamMonthRangeYear:      req.Year,
		MalayalamMonthRangeStartDate: start,
		MalayalamMonthRangeEndDate:   end,
		MalayalamMonthRangeLabel:     label,
	}, nil
}
