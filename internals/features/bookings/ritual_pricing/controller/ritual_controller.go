// internals/features/bookings/ritual_pricing/controller/ritual_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kshetraku_backend/internals/features/bookings/ritual_pricing/dto"
	"kshetraku_backend/internals/features/bookings/ritual_pricing/model"
	"kshetraku_backend/internals/features/bookings/ritual_pricing/service"
	helper "kshetraku_backend/internals/helpers"
)

type RitualController struct {
	DB     *gorm.DB
	Quotes *service.QuoteService
}

func NewRitualController(db *gorm.DB) *RitualController {
	return &RitualController{
		DB:     db,
		Quotes: service.NewQuoteService(db),
	}
}

/* =========================================================
   QUOTE
   POST /bookings/quote
   ========================================================= */
func (ctrl *RitualController) Quote(c *fiber.Ctx) error {
	var req dto.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	quote, err := ctrl.Quotes.Quote(req, time.Now())
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return err
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute quote")
	}
	return helper.JsonOK(c, "Quote computed", quote)
}

/* =========================================================
   RITUAL CRUD (admin)
   ========================================================= */

// GET /bookings/rituals?page=&per_page=
func (ctrl *RitualController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.RitualModel{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load rituals")
	}

	var rituals []model.RitualModel
	if err := ctrl.DB.
		Order("ritual_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rituals).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load rituals")
	}

	return helper.JsonList(c, "Rituals loaded", rituals,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// POST /bookings/rituals
func (ctrl *RitualController) Create(c *fiber.Ctx) error {
	var req dto.UpsertRitualRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Ritual slug already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create ritual")
	}
	return helper.JsonCreated(c, "Ritual created", m)
}

// PUT /bookings/rituals/:id
func (ctrl *RitualController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var existing model.RitualModel
	if err := ctrl.DB.Where("ritual_id = ?", id).Take(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Ritual not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load ritual")
	}

	var req dto.UpsertRitualRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := ctrl.DB.Model(&existing).Updates(map[string]any{
		"ritual_name":                    m.RitualName,
		"ritual_slug":                    m.RitualSlug,
		"ritual_unit_price":              m.RitualUnitPrice,
		"ritual_is_naal_priced":          m.RitualIsNaalPriced,
		"ritual_subscription_multiplier": m.RitualSubscriptionMultiplier,
		"ritual_is_active":               m.RitualIsActive,
	}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update ritual")
	}
	return helper.JsonUpdated(c, "Ritual updated", existing)
}
