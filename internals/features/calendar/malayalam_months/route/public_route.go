package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kshetraku_backend/internals/features/calendar/malayalam_months/controller"
)

// MalayalamMonthPublicRoutes: date lookup for the public calendar display.
func MalayalamMonthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMalayalamMonthController(db)

	r.Get("/calendar/malayalam-date", ctrl.Lookup)
	r.Get("/calendar/malayalam-months", ctrl.List)
}
