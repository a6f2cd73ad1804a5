package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kshetraku_backend/internals/features/calendar/malayalam_months/controller"
)

// MalayalamMonthAdminRoutes: range maintenance via the admin form.
func MalayalamMonthAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMalayalamMonthController(db)

	r.Post("/calendar/malayalam-months", ctrl.Create)
	r.Put("/calendar/malayalam-months/:id", ctrl.Update)
	r.Delete("/calendar/malayalam-months/:id", ctrl.Delete)
}
