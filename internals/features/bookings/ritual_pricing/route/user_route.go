package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kshetraku_backend/internals/features/bookings/ritual_pricing/controller"
)

// RitualUserRoutes: quote preview on the booking form.
func RitualUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRitualController(db)

	r.Post("/bookings/quote", ctrl.Quote)
	r.Get("/bookings/rituals", ctrl.List)
}
