package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kshetraku_backend/internals/features/bookings/ritual_pricing/controller"
)

// RitualAdminRoutes: ritual catalogue maintenance.
// No delete route: retiring a ritual is an update that clears
// ritual_is_active, so past bookings keep their reference.
func RitualAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRitualController(db)

	r.Get("/bookings/rituals", ctrl.List)
	r.Post("/bookings/rituals", ctrl.Create)
	r.Put("/bookings/rituals/:id", ctrl.Update)
}
