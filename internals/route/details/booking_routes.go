package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ritualRoute "kshetraku_backend/internals/features/bookings/ritual_pricing/route"
)

func BookingUserRoutes(r fiber.Router, db *gorm.DB) {
	ritualRoute.RitualUserRoutes(r, db)
}

func BookingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ritualRoute.RitualAdminRoutes(r, db)
}
