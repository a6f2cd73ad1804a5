package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kshetraku_backend/internals/features/calendar/calendar_days/controller"
	featuresMiddleware "kshetraku_backend/internals/middlewares/features"
)

// CalendarDayStaffRoutes: raw naal-occurrence search for counter staff.
// Devotees get the same count indirectly through the booking quote.
// The role gate sits on the route, not the group, so the rest of /api/u
// stays open to any signed-in devotee.
func CalendarDayStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCalendarDayController(db)

	r.Get("/calendar/naal-occurrences", featuresMiddleware.IsTempleStaff(), ctrl.SearchNaal)
}
