package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kshetraku_backend/internals/features/calendar/calendar_days/controller"
)

// CalendarDayPublicRoutes: month grid is readable without a token so the
// public site can render the temple calendar.
func CalendarDayPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCalendarDayController(db)

	r.Get("/calendar/days", ctrl.GetMonth)
	r.Get("/calendar/days/:date", ctrl.GetDay)
}
