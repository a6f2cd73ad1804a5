package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kshetraku_backend/internals/features/calendar/calendar_days/controller"
	middlewares "kshetraku_backend/internals/middlewares"
)

// CalendarDayAdminRoutes: day edits and range applies, rate-limited.
func CalendarDayAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCalendarDayController(db)

	write := r.Group("/calendar", middlewares.CalendarWriteRateLimiter())
	write.Put("/days/naal", ctrl.SetNaal)
	write.Post("/days/range", ctrl.AssignRange)
}
