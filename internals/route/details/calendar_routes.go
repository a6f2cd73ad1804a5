package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calendarDayRoute "kshetraku_backend/internals/features/calendar/calendar_days/route"
	malayalamMonthRoute "kshetraku_backend/internals/features/calendar/malayalam_months/route"
)

func CalendarPublicRoutes(r fiber.Router, db *gorm.DB) {
	calendarDayRoute.CalendarDayPublicRoutes(r, db)
	malayalamMonthRoute.MalayalamMonthPublicRoutes(r, db)
}

func CalendarStaffRoutes(r fiber.Router, db *gorm.DB) {
	calendarDayRoute.CalendarDayStaffRoutes(r, db)
}

func CalendarAdminRoutes(r fiber.Router, db *gorm.DB) {
	calendarDayRoute.CalendarDayAdminRoutes(r, db)
	malayalamMonthRoute.MalayalamMonthAdminRoutes(r, db)
}
