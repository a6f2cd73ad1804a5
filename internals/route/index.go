// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kshetraku_backend/internals/configs"
	middlewares "kshetraku_backend/internals/middlewares"
	authMiddleware "kshetraku_backend/internals/middlewares/auth"
	featuresMiddleware "kshetraku_backend/internals/middlewares/features"
	routeDetails "kshetraku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== GROUPS =====================

	// PUBLIC → no token, rate-limited
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public", middlewares.GlobalRateLimiter())

	// PRIVATE (USER) → any valid token.
	// Note: Fiber group middleware attaches to the path prefix, so role gates
	// never go on this group; staff-only routes carry their gate per-route.
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	// ADMIN → Auth + role gate
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		featuresMiddleware.IsTempleAdmin(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Calendar routes...")
	routeDetails.CalendarPublicRoutes(public, db)
	routeDetails.CalendarStaffRoutes(private, db)
	routeDetails.CalendarAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Booking routes...")
	routeDetails.BookingUserRoutes(private, db)
	routeDetails.BookingAdminRoutes(admin, db)
}
