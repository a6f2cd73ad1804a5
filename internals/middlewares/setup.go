package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"kshetraku_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base chain: CORS → access log → panic recovery.
// Rate limiters are attached per-group in the route setup.
func SetupMiddlewares(app *fiber.App) {
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(RecoveryMiddleware())
}
