package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"comedores_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra los middlewares globales de la app.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
