package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "comedores_backend/internals/features/users/controller"
	middlewares "comedores_backend/internals/middlewares"
)

// AuthRoutes monta /api/auth (login con rate limit estricto).
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// AuthUserRoutes monta las rutas que requieren sesión (grupo /api/u).
func AuthUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	user.Get("/me", ctrl.Me)
}
