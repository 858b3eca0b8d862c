package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"comedores_backend/internals/configs"
	comedorRoute "comedores_backend/internals/features/comedores/route"
	consumoRoute "comedores_backend/internals/features/consumos/route"
	empleadoRoute "comedores_backend/internals/features/empleados/route"
	empresaRoute "comedores_backend/internals/features/empresas/route"
	eventoRoute "comedores_backend/internals/features/eventos/route"
	historialRoute "comedores_backend/internals/features/historiales/route"
	tabletRoute "comedores_backend/internals/features/tablets/route"
	authRoute "comedores_backend/internals/features/users/route"
	authMiddleware "comedores_backend/internals/middlewares/auth"
)

var startedAt = time.Now()

// SetupRoutes registra todas las rutas de la API.
//
// Grupos:
//   /api     → lectura pública y registro desde tablets
//   /api/u   → requiere sesión (cualquier rol)
//   /api/a   → requiere rol administrador
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		status := "ok"
		dbStatus := "ok"
		if sqlDB, err := db.DB(); err != nil {
			status, dbStatus = "degraded", "error"
		} else if err := sqlDB.PingContext(c.UserContext()); err != nil {
			status, dbStatus = "degraded", "error"
		}
		code := fiber.StatusOK
		if status != "ok" {
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":    status,
			"database":  dbStatus,
			"uptime":    time.Since(startedAt).Round(time.Second).String(),
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	api := app.Group("/api")

	// públicas: consultas de tablets y registro de consumos
	authRoute.AuthRoutes(api, db)
	empresaRoute.EmpresaPublicRoutes(api, db)
	comedorRoute.ComedorPublicRoutes(api, db)
	empleadoRoute.EmpleadoPublicRoutes(api, db)
	consumoRoute.ConsumoPublicRoutes(api, db)
	tabletRoute.TabletPublicRoutes(api, db)

	// con sesión
	user := api.Group("/u", authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))
	authRoute.AuthUserRoutes(user, db)

	// solo administrador
	admin := api.Group("/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireAdministrador(),
	)
	empresaRoute.EmpresaAdminRoutes(admin, db)
	comedorRoute.ComedorAdminRoutes(admin, db)
	empleadoRoute.EmpleadoAdminRoutes(admin, db)
	consumoRoute.ConsumoAdminRoutes(admin, db)
	historialRoute.HistorialAdminRoutes(admin, db)
	eventoRoute.EventoAdminRoutes(admin, db)
}
