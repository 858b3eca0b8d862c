package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	empresaController "comedores_backend/internals/features/empresas/controller"
)

// EmpresaPublicRoutes — lectura para tablets y dashboards
func EmpresaPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := empresaController.NewEmpresaController(db)

	empresas := api.Group("/empresas")
	empresas.Get("/", ctrl.List)
	empresas.Get("/:id", ctrl.GetByID)
	empresas.Get("/:id/stats", ctrl.Stats)
}

// EmpresaAdminRoutes — altas/bajas/cambios
func EmpresaAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := empresaController.NewEmpresaController(db)

	empresas := api.Group("/empresas")
	empresas.Post("/", ctrl.Create)
	empresas.Put("/:id", ctrl.Update)
	empresas.Delete("/:id", ctrl.Deactivate)
}
