package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	historialController "comedores_backend/internals/features/historiales/controller"
)

func HistorialAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := historialController.NewHistorialController(db)

	historiales := api.Group("/historiales")
	historiales.Post("/archivar", ctrl.Archivar)
	historiales.Get("/", ctrl.List)
	historiales.Get("/:id/detalles", ctrl.Detalles)
}
