package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	empleadoController "comedores_backend/internals/features/empleados/controller"
)

func EmpleadoPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := empleadoController.NewEmpleadoController(db)

	empleados := api.Group("/empleados")
	empleados.Get("/", ctrl.List)
	empleados.Get("/:id", ctrl.GetByID)
}

func EmpleadoAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := empleadoController.NewEmpleadoController(db)

	empleados := api.Group("/empleados")
	// la ruta fija va antes que /:id para que no la capture el parámetro
	empleados.Get("/inactivos", ctrl.Inactivos)
	empleados.Post("/", ctrl.Create)
	empleados.Put("/:id", ctrl.Update)
	empleados.Delete("/:id", ctrl.Delete)
}
