package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	comedorController "comedores_backend/internals/features/comedores/controller"
)

func ComedorPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := comedorController.NewComedorController(db)

	comedores := api.Group("/comedores")
	comedores.Get("/", ctrl.List)
	comedores.Get("/:id", ctrl.GetByID)
}

func ComedorAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := comedorController.NewComedorController(db)

	comedores := api.Group("/comedores")
	comedores.Post("/", ctrl.Create)
	comedores.Put("/:id", ctrl.Update)
	comedores.Delete("/:id", ctrl.Delete)
}
