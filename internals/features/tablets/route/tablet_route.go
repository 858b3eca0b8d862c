package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tabletController "comedores_backend/internals/features/tablets/controller"
)

func TabletPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := tabletController.NewTabletController(db)

	tablets := api.Group("/tablets")
	tablets.Get("/:tablet_id", ctrl.GetConfig)
	tablets.Post("/", ctrl.UpsertConfig)
}
