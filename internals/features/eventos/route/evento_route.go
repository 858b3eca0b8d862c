package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventoController "comedores_backend/internals/features/eventos/controller"
)

func EventoAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := eventoController.NewEventoController(db)

	eventos := api.Group("/eventos")
	eventos.Get("/", ctrl.ListRecientes)
}
