package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	consumoController "comedores_backend/internals/features/consumos/controller"
)

// ConsumoPublicRoutes — lo que usan las tablets
func ConsumoPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := consumoController.NewConsumoController(db)

	consumos := api.Group("/consumos")
	consumos.Post("/", ctrl.Registrar)
	consumos.Get("/semana-actual/:comedor_id", ctrl.SemanaActual)
}

// ConsumoAdminRoutes — resumen y limpieza del log
func ConsumoAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := consumoController.NewConsumoController(db)

	consumos := api.Group("/consumos")
	consumos.Get("/resumen-semana/:comedor_id", ctrl.ResumenSemana)
	consumos.Delete("/semana-actual/:comedor_id", ctrl.LimpiarLog)
}
