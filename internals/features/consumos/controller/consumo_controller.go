package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	consumoDTO "comedores_backend/internals/features/consumos/dto"
	"comedores_backend/internals/features/consumos/repository"
	"comedores_backend/internals/features/consumos/service"
	eventoService "comedores_backend/internals/features/eventos/service"
	helper "comedores_backend/internals/helpers"
)

type ConsumoController struct {
	Service  *service.ConsumoService
	Validate *validator.Validate
}

func NewConsumoController(db *gorm.DB) *ConsumoController {
	return &ConsumoController{
		Service:  service.NewConsumoService(repository.NewConsumoRepository(db), eventoService.NewSink(db)),
		Validate: validator.New(),
	}
}

// POST /api/consumos — registra un consumo (o incrementa el del día)
func (ctl *ConsumoController) Registrar(c *fiber.Ctx) error {
	var req consumoDTO.RegistrarConsumoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	fecha, err := req.Fecha(time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "consumption_date debe ser YYYY-MM-DD")
	}

	result, err := ctl.Service.Registrar(c.UserContext(), req.EmployeeID, req.ComedorID, fecha)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, result.Mensaje, result)
}

// GET /api/consumos/semana-actual/:comedor_id
func (ctl *ConsumoController) SemanaActual(c *fiber.Ctx) error {
	comedorID := strings.TrimSpace(c.Params("comedor_id"))

	rows, weekID, err := ctl.Service.SemanaActual(c.UserContext(), comedorID, time.Now())
	if err != nil {
		log.Println("[ERROR] ConsumosSemanaActual:", err)
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Consumos de la semana actual", fiber.Map{
		"week_id":  weekID,
		"total":    len(rows),
		"consumos": rows,
	})
}

// GET /api/a/consumos/resumen-semana/:comedor_id — totales por día
func (ctl *ConsumoController) ResumenSemana(c *fiber.Ctx) error {
	comedorID := strings.TrimSpace(c.Params("comedor_id"))

	rows, weekID, err := ctl.Service.ResumenSemana(c.UserContext(), comedorID, time.Now())
	if err != nil {
		log.Println("[ERROR] ResumenSemana:", err)
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Resumen de la semana", fiber.Map{
		"week_id": weekID,
		"rango":   service.WeekRange(time.Now()),
		"dias":    rows,
	})
}

// DELETE /api/a/consumos/semana-actual/:comedor_id — limpiar log
// Irreversible; pensado para después de archivar la semana.
func (ctl *ConsumoController) LimpiarLog(c *fiber.Ctx) error {
	comedorID := strings.TrimSpace(c.Params("comedor_id"))

	n, weekID, err := ctl.Service.LimpiarLog(c.UserContext(), comedorID, time.Now())
	if err != nil {
		log.Println("[ERROR] LimpiarLog:", err)
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Log de la semana limpiado", fiber.Map{
		"week_id":            weekID,
		"registros_borrados": n,
	})
}
