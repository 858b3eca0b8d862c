package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	semana "comedores_backend/internals/features/consumos/service"
	"comedores_backend/internals/features/historiales/repository"
	"comedores_backend/internals/features/historiales/service"
	helper "comedores_backend/internals/helpers"
)

type HistorialController struct {
	Service  *service.HistorialService
	Validate *validator.Validate
}

func NewHistorialController(db *gorm.DB) *HistorialController {
	return &HistorialController{
		Service:  service.NewHistorialService(repository.NewHistorialRepository(db)),
		Validate: validator.New(),
	}
}

type archivarRequest struct {
	ComedorID string `json:"comedor_id,omitempty"`
	WeekID    string `json:"week_id,omitempty"`
}

// POST /api/a/historiales/archivar
// Sin comedor_id archiva todos los comedores; sin week_id usa la semana
// actual. Reinvocar para una semana ya archivada es un no-op.
func (ctl *HistorialController) Archivar(c *fiber.Ctx) error {
	var req archivarRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
		}
	}
	req.ComedorID = strings.TrimSpace(req.ComedorID)
	req.WeekID = strings.TrimSpace(req.WeekID)
	if req.WeekID == "" {
		req.WeekID = semana.WeekID(time.Now())
	}

	if req.ComedorID != "" {
		result, err := ctl.Service.ArchivarSemana(c.UserContext(), req.ComedorID, req.WeekID)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		return helper.JsonOK(c, result.Mensaje, result)
	}

	resultados, err := ctl.Service.ArchivarTodos(c.UserContext(), req.WeekID)
	if err != nil {
		log.Println("[ERROR] ArchivarTodos:", err)
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Archivado procesado", fiber.Map{
		"week_id":    req.WeekID,
		"procesados": len(resultados),
		"detalles":   resultados,
	})
}

// GET /api/a/historiales?comedor_id=
func (ctl *HistorialController) List(c *fiber.Ctx) error {
	comedorID := strings.TrimSpace(c.Query("comedor_id"))

	historiales, err := ctl.Service.Repo.ListHistoriales(c.UserContext(), comedorID)
	if err != nil {
		log.Println("[ERROR] ListHistoriales:", err)
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Historiales obtenidos", fiber.Map{
		"total":       len(historiales),
		"historiales": historiales,
	})
}

// GET /api/a/historiales/:id/detalles
func (ctl *HistorialController) Detalles(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id de historial inválido")
	}

	rows, err := ctl.Service.Repo.ListDetalles(c.UserContext(), id)
	if err != nil {
		log.Println("[ERROR] ListDetalles:", err)
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Detalles del historial", fiber.Map{
		"history_id": id,
		"total":      len(rows),
		"detalles":   rows,
	})
}
