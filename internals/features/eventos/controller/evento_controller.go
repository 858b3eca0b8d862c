package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"comedores_backend/internals/features/eventos/model"
	helper "comedores_backend/internals/helpers"
)

type EventoController struct {
	DB *gorm.DB
}

func NewEventoController(db *gorm.DB) *EventoController {
	return &EventoController{DB: db}
}

// GET /api/a/eventos?comedor_id=&since=RFC3339
// Endpoint de polling para dashboards: eventos posteriores a `since`.
func (ctl *EventoController) ListRecientes(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.ConsumoEventoModel{})

	if comedorID := strings.TrimSpace(c.Query("comedor_id")); comedorID != "" {
		tx = tx.Where("comedor_id = ?", comedorID)
	}
	if since := strings.TrimSpace(c.Query("since")); since != "" {
		t, err := time.Parse(time.RFC3339, since)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "since debe ser RFC3339")
		}
		tx = tx.Where("created_at > ?", t)
	}

	var eventos []model.ConsumoEventoModel
	if err := tx.Order("created_at DESC").Limit(100).Find(&eventos).Error; err != nil {
		log.Println("[ERROR] ListEventos:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error obteniendo eventos")
	}
	return helper.JsonOK(c, "Eventos obtenidos", fiber.Map{
		"total":   len(eventos),
		"eventos": eventos,
	})
}
