package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"comedores_backend/internals/features/tablets/model"
	helper "comedores_backend/internals/helpers"
)

type TabletController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTabletController(db *gorm.DB) *TabletController {
	return &TabletController{DB: db, Validate: validator.New()}
}

// GET /api/tablets/:tablet_id
func (ctl *TabletController) GetConfig(c *fiber.Ctx) error {
	tabletID := strings.TrimSpace(c.Params("tablet_id"))

	var config model.TabletConfigModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&config, "tablet_id = ?", tabletID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tablet no encontrada")
		}
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Configuración de tablet", config)
}

type upsertTabletRequest struct {
	TabletID        string  `json:"tablet_id" validate:"required,min=1,max=100"`
	ActiveComedorID *string `json:"active_comedor_id,omitempty" validate:"omitempty,max=50"`
	Nickname        *string `json:"nickname,omitempty" validate:"omitempty,max=100"`
}

// POST /api/tablets — alta o actualización del vínculo tablet → comedor
func (ctl *TabletController) UpsertConfig(c *fiber.Ctx) error {
	var req upsertTabletRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	req.TabletID = strings.TrimSpace(req.TabletID)
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	nickname := "Sin sobrenombre"
	if req.Nickname != nil && strings.TrimSpace(*req.Nickname) != "" {
		nickname = strings.TrimSpace(*req.Nickname)
	}

	config := model.TabletConfigModel{
		TabletID:        req.TabletID,
		ActiveComedorID: req.ActiveComedorID,
		Nickname:        nickname,
	}

	// ON CONFLICT (tablet_id) DO UPDATE — mismo upsert que el endpoint legado
	if err := ctl.DB.WithContext(c.UserContext()).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tablet_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"active_comedor_id": config.ActiveComedorID,
			"nickname":          config.Nickname,
			"updated_at":        time.Now(),
		}),
	}).Create(&config).Error; err != nil {
		log.Println("[ERROR] UpsertTablet:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error guardando configuración de tablet")
	}
	return helper.JsonOK(c, "Configuración guardada", config)
}
