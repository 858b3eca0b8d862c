package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	comedorDTO "comedores_backend/internals/features/comedores/dto"
	"comedores_backend/internals/features/comedores/model"
	helper "comedores_backend/internals/helpers"
)

type ComedorController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewComedorController(db *gorm.DB) *ComedorController {
	return &ComedorController{DB: db, Validate: validator.New()}
}

const comedorEmpresaSelect = `
	comedores.id AS comedor_id,
	comedores.name AS comedor_nombre,
	comedores.require_pin,
	comedores.empresa_id,
	COALESCE(empresas.nombre, 'Sin Empresa') AS empresa_nombre,
	COALESCE(empresas.activa, TRUE) AS empresa_activa,
	comedores.created_at,
	comedores.updated_at`

// GET /api/comedores?empresa_id= — con datos de la empresa (v_comedores_empresa)
func (ctl *ComedorController) List(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.UserContext()).
		Table("comedores").
		Select(comedorEmpresaSelect).
		Joins("LEFT JOIN empresas ON comedores.empresa_id = empresas.id")

	if empresaID := strings.TrimSpace(c.Query("empresa_id")); empresaID != "" {
		tx = tx.Where("comedores.empresa_id = ?", empresaID)
	}

	var rows []comedorDTO.ComedorEmpresaResponse
	if err := tx.Order("comedores.name").Scan(&rows).Error; err != nil {
		log.Println("[ERROR] ListComedores:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error obteniendo comedores")
	}
	return helper.JsonOK(c, "Comedores obtenidos", fiber.Map{
		"total":     len(rows),
		"comedores": rows,
	})
}

// GET /api/comedores/:id
func (ctl *ComedorController) GetByID(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	var row comedorDTO.ComedorEmpresaResponse
	res := ctl.DB.WithContext(c.UserContext()).
		Table("comedores").
		Select(comedorEmpresaSelect).
		Joins("LEFT JOIN empresas ON comedores.empresa_id = empresas.id").
		Where("comedores.id = ?", id).
		Scan(&row)
	if res.Error != nil {
		return helper.JsonFromError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Comedor no encontrado")
	}
	return helper.JsonOK(c, "Comedor obtenido", row)
}

// POST /api/a/comedores
func (ctl *ComedorController) Create(c *fiber.Ctx) error {
	var req comedorDTO.CreateComedorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe un comedor con ese id")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "La empresa indicada no existe")
		}
		log.Println("[ERROR] CreateComedor:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creando comedor")
	}
	return helper.JsonCreated(c, "Comedor creado", comedorDTO.FromModel(m))
}

// PUT /api/a/comedores/:id
func (ctl *ComedorController) Update(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	var req comedorDTO.UpdateComedorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var comedor model.ComedorModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&comedor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Comedor no encontrado")
		}
		return helper.JsonFromError(c, err)
	}

	req.ApplyToModel(&comedor)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&comedor).Error; err != nil {
		log.Println("[ERROR] UpdateComedor:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error actualizando comedor")
	}
	return helper.JsonUpdated(c, "Comedor actualizado", comedorDTO.FromModel(&comedor))
}

// DELETE /api/a/comedores/:id
func (ctl *ComedorController) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.ComedorModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonFromError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Comedor no encontrado")
	}
	return helper.JsonDeleted(c, "Comedor eliminado", fiber.Map{"id": id})
}
