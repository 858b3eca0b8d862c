package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	semana "comedores_backend/internals/features/consumos/service"
	empresaDTO "comedores_backend/internals/features/empresas/dto"
	"comedores_backend/internals/features/empresas/model"
	helper "comedores_backend/internals/helpers"
)

type EmpresaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEmpresaController(db *gorm.DB) *EmpresaController {
	return &EmpresaController{DB: db, Validate: validator.New()}
}

// GET /api/empresas — solo empresas activas, ordenadas por nombre
func (ctl *EmpresaController) List(c *fiber.Ctx) error {
	var empresas []model.EmpresaModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("activa = TRUE").
		Order("nombre").
		Find(&empresas).Error; err != nil {
		log.Println("[ERROR] ListEmpresas:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error obteniendo empresas")
	}
	return helper.JsonOK(c, "Empresas obtenidas", empresaDTO.FromModelList(empresas))
}

// GET /api/empresas/:id
func (ctl *EmpresaController) GetByID(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	var empresa model.EmpresaModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&empresa, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
		}
		log.Println("[ERROR] GetEmpresa:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error obteniendo empresa")
	}
	return helper.JsonOK(c, "Empresa obtenida", empresaDTO.FromModel(&empresa))
}

// GET /api/empresas/:id/stats — totales de la empresa (hoy y semana actual)
func (ctl *EmpresaController) Stats(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	db := ctl.DB.WithContext(c.UserContext())

	var exists int64
	if err := db.Model(&model.EmpresaModel{}).Where("id = ?", id).Count(&exists).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
	}

	hoy := time.Now()
	weekID := semana.WeekID(hoy)

	var stats empresaDTO.EmpresaStatsResponse
	if err := db.Table("comedores").Where("empresa_id = ?", id).Count(&stats.TotalComedores).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	if err := db.Table("empleados").
		Joins("JOIN comedores ON empleados.comedor_id = comedores.id").
		Where("comedores.empresa_id = ?", id).
		Count(&stats.TotalEmpleados).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	if err := db.Table("consumption_logs").
		Joins("JOIN comedores ON consumption_logs.comedor_id = comedores.id").
		Where("comedores.empresa_id = ? AND consumption_logs.consumption_date = ?", id, hoy.Format("2006-01-02")).
		Select("COALESCE(SUM(consumption_logs.consumption_count), 0)").
		Scan(&stats.TotalConsumosHoy).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	if err := db.Table("consumption_logs").
		Joins("JOIN comedores ON consumption_logs.comedor_id = comedores.id").
		Where("comedores.empresa_id = ? AND consumption_logs.week_id = ?", id, weekID).
		Select("COALESCE(SUM(consumption_logs.consumption_count), 0)").
		Scan(&stats.TotalConsumosSemana).Error; err != nil {
		return helper.JsonFromError(c, err)
	}

	return helper.JsonOK(c, "Estadísticas de empresa", stats)
}

// POST /api/a/empresas
func (ctl *EmpresaController) Create(c *fiber.Ctx) error {
	var req empresaDTO.CreateEmpresaRequest
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
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe una empresa con ese id")
		}
		log.Println("[ERROR] CreateEmpresa:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creando empresa")
	}
	return helper.JsonCreated(c, "Empresa creada", empresaDTO.FromModel(m))
}

// PUT /api/a/empresas/:id
func (ctl *EmpresaController) Update(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	var req empresaDTO.UpdateEmpresaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var empresa model.EmpresaModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&empresa, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
		}
		return helper.JsonFromError(c, err)
	}

	req.ApplyToModel(&empresa)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&empresa).Error; err != nil {
		log.Println("[ERROR] UpdateEmpresa:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error actualizando empresa")
	}
	return helper.JsonUpdated(c, "Empresa actualizada", empresaDTO.FromModel(&empresa))
}

// DELETE /api/a/empresas/:id — baja lógica (activa = false)
func (ctl *EmpresaController) Deactivate(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.EmpresaModel{}).
		Where("id = ?", id).
		Update("activa", false)
	if res.Error != nil {
		return helper.JsonFromError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
	}
	return helper.JsonDeleted(c, "Empresa desactivada", fiber.Map{"id": id})
}
