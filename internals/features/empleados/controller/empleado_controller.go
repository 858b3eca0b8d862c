package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"comedores_backend/internals/configs"
	comedorModel "comedores_backend/internals/features/comedores/model"
	empleadoDTO "comedores_backend/internals/features/empleados/dto"
	"comedores_backend/internals/features/empleados/model"
	"comedores_backend/internals/features/empleados/service"
	helper "comedores_backend/internals/helpers"
)

type EmpleadoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEmpleadoController(db *gorm.DB) *EmpleadoController {
	return &EmpleadoController{DB: db, Validate: validator.New()}
}

// GET /api/empleados?comedor_id=&search=
func (ctl *EmpleadoController) List(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.EmpleadoModel{})

	if comedorID := strings.TrimSpace(c.Query("comedor_id")); comedorID != "" {
		tx = tx.Where("comedor_id = ?", comedorID)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		tx = tx.Where("name ILIKE ? OR number ILIKE ?", like, like)
	}

	var empleados []model.EmpleadoModel
	if err := tx.Order("name").Find(&empleados).Error; err != nil {
		log.Println("[ERROR] ListEmpleados:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error obteniendo empleados")
	}
	return helper.JsonOK(c, "Empleados obtenidos", fiber.Map{
		"total":     len(empleados),
		"empleados": empleadoDTO.FromModelList(empleados),
	})
}

// GET /api/empleados/:id
func (ctl *EmpleadoController) GetByID(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	var empleado model.EmpleadoModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&empleado, "internal_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Empleado no encontrado")
		}
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Empleado obtenido", empleadoDTO.FromModel(&empleado))
}

// GET /api/a/empleados/inactivos?comedor_id=&umbral_dias=
// Equivalente de v_empleados_inactivos: sin consumo en más de N días.
func (ctl *EmpleadoController) Inactivos(c *fiber.Ctx) error {
	umbral := configs.GetEnvInt("INACTIVIDAD_UMBRAL_DIAS", service.UmbralInactividadDefault)
	if v := c.QueryInt("umbral_dias"); v > 0 {
		umbral = v
	}

	tx := ctl.DB.WithContext(c.UserContext()).
		Table("empleados").
		Select(`empleados.internal_id,
			empleados.name,
			empleados.number,
			empleados.type,
			empleados.comedor_id,
			comedores.name AS comedor_nombre,
			empleados.last_active_date`).
		Joins("JOIN comedores ON empleados.comedor_id = comedores.id").
		Where("empleados.last_active_date IS NOT NULL")

	if comedorID := strings.TrimSpace(c.Query("comedor_id")); comedorID != "" {
		tx = tx.Where("empleados.comedor_id = ?", comedorID)
	}

	var rows []struct {
		InternalID     string
		Name           string
		Number         *string
		Type           *string
		ComedorID      string
		ComedorNombre  string
		LastActiveDate *time.Time
	}
	if err := tx.Scan(&rows).Error; err != nil {
		log.Println("[ERROR] EmpleadosInactivos:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error obteniendo empleados inactivos")
	}

	actividad := make([]service.EmpleadoActividad, 0, len(rows))
	for _, r := range rows {
		actividad = append(actividad, service.EmpleadoActividad{
			InternalID:     r.InternalID,
			Nombre:         r.Name,
			Numero:         r.Number,
			Tipo:           r.Type,
			ComedorID:      r.ComedorID,
			ComedorNombre:  r.ComedorNombre,
			LastActiveDate: r.LastActiveDate,
		})
	}

	inactivos := service.ClasificarInactivos(actividad, time.Now(), umbral)
	resp := make([]empleadoDTO.EmpleadoInactivoResponse, 0, len(inactivos))
	for _, e := range inactivos {
		resp = append(resp, empleadoDTO.EmpleadoInactivoResponse{
			InternalID:     e.InternalID,
			EmpleadoNombre: e.Nombre,
			EmpleadoNumero: e.Numero,
			EmpleadoTipo:   e.Tipo,
			LastActiveDate: e.LastActiveDate,
			DiasInactivo:   e.DiasInactivo,
			ComedorID:      e.ComedorID,
			ComedorNombre:  e.ComedorNombre,
		})
	}

	return helper.JsonOK(c, "Empleados inactivos", fiber.Map{
		"umbral_dias": umbral,
		"total":       len(resp),
		"empleados":   resp,
	})
}

// POST /api/a/empleados
func (ctl *EmpleadoController) Create(c *fiber.Ctx) error {
	var req empleadoDTO.CreateEmpleadoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// el comedor debe existir
	var existe int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&comedorModel.ComedorModel{}).
		Where("id = ?", req.ComedorID).
		Count(&existe).Error; err != nil {
		return helper.JsonFromError(c, err)
	}
	if existe == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "El comedor indicado no existe")
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe un empleado con ese internal_id")
		}
		log.Println("[ERROR] CreateEmpleado:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creando empleado")
	}
	return helper.JsonCreated(c, "Empleado creado", empleadoDTO.FromModel(m))
}

// PUT /api/a/empleados/:id
func (ctl *EmpleadoController) Update(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	var req empleadoDTO.UpdateEmpleadoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var empleado model.EmpleadoModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&empleado, "internal_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Empleado no encontrado")
		}
		return helper.JsonFromError(c, err)
	}

	req.ApplyToModel(&empleado)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&empleado).Error; err != nil {
		log.Println("[ERROR] UpdateEmpleado:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error actualizando empleado")
	}
	return helper.JsonUpdated(c, "Empleado actualizado", empleadoDTO.FromModel(&empleado))
}

// DELETE /api/a/empleados/:id
func (ctl *EmpleadoController) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.EmpleadoModel{}, "internal_id = ?", id)
	if res.Error != nil {
		return helper.JsonFromError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Empleado no encontrado")
	}
	return helper.JsonDeleted(c, "Empleado eliminado", fiber.Map{"internal_id": id})
}
