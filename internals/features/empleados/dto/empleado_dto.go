package dto

import (
	"strings"
	"time"

	empModel "comedores_backend/internals/features/empleados/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateEmpleadoRequest struct {
	InternalID string  `json:"internal_id" validate:"required,min=1,max=50"`
	ComedorID  string  `json:"comedor_id" validate:"required,min=1,max=50"`
	Name       string  `json:"name" validate:"required,min=1,max=200"`
	Number     *string `json:"number,omitempty" validate:"omitempty,max=50"`
	Type       *string `json:"type,omitempty" validate:"omitempty,max=50"`
	Pin        *string `json:"pin,omitempty" validate:"omitempty,min=4,max=10"`
}

func (r *CreateEmpleadoRequest) Normalize() {
	r.InternalID = strings.TrimSpace(r.InternalID)
	r.ComedorID = strings.TrimSpace(r.ComedorID)
	r.Name = strings.TrimSpace(r.Name)
	if r.Number != nil {
		v := strings.TrimSpace(*r.Number)
		r.Number = &v
	}
}

func (r *CreateEmpleadoRequest) ToModel() *empModel.EmpleadoModel {
	// last_active_date arranca en la fecha de alta (comportamiento legado)
	now := time.Now()
	return &empModel.EmpleadoModel{
		InternalID:     r.InternalID,
		ComedorID:      r.ComedorID,
		Name:           r.Name,
		Number:         r.Number,
		Type:           r.Type,
		Pin:            r.Pin,
		LastActiveDate: &now,
	}
}

type UpdateEmpleadoRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Number *string `json:"number,omitempty" validate:"omitempty,max=50"`
	Type   *string `json:"type,omitempty" validate:"omitempty,max=50"`
	Pin    *string `json:"pin,omitempty" validate:"omitempty,min=4,max=10"`
}

func (r *UpdateEmpleadoRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Number != nil {
		v := strings.TrimSpace(*r.Number)
		r.Number = &v
	}
}

func (r *UpdateEmpleadoRequest) ApplyToModel(m *empModel.EmpleadoModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Number != nil {
		m.Number = r.Number
	}
	if r.Type != nil {
		m.Type = r.Type
	}
	if r.Pin != nil {
		m.Pin = r.Pin
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type EmpleadoResponse struct {
	InternalID     string     `json:"internal_id"`
	ComedorID      string     `json:"comedor_id"`
	Name           string     `json:"name"`
	Number         *string    `json:"number,omitempty"`
	Type           *string    `json:"type,omitempty"`
	TienePin       bool       `json:"tiene_pin"`
	LastActiveDate *time.Time `json:"last_active_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func FromModel(m *empModel.EmpleadoModel) EmpleadoResponse {
	return EmpleadoResponse{
		InternalID:     m.InternalID,
		ComedorID:      m.ComedorID,
		Name:           m.Name,
		Number:         m.Number,
		Type:           m.Type,
		TienePin:       m.Pin != nil && *m.Pin != "",
		LastActiveDate: m.LastActiveDate,
		CreatedAt:      m.CreatedAt,
	}
}

func FromModelList(ms []empModel.EmpleadoModel) []EmpleadoResponse {
	out := make([]EmpleadoResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

// EmpleadoInactivoResponse — equivalente de la vista v_empleados_inactivos
type EmpleadoInactivoResponse struct {
	InternalID     string     `json:"internal_id"`
	EmpleadoNombre string     `json:"empleado_nombre"`
	EmpleadoNumero *string    `json:"empleado_numero,omitempty"`
	EmpleadoTipo   *string    `json:"empleado_tipo,omitempty"`
	LastActiveDate *time.Time `json:"last_active_date"`
	DiasInactivo   int        `json:"dias_inactivo"`
	ComedorID      string     `json:"comedor_id"`
	ComedorNombre  string     `json:"comedor_nombre"`
}
