package dto

import (
	"strings"
	"time"

	cModel "comedores_backend/internals/features/comedores/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateComedorRequest struct {
	ID         string `json:"id" validate:"required,min=1,max=50"`
	Name       string `json:"name" validate:"required,min=1,max=100"`
	EmpresaID  string `json:"empresa_id" validate:"required,min=1,max=50"`
	RequirePin *bool  `json:"require_pin,omitempty"`
}

func (r *CreateComedorRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	r.EmpresaID = strings.TrimSpace(r.EmpresaID)
}

func (r *CreateComedorRequest) ToModel() *cModel.ComedorModel {
	m := &cModel.ComedorModel{
		ID:         r.ID,
		Name:       r.Name,
		EmpresaID:  r.EmpresaID,
		RequirePin: true, // default legado: pedir PIN salvo que se indique lo contrario
	}
	if r.RequirePin != nil {
		m.RequirePin = *r.RequirePin
	}
	return m
}

type UpdateComedorRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	RequirePin *bool   `json:"require_pin,omitempty"`
}

func (r *UpdateComedorRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
}

func (r *UpdateComedorRequest) ApplyToModel(m *cModel.ComedorModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.RequirePin != nil {
		m.RequirePin = *r.RequirePin
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// ComedorEmpresaResponse — equivalente de la vista v_comedores_empresa
type ComedorEmpresaResponse struct {
	ComedorID     string    `json:"comedor_id"`
	ComedorNombre string    `json:"comedor_nombre"`
	RequirePin    bool      `json:"require_pin"`
	EmpresaID     string    `json:"empresa_id"`
	EmpresaNombre string    `json:"empresa_nombre"`
	EmpresaActiva bool      `json:"empresa_activa"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ComedorResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	EmpresaID  string    `json:"empresa_id"`
	RequirePin bool      `json:"require_pin"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromModel(m *cModel.ComedorModel) ComedorResponse {
	return ComedorResponse{
		ID:         m.ID,
		Name:       m.Name,
		EmpresaID:  m.EmpresaID,
		RequirePin: m.RequirePin,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
