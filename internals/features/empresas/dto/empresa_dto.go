package dto

import (
	"strings"
	"time"

	eModel "comedores_backend/internals/features/empresas/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateEmpresaRequest — el id lo elige el cliente (clave opaca legada)
type CreateEmpresaRequest struct {
	ID          string  `json:"id" validate:"required,min=1,max=50"`
	Nombre      string  `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion *string `json:"descripcion,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,max=500"`
}

func (r *CreateEmpresaRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.Nombre = strings.TrimSpace(r.Nombre)
	if r.Descripcion != nil {
		v := strings.TrimSpace(*r.Descripcion)
		r.Descripcion = &v
	}
}

func (r *CreateEmpresaRequest) ToModel() *eModel.EmpresaModel {
	return &eModel.EmpresaModel{
		ID:          r.ID,
		Nombre:      r.Nombre,
		Descripcion: r.Descripcion,
		LogoURL:     r.LogoURL,
		Activa:      true,
	}
}

// UpdateEmpresaRequest — update parcial (punteros para distinguir omit vs null)
type UpdateEmpresaRequest struct {
	Nombre      *string `json:"nombre,omitempty" validate:"omitempty,min=1,max=200"`
	Descripcion *string `json:"descripcion,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,max=500"`
	Activa      *bool   `json:"activa,omitempty"`
}

func (r *UpdateEmpresaRequest) Normalize() {
	if r.Nombre != nil {
		v := strings.TrimSpace(*r.Nombre)
		r.Nombre = &v
	}
}

func (r *UpdateEmpresaRequest) ApplyToModel(m *eModel.EmpresaModel) {
	if r.Nombre != nil {
		m.Nombre = *r.Nombre
	}
	if r.Descripcion != nil {
		m.Descripcion = r.Descripcion
	}
	if r.LogoURL != nil {
		m.LogoURL = r.LogoURL
	}
	if r.Activa != nil {
		m.Activa = *r.Activa
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type EmpresaResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion *string   `json:"descripcion,omitempty"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	Activa      bool      `json:"activa"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromModel(m *eModel.EmpresaModel) EmpresaResponse {
	return EmpresaResponse{
		ID:          m.ID,
		Nombre:      m.Nombre,
		Descripcion: m.Descripcion,
		LogoURL:     m.LogoURL,
		Activa:      m.Activa,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromModelList(ms []eModel.EmpresaModel) []EmpresaResponse {
	out := make([]EmpresaResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

// EmpresaStatsResponse — equivalente de sp_get_empresa_stats
type EmpresaStatsResponse struct {
	TotalComedores      int64 `json:"total_comedores"`
	TotalEmpleados      int64 `json:"total_empleados"`
	TotalConsumosHoy    int64 `json:"total_consumos_hoy"`
	TotalConsumosSemana int64 `json:"total_consumos_semana"`
}
