package model

import (
	"time"
)

// EmpresaModel representa la tabla empresas (tenant que agrupa comedores).
type EmpresaModel struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Nombre      string    `gorm:"type:varchar(200);not null;index:idx_empresas_nombre" json:"nombre"`
	Descripcion *string   `gorm:"type:text" json:"descripcion,omitempty"`
	LogoURL     *string   `gorm:"type:varchar(500)" json:"logo_url,omitempty"`
	Activa      bool      `gorm:"not null;default:true;index:idx_empresas_activa" json:"activa"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EmpresaModel) TableName() string {
	return "empresas"
}
