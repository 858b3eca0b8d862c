package model

import (
	"time"
)

// ComedorModel representa la tabla comedores. Cada comedor pertenece a
// exactamente una empresa.
type ComedorModel struct {
	ID         string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	EmpresaID  string    `gorm:"type:varchar(50);not null;index:idx_comedores_empresa" json:"empresa_id"`
	RequirePin bool      `gorm:"not null;default:true" json:"require_pin"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ComedorModel) TableName() string {
	return "comedores"
}
