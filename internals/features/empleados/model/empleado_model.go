package model

import (
	"time"
)

// EmpleadoModel representa la tabla empleados. El internal_id es la clave
// opaca que viene del sistema de credenciales; last_active_date solo lo
// actualiza el registro de consumos.
type EmpleadoModel struct {
	InternalID     string     `gorm:"column:internal_id;type:varchar(50);primaryKey" json:"internal_id"`
	ComedorID      string     `gorm:"type:varchar(50);not null;index:idx_empleados_comedor" json:"comedor_id"`
	Name           string     `gorm:"type:varchar(200);not null" json:"name"`
	Number         *string    `gorm:"type:varchar(50)" json:"number,omitempty"`
	Type           *string    `gorm:"type:varchar(50)" json:"type,omitempty"`
	Pin            *string    `gorm:"type:varchar(10)" json:"pin,omitempty"`
	LastActiveDate *time.Time `gorm:"column:last_active_date" json:"last_active_date,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EmpleadoModel) TableName() string {
	return "empleados"
}
