package model

import (
	"time"

	"github.com/google/uuid"
)

// ConsumoHistorialModel representa consumption_histories: el resumen
// inmutable de una semana ya transcurrida. El unique (comedor_id, week_id)
// es lo que hace idempotente al archivador.
type ConsumoHistorialModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ComedorID  string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_historial_comedor_semana,priority:1" json:"comedor_id"`
	WeekID     string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_historial_comedor_semana,priority:2" json:"week_id"`
	TotalCount int       `gorm:"not null;default:0" json:"total_count"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ConsumoHistorialModel) TableName() string {
	return "consumption_histories"
}

// ConsumoHistorialDetalleModel — una fila por empleado dentro del historial.
type ConsumoHistorialDetalleModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	HistoryID  uuid.UUID `gorm:"type:uuid;not null;index:idx_detalles_history" json:"history_id"`
	EmployeeID string    `gorm:"type:varchar(50);not null" json:"employee_id"`
	Count      int       `gorm:"not null;default:0" json:"count"`
}

func (ConsumoHistorialDetalleModel) TableName() string {
	return "consumption_history_details"
}
