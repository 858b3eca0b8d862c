package model

import (
	"time"
)

// ConsumoLogModel representa consumption_logs: una fila por empleado y día
// dentro de la semana en curso. El unique sobre (employee_id, comedor_id,
// consumption_date) es el que hace atómico el upsert del registrador.
type ConsumoLogModel struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID       string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_consumo_empleado_dia,priority:1" json:"employee_id"`
	ComedorID        string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_consumo_empleado_dia,priority:2;index:idx_consumos_comedor_semana,priority:1" json:"comedor_id"`
	ConsumptionDate  time.Time `gorm:"type:date;not null;uniqueIndex:uq_consumo_empleado_dia,priority:3" json:"consumption_date"`
	WeekID           string    `gorm:"type:varchar(20);not null;index:idx_consumos_comedor_semana,priority:2" json:"week_id"`
	DayName          string    `gorm:"type:varchar(20);not null" json:"day_name"`
	ConsumptionCount int       `gorm:"not null;default:1" json:"consumption_count"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ConsumoLogModel) TableName() string {
	return "consumption_logs"
}
