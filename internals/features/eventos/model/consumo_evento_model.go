package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ConsumoEventoModel persiste cada evento emitido a los dashboards, para que
// un cliente que estuvo desconectado pueda recuperarlos por polling.
type ConsumoEventoModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ComedorID  string         `gorm:"type:varchar(50);not null;index:idx_eventos_comedor" json:"comedor_id"`
	EmployeeID string         `gorm:"type:varchar(50);not null" json:"employee_id"`
	Payload    datatypes.JSON `gorm:"type:jsonb;not null" json:"payload"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index:idx_eventos_created" json:"created_at"`
}

func (ConsumoEventoModel) TableName() string {
	return "consumo_events"
}
