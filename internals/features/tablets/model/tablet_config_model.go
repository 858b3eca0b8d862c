package model

import (
	"time"
)

// TabletConfigModel representa tablet_configs: el vínculo dispositivo →
// comedor activo. El tablet_id lo genera el propio dispositivo.
type TabletConfigModel struct {
	TabletID        string    `gorm:"column:tablet_id;type:varchar(100);primaryKey" json:"tablet_id"`
	ActiveComedorID *string   `gorm:"type:varchar(50)" json:"active_comedor_id,omitempty"`
	Nickname        string    `gorm:"type:varchar(100);not null;default:'Sin sobrenombre'" json:"nickname"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TabletConfigModel) TableName() string {
	return "tablet_configs"
}
