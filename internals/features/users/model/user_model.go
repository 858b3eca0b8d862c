package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel representa la tabla users (cuentas del panel, no empleados).
// Roles legados: administrador, monitor, usuario.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string    `gorm:"type:varchar(200);not null" json:"full_name"`
	Phone        *string   `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Role         string    `gorm:"type:varchar(20);not null;default:'monitor'" json:"role"`
	ComedorID    *string   `gorm:"type:varchar(50)" json:"comedor_id,omitempty"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
