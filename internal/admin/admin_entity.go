package admin

import (
	"time"

	"github.com/google/uuid"
)

type AdminUser struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:text;not null"`
	Email    string    `gorm:"type:text;uniqueIndex:uq_admin_users_email;not null"`
	Password string    `gorm:"type:text;not null"`
	Role     string    `gorm:"type:text;not null;default:'ADMIN'"`
	IsActive bool      `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AdminUser) TableName() string {
	return "admin_users"
}
