package audit

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is append-only; rows are never updated or deleted.
type AuditLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AdminID   uuid.UUID `gorm:"type:uuid;index;not null"`
	RecordID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Action    string    `gorm:"type:text;not null"`
	Details   *string   `gorm:"type:text"`
	Timestamp time.Time `gorm:"not null"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Entry is one audit row joined with the acting admin's identity.
type Entry struct {
	AuditLog
	AdminName  string `gorm:"column:admin_name"`
	AdminEmail string `gorm:"column:admin_email"`
}
