package audit

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, log *AuditLog) error
	ListForRecord(ctx context.Context, recordID string) ([]Entry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, log *AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// ListForRecord mengembalikan trail terbaru lebih dulu, termasuk identitas
// admin supaya klien tidak perlu lookup terpisah.
func (r *repository) ListForRecord(ctx context.Context, recordID string) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Table("audit_logs").
		Select("audit_logs.*, admin_users.name AS admin_name, admin_users.email AS admin_email").
		Joins("LEFT JOIN admin_users ON admin_users.id = audit_logs.admin_id").
		Where("audit_logs.record_id = ?", recordID).
		Order("audit_logs.timestamp DESC").
		Find(&entries).Error
	return entries, err
}
