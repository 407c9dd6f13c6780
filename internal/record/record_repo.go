package record

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=record_repo.go -destination=mock/record_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, rec *EmployeeRecord) error
	FindByID(ctx context.Context, id string) (*EmployeeRecord, error)
	FindAll(ctx context.Context) ([]EmployeeRecord, error)
	// UpdateFieldsWhereStatus merges fields into the record only when its
	// current status matches; returns affected row count for state guards.
	UpdateFieldsWhereStatus(ctx context.Context, id string, fields map[string]any, currentStatus string) (int64, error)
	// UpdateStatusWhere moves the record to toStatus only when its current
	// status is one of fromStatuses; returns affected row count.
	UpdateStatusWhere(ctx context.Context, id string, fromStatuses []string, toStatus string) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
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

func (r *repository) Create(ctx context.Context, rec *EmployeeRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*EmployeeRecord, error) {
	var rec EmployeeRecord
	err := r.db.WithContext(ctx).
		Preload("Documents").
		First(&rec, "id = ?", id).Error
	return &rec, err
}

func (r *repository) FindAll(ctx context.Context) ([]EmployeeRecord, error) {
	var recs []EmployeeRecord
	err := r.db.WithContext(ctx).
		Preload("Documents").
		Order("created_at DESC").
		Find(&recs).Error
	return recs, err
}

func (r *repository) UpdateFieldsWhereStatus(ctx context.Context, id string, fields map[string]any, currentStatus string) (int64, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["updated_at"] = time.Now().UTC()

	res := r.db.WithContext(ctx).
		Model(&EmployeeRecord{}).
		Where("id = ? AND status = ?", id, currentStatus).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *repository) UpdateStatusWhere(ctx context.Context, id string, fromStatuses []string, toStatus string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&EmployeeRecord{}).
		Where("id = ? AND status IN ?", id, fromStatuses).
		Updates(map[string]any{
			"status":     toStatus,
			"updated_at": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}

func (r *repository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&EmployeeRecord{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
