package document

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=document_repo.go -destination=mock/document_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, set *DocumentSet) error
	FindByRecordID(ctx context.Context, recordID string) (*DocumentSet, error)
	// UpdateSlot overwrites one slot's stored path; re-uploads are idempotent.
	UpdateSlot(ctx context.Context, recordID string, slot string, path string) (int64, error)
	RecordStatus(ctx context.Context, recordID string) (string, error)
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

func (r *repository) Create(ctx context.Context, set *DocumentSet) error {
	return r.db.WithContext(ctx).Create(set).Error
}

func (r *repository) FindByRecordID(ctx context.Context, recordID string) (*DocumentSet, error) {
	var set DocumentSet
	err := r.db.WithContext(ctx).First(&set, "record_id = ?", recordID).Error
	return &set, err
}

var slotColumns = map[string]string{
	SlotAadhaar:           "aadhaar_file",
	SlotPAN:               "pan_file",
	SlotPassbook:          "passbook_file",
	SlotTenthMarks:        "tenth_marks_file",
	SlotTwelfthMarks:      "twelfth_marks_file",
	SlotDegreeMarks:       "degree_marks_file",
	SlotDegreeCertificate: "degree_certificate_file",
}

func (r *repository) UpdateSlot(ctx context.Context, recordID string, slot string, path string) (int64, error) {
	column, ok := slotColumns[slot]
	if !ok {
		return 0, gorm.ErrInvalidField
	}

	res := r.db.WithContext(ctx).
		Model(&DocumentSet{}).
		Where("record_id = ?", recordID).
		Updates(map[string]any{
			column:       path,
			"updated_at": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}

// RecordStatus membaca status record lewat nama tabel mentah untuk
// menghindari import cycle dengan package record.
func (r *repository) RecordStatus(ctx context.Context, recordID string) (string, error) {
	var status string
	err := r.db.WithContext(ctx).
		Table("employee_records").
		Select("status").
		Where("id = ?", recordID).
		Take(&status).Error
	return status, err
}
