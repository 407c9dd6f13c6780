package document

import (
	"time"

	"github.com/google/uuid"
)

// Slot names follow the wizard upload form field names.
const (
	SlotAadhaar           = "aadhaarFile"
	SlotPAN               = "panFile"
	SlotPassbook          = "passbookFile"
	SlotTenthMarks        = "tenthMarksFile"
	SlotTwelfthMarks      = "twelfthMarksFile"
	SlotDegreeMarks       = "degreeMarksFile"
	SlotDegreeCertificate = "degreeCertificateFile"
)

// Slots is the fixed slot order used for validation and reporting.
var Slots = []string{
	SlotAadhaar,
	SlotPAN,
	SlotPassbook,
	SlotTenthMarks,
	SlotTwelfthMarks,
	SlotDegreeMarks,
	SlotDegreeCertificate,
}

// DocumentSet is one-to-one with an employee record; each field holds the
// opaque storage path of the uploaded proof, empty until uploaded.
type DocumentSet struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecordID uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_document_sets_record_id;not null"`

	AadhaarFile           string `gorm:"type:text"`
	PANFile               string `gorm:"type:text"`
	PassbookFile          string `gorm:"type:text"`
	TenthMarksFile        string `gorm:"type:text"`
	TwelfthMarksFile      string `gorm:"type:text"`
	DegreeMarksFile       string `gorm:"type:text"`
	DegreeCertificateFile string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DocumentSet) TableName() string {
	return "document_sets"
}

// PathFor returns the stored path for a slot, empty when unset or unknown.
func (d *DocumentSet) PathFor(slot string) string {
	switch slot {
	case SlotAadhaar:
		return d.AadhaarFile
	case SlotPAN:
		return d.PANFile
	case SlotPassbook:
		return d.PassbookFile
	case SlotTenthMarks:
		return d.TenthMarksFile
	case SlotTwelfthMarks:
		return d.TwelfthMarksFile
	case SlotDegreeMarks:
		return d.DegreeMarksFile
	case SlotDegreeCertificate:
		return d.DegreeCertificateFile
	}
	return ""
}

// IsKnownSlot validates a slot name against the fixed set.
func IsKnownSlot(slot string) bool {
	for _, s := range Slots {
		if s == slot {
			return true
		}
	}
	return false
}
