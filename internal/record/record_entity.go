package record

import (
	"time"

	"github.com/TrueLearn-Academy/Emp-agent/internal/document"

	"github.com/google/uuid"
)

const (
	StatusDraft     = "DRAFT"
	StatusSubmitted = "SUBMITTED"
	StatusVerified  = "VERIFIED"
	StatusRejected  = "REJECTED"
)

// EmployeeRecord menampung seluruh data wizard onboarding.
// employee_id dialokasikan sekali saat draft dibuat dan tidak pernah berubah.
type EmployeeRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID string    `gorm:"type:varchar(20);uniqueIndex:uq_employee_records_employee_id;not null"`

	// Personal details
	FullName      string     `gorm:"type:varchar(255)"`
	FatherName    string     `gorm:"type:varchar(255)"`
	MotherName    string     `gorm:"type:varchar(255)"`
	Phone         string     `gorm:"type:varchar(10)"`
	Whatsapp      string     `gorm:"type:varchar(10)"`
	Email         string     `gorm:"type:varchar(255)"`
	DOB           *time.Time `gorm:"type:date"`
	DateOfJoining *time.Time `gorm:"type:date"`
	Gender        string     `gorm:"type:varchar(10)"`
	BloodGroup    string     `gorm:"type:varchar(5)"`

	// Address details
	PermanentAddress string `gorm:"type:text"`
	PresentAddress   string `gorm:"type:text"`
	State            string `gorm:"type:varchar(100)"`
	District         string `gorm:"type:varchar(100)"`
	Pincode          string `gorm:"type:varchar(6)"`

	// Government IDs
	Aadhaar string `gorm:"type:varchar(12)"`
	PAN     string `gorm:"type:varchar(10)"`
	UAN     string `gorm:"type:varchar(20)"`
	ESIC    string `gorm:"type:varchar(20)"`

	// Education
	HighestQualification string `gorm:"type:varchar(100)"`
	Institution          string `gorm:"type:varchar(255)"`
	YearOfPassing        string `gorm:"type:varchar(4)"`
	Percentage           string `gorm:"type:varchar(10)"`

	// Bank details
	BankAccountName string `gorm:"type:varchar(255)"`
	BankName        string `gorm:"type:varchar(255)"`
	BranchName      string `gorm:"type:varchar(255)"`
	AccountNumber   string `gorm:"type:varchar(20)"`
	IFSC            string `gorm:"type:varchar(11)"`

	Status string `gorm:"type:varchar(20);not null;default:'DRAFT';index"`

	Documents *document.DocumentSet `gorm:"foreignKey:RecordID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EmployeeRecord) TableName() string {
	return "employee_records"
}

// IsTerminal melaporkan apakah status sudah final (tidak ada transisi keluar).
func IsTerminal(status string) bool {
	return status == StatusVerified || status == StatusRejected
}
