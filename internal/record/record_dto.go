package record

import "github.com/TrueLearn-Academy/Emp-agent/internal/document"

// Section names, one per wizard step.
const (
	SectionPersonal   = "personal"
	SectionAddress    = "address"
	SectionGovernment = "government"
	SectionEducation  = "education"
	SectionBank       = "bank"
)

type PersonalDetails struct {
	FullName      string `json:"fullName"`
	FatherName    string `json:"fatherName"`
	MotherName    string `json:"motherName"`
	Phone         string `json:"phone"`
	Whatsapp      string `json:"whatsapp"`
	Email         string `json:"email"`
	DOB           string `json:"dob"`
	DateOfJoining string `json:"dateOfJoining"`
	Gender        string `json:"gender"`
	BloodGroup    string `json:"bloodGroup"`
}

type AddressDetails struct {
	PermanentAddress string `json:"permanentAddress"`
	PresentAddress   string `json:"presentAddress"`
	State            string `json:"state"`
	District         string `json:"district"`
	Pincode          string `json:"pincode"`
}

type GovernmentIDs struct {
	Aadhaar string `json:"aadhaar"`
	PAN     string `json:"pan"`
	UAN     string `json:"uan"`
	ESIC    string `json:"esic"`
}

type EducationDetails struct {
	HighestQualification string `json:"highestQualification"`
	Institution          string `json:"institution"`
	YearOfPassing        string `json:"yearOfPassing"`
	Percentage           string `json:"percentage"`
}

type BankDetails struct {
	BankAccountName string `json:"bankAccountName"`
	BankName        string `json:"bankName"`
	BranchName      string `json:"branchName"`
	AccountNumber   string `json:"accountNumber"`
	IFSC            string `json:"ifsc"`
}

// SubmitRecordRequest is the full merged field map sent at final submission.
// Embedded sections marshal flat, matching the wizard's merged payload.
type SubmitRecordRequest struct {
	PersonalDetails
	AddressDetails
	GovernmentIDs
	EducationDetails
	BankDetails
}

// SaveSectionRequest carries one wizard step's partial field map, flat the way
// the wizard sends it. Fields merge as-is; only date-like fields are coerced.
type SaveSectionRequest map[string]any

type DraftResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Status     string `json:"status"`
}

type DocumentSetResponse struct {
	AadhaarFile           string `json:"aadhaarFile,omitempty"`
	PANFile               string `json:"panFile,omitempty"`
	PassbookFile          string `json:"passbookFile,omitempty"`
	TenthMarksFile        string `json:"tenthMarksFile,omitempty"`
	TwelfthMarksFile      string `json:"twelfthMarksFile,omitempty"`
	DegreeMarksFile       string `json:"degreeMarksFile,omitempty"`
	DegreeCertificateFile string `json:"degreeCertificateFile,omitempty"`
}

type RecordResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`

	FullName      string `json:"fullName"`
	FatherName    string `json:"fatherName"`
	MotherName    string `json:"motherName"`
	Phone         string `json:"phone"`
	Whatsapp      string `json:"whatsapp,omitempty"`
	Email         string `json:"email"`
	DOB           string `json:"dob,omitempty"`
	DateOfJoining string `json:"dateOfJoining,omitempty"`
	Gender        string `json:"gender"`
	BloodGroup    string `json:"bloodGroup,omitempty"`

	PermanentAddress string `json:"permanentAddress"`
	PresentAddress   string `json:"presentAddress"`
	State            string `json:"state"`
	District         string `json:"district"`
	Pincode          string `json:"pincode"`

	Aadhaar string `json:"aadhaar"`
	PAN     string `json:"pan"`
	UAN     string `json:"uan,omitempty"`
	ESIC    string `json:"esic,omitempty"`

	HighestQualification string `json:"highestQualification,omitempty"`
	Institution          string `json:"institution,omitempty"`
	YearOfPassing        string `json:"yearOfPassing,omitempty"`
	Percentage           string `json:"percentage,omitempty"`

	BankAccountName string `json:"bankAccountName"`
	BankName        string `json:"bankName"`
	BranchName      string `json:"branchName"`
	AccountNumber   string `json:"accountNumber"`
	IFSC            string `json:"ifsc"`

	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	Documents *DocumentSetResponse `json:"documents,omitempty"`
}

type StatsResponse struct {
	Total     int64 `json:"total"`
	Draft     int64 `json:"draft"`
	Submitted int64 `json:"submitted"`
	Verified  int64 `json:"verified"`
	Rejected  int64 `json:"rejected"`
}

func mapDocumentsToResponse(d *document.DocumentSet) *DocumentSetResponse {
	if d == nil {
		return nil
	}
	return &DocumentSetResponse{
		AadhaarFile:           d.AadhaarFile,
		PANFile:               d.PANFile,
		PassbookFile:          d.PassbookFile,
		TenthMarksFile:        d.TenthMarksFile,
		TwelfthMarksFile:      d.TwelfthMarksFile,
		DegreeMarksFile:       d.DegreeMarksFile,
		DegreeCertificateFile: d.DegreeCertificateFile,
	}
}
