package record

import (
	"net/mail"
	"regexp"
	"time"
)

// Validation rules mirror the wizard contract: exact formats for government and
// bank identifiers, minimum lengths for free text. All validators are pure and
// return errors in a fixed field order so a given input always yields the same
// error list.

var (
	phoneRegex   = regexp.MustCompile(`^[6-9]\d{9}$`)
	aadhaarRegex = regexp.MustCompile(`^\d{12}$`)
	panRegex     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	ifscRegex    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	pincodeRegex = regexp.MustCompile(`^\d{6}$`)
)

const dateLayout = "2006-01-02"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func isValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func isValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func ValidatePersonalDetails(p PersonalDetails) []FieldError {
	var errs []FieldError

	if len(p.FullName) < 2 {
		errs = append(errs, FieldError{"fullName", "Full name must be at least 2 characters"})
	}
	if len(p.FatherName) < 2 {
		errs = append(errs, FieldError{"fatherName", "Father name must be at least 2 characters"})
	}
	if len(p.MotherName) < 2 {
		errs = append(errs, FieldError{"motherName", "Mother name must be at least 2 characters"})
	}
	if !phoneRegex.MatchString(p.Phone) {
		errs = append(errs, FieldError{"phone", "Invalid phone number"})
	}
	// whatsapp is optional; empty string is valid
	if p.Whatsapp != "" && !phoneRegex.MatchString(p.Whatsapp) {
		errs = append(errs, FieldError{"whatsapp", "Invalid WhatsApp number"})
	}
	if !isValidEmail(p.Email) {
		errs = append(errs, FieldError{"email", "Invalid email address"})
	}
	if p.DOB == "" || !isValidDate(p.DOB) {
		errs = append(errs, FieldError{"dob", "Date of birth is required"})
	}
	if p.DateOfJoining == "" || !isValidDate(p.DateOfJoining) {
		errs = append(errs, FieldError{"dateOfJoining", "Date of joining is required"})
	}
	switch p.Gender {
	case "Male", "Female", "Other":
	default:
		errs = append(errs, FieldError{"gender", "Gender must be Male, Female or Other"})
	}

	return errs
}

func ValidateAddressDetails(a AddressDetails) []FieldError {
	var errs []FieldError

	if len(a.PermanentAddress) < 10 {
		errs = append(errs, FieldError{"permanentAddress", "Address must be at least 10 characters"})
	}
	if len(a.PresentAddress) < 10 {
		errs = append(errs, FieldError{"presentAddress", "Address must be at least 10 characters"})
	}
	if len(a.State) < 2 {
		errs = append(errs, FieldError{"state", "Please select a state"})
	}
	if len(a.District) < 2 {
		errs = append(errs, FieldError{"district", "Please enter district"})
	}
	if !pincodeRegex.MatchString(a.Pincode) {
		errs = append(errs, FieldError{"pincode", "Pincode must be 6 digits"})
	}

	return errs
}

func ValidateGovernmentIDs(g GovernmentIDs) []FieldError {
	var errs []FieldError

	if !aadhaarRegex.MatchString(g.Aadhaar) {
		errs = append(errs, FieldError{"aadhaar", "Aadhaar must be 12 digits"})
	}
	if !panRegex.MatchString(g.PAN) {
		errs = append(errs, FieldError{"pan", "Invalid PAN format (e.g., ABCDE1234F)"})
	}
	// uan and esic are optional free text

	return errs
}

func ValidateEducationDetails(e EducationDetails) []FieldError {
	// All education fields are optional.
	return nil
}

func ValidateBankDetails(b BankDetails) []FieldError {
	var errs []FieldError

	if len(b.BankAccountName) < 2 {
		errs = append(errs, FieldError{"bankAccountName", "Account holder name is required"})
	}
	if len(b.BankName) < 2 {
		errs = append(errs, FieldError{"bankName", "Bank name is required"})
	}
	if len(b.BranchName) < 2 {
		errs = append(errs, FieldError{"branchName", "Branch name is required"})
	}
	if len(b.AccountNumber) < 9 {
		errs = append(errs, FieldError{"accountNumber", "Account number must be at least 9 digits"})
	}
	if !ifscRegex.MatchString(b.IFSC) {
		errs = append(errs, FieldError{"ifsc", "Invalid IFSC code format"})
	}

	return errs
}

// ValidateRecord runs every section validator in wizard order and returns the
// union of their errors. A record passes only when every section passes.
func ValidateRecord(req SubmitRecordRequest) []FieldError {
	var errs []FieldError
	errs = append(errs, ValidatePersonalDetails(req.PersonalDetails)...)
	errs = append(errs, ValidateAddressDetails(req.AddressDetails)...)
	errs = append(errs, ValidateGovernmentIDs(req.GovernmentIDs)...)
	errs = append(errs, ValidateEducationDetails(req.EducationDetails)...)
	errs = append(errs, ValidateBankDetails(req.BankDetails)...)
	return errs
}
