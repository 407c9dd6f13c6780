package record_test

import (
	"testing"

	"github.com/TrueLearn-Academy/Emp-agent/internal/record"

	"github.com/stretchr/testify/assert"
)

func validPersonal() record.PersonalDetails {
	return record.PersonalDetails{
		FullName:      "Asha Verma",
		FatherName:    "Ramesh Verma",
		MotherName:    "Sunita Verma",
		Phone:         "9876543210",
		Whatsapp:      "",
		Email:         "asha@example.com",
		DOB:           "1998-04-12",
		DateOfJoining: "2026-01-05",
		Gender:        "Female",
		BloodGroup:    "O+",
	}
}

func validAddress() record.AddressDetails {
	return record.AddressDetails{
		PermanentAddress: "12-4 Gandhi Nagar, Hyderabad",
		PresentAddress:   "Flat 3B, Lake View Apartments",
		State:            "Telangana",
		District:         "Hyderabad",
		Pincode:          "500001",
	}
}

func validGovernment() record.GovernmentIDs {
	return record.GovernmentIDs{
		Aadhaar: "123456789012",
		PAN:     "ABCDE1234F",
	}
}

func validBank() record.BankDetails {
	return record.BankDetails{
		BankAccountName: "Asha Verma",
		BankName:        "State Bank of India",
		BranchName:      "Gandhi Nagar",
		AccountNumber:   "123456789012",
		IFSC:            "SBIN0001234",
	}
}

func validSubmit() record.SubmitRecordRequest {
	return record.SubmitRecordRequest{
		PersonalDetails: validPersonal(),
		AddressDetails:  validAddress(),
		GovernmentIDs:   validGovernment(),
		BankDetails:     validBank(),
	}
}

func fieldNames(errs []record.FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestValidatePersonalDetails(t *testing.T) {
	t.Run("valid input has no errors", func(t *testing.T) {
		assert.Empty(t, record.ValidatePersonalDetails(validPersonal()))
	})

	t.Run("whatsapp is optional but validated when present", func(t *testing.T) {
		p := validPersonal()
		p.Whatsapp = ""
		assert.Empty(t, record.ValidatePersonalDetails(p))

		p.Whatsapp = "12345"
		assert.Contains(t, fieldNames(record.ValidatePersonalDetails(p)), "whatsapp")
	})

	t.Run("phone must start with 6-9 and be 10 digits", func(t *testing.T) {
		for _, phone := range []string{"1234567890", "98765", "98765432109", "abcdefghij"} {
			p := validPersonal()
			p.Phone = phone
			assert.Contains(t, fieldNames(record.ValidatePersonalDetails(p)), "phone", "phone=%s", phone)
		}
	})

	t.Run("gender outside fixed set rejected", func(t *testing.T) {
		p := validPersonal()
		p.Gender = "unknown"
		assert.Contains(t, fieldNames(record.ValidatePersonalDetails(p)), "gender")
	})

	t.Run("malformed dates rejected", func(t *testing.T) {
		p := validPersonal()
		p.DOB = "12-04-1998"
		p.DateOfJoining = ""
		names := fieldNames(record.ValidatePersonalDetails(p))
		assert.Contains(t, names, "dob")
		assert.Contains(t, names, "dateOfJoining")
	})
}

func TestValidateAddressDetails(t *testing.T) {
	t.Run("valid input has no errors", func(t *testing.T) {
		assert.Empty(t, record.ValidateAddressDetails(validAddress()))
	})

	t.Run("short addresses rejected", func(t *testing.T) {
		a := validAddress()
		a.PermanentAddress = "short"
		a.PresentAddress = "also"
		names := fieldNames(record.ValidateAddressDetails(a))
		assert.Contains(t, names, "permanentAddress")
		assert.Contains(t, names, "presentAddress")
	})

	t.Run("pincode must be exactly 6 digits", func(t *testing.T) {
		for _, pin := range []string{"50000", "5000012", "50O001"} {
			a := validAddress()
			a.Pincode = pin
			assert.Contains(t, fieldNames(record.ValidateAddressDetails(a)), "pincode", "pincode=%s", pin)
		}
	})
}

func TestValidateGovernmentIDs(t *testing.T) {
	t.Run("valid input has no errors", func(t *testing.T) {
		assert.Empty(t, record.ValidateGovernmentIDs(validGovernment()))
	})

	t.Run("uan and esic optional", func(t *testing.T) {
		g := validGovernment()
		g.UAN = ""
		g.ESIC = ""
		assert.Empty(t, record.ValidateGovernmentIDs(g))
	})

	t.Run("aadhaar must be 12 digits", func(t *testing.T) {
		g := validGovernment()
		g.Aadhaar = "12345678901"
		assert.Contains(t, fieldNames(record.ValidateGovernmentIDs(g)), "aadhaar")
	})

	t.Run("pan format enforced", func(t *testing.T) {
		for _, pan := range []string{"abcde1234f", "ABCD1234EF", "ABCDE12345"} {
			g := validGovernment()
			g.PAN = pan
			assert.Contains(t, fieldNames(record.ValidateGovernmentIDs(g)), "pan", "pan=%s", pan)
		}
	})
}

func TestValidateBankDetails(t *testing.T) {
	t.Run("valid input has no errors", func(t *testing.T) {
		assert.Empty(t, record.ValidateBankDetails(validBank()))
	})

	t.Run("ifsc fifth character must be zero", func(t *testing.T) {
		b := validBank()
		b.IFSC = "SBIN1001234"
		assert.Contains(t, fieldNames(record.ValidateBankDetails(b)), "ifsc")
	})

	t.Run("account number minimum length", func(t *testing.T) {
		b := validBank()
		b.AccountNumber = "12345678"
		assert.Contains(t, fieldNames(record.ValidateBankDetails(b)), "accountNumber")
	})
}

func TestValidateRecord(t *testing.T) {
	t.Run("fully valid record passes", func(t *testing.T) {
		assert.Empty(t, record.ValidateRecord(validSubmit()))
	})

	t.Run("education section never produces errors", func(t *testing.T) {
		req := validSubmit()
		req.EducationDetails = record.EducationDetails{}
		assert.Empty(t, record.ValidateRecord(req))
	})

	t.Run("errors from every failing section are unioned", func(t *testing.T) {
		req := validSubmit()
		req.Phone = "12345"
		req.Pincode = "99"
		req.Aadhaar = "1"
		req.IFSC = "bad"
		names := fieldNames(record.ValidateRecord(req))
		assert.Contains(t, names, "phone")
		assert.Contains(t, names, "pincode")
		assert.Contains(t, names, "aadhaar")
		assert.Contains(t, names, "ifsc")
	})

	t.Run("same input yields same error order", func(t *testing.T) {
		req := record.SubmitRecordRequest{}
		first := record.ValidateRecord(req)
		second := record.ValidateRecord(req)
		assert.Equal(t, first, second)
	})
}
