package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	exporterrors "github.com/TrueLearn-Academy/Emp-agent/internal/export/errors"
	"github.com/TrueLearn-Academy/Emp-agent/internal/record"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const sheetName = "Employees"

type column struct {
	header string
	width  float64
	value  func(rec record.EmployeeRecord) any
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// Urutan kolom tetap; laporan HR downstream bergantung pada posisi kolom.
var columns = []column{
	{"Employee ID", 15, func(r record.EmployeeRecord) any { return r.EmployeeID }},
	{"Full Name", 25, func(r record.EmployeeRecord) any { return r.FullName }},
	{"Father Name", 25, func(r record.EmployeeRecord) any { return r.FatherName }},
	{"Mother Name", 25, func(r record.EmployeeRecord) any { return r.MotherName }},
	{"Email", 30, func(r record.EmployeeRecord) any { return r.Email }},
	{"Phone", 15, func(r record.EmployeeRecord) any { return r.Phone }},
	{"WhatsApp", 15, func(r record.EmployeeRecord) any { return r.Whatsapp }},
	{"Date of Birth", 15, func(r record.EmployeeRecord) any { return fmtDate(r.DOB) }},
	{"Date of Joining", 15, func(r record.EmployeeRecord) any { return fmtDate(r.DateOfJoining) }},
	{"Gender", 10, func(r record.EmployeeRecord) any { return r.Gender }},
	{"Blood Group", 12, func(r record.EmployeeRecord) any { return r.BloodGroup }},
	{"Permanent Address", 40, func(r record.EmployeeRecord) any { return r.PermanentAddress }},
	{"Present Address", 40, func(r record.EmployeeRecord) any { return r.PresentAddress }},
	{"State", 20, func(r record.EmployeeRecord) any { return r.State }},
	{"District", 20, func(r record.EmployeeRecord) any { return r.District }},
	{"Pincode", 10, func(r record.EmployeeRecord) any { return r.Pincode }},
	{"Aadhaar", 15, func(r record.EmployeeRecord) any { return r.Aadhaar }},
	{"PAN", 12, func(r record.EmployeeRecord) any { return r.PAN }},
	{"Highest Qualification", 25, func(r record.EmployeeRecord) any { return r.HighestQualification }},
	{"Institution", 30, func(r record.EmployeeRecord) any { return r.Institution }},
	{"Year of Passing", 15, func(r record.EmployeeRecord) any { return r.YearOfPassing }},
	{"Percentage/CGPA", 15, func(r record.EmployeeRecord) any { return r.Percentage }},
	{"Bank Account Name", 25, func(r record.EmployeeRecord) any { return r.BankAccountName }},
	{"Bank Name", 25, func(r record.EmployeeRecord) any { return r.BankName }},
	{"Branch Name", 25, func(r record.EmployeeRecord) any { return r.BranchName }},
	{"Account Number", 20, func(r record.EmployeeRecord) any { return r.AccountNumber }},
	{"IFSC Code", 15, func(r record.EmployeeRecord) any { return r.IFSC }},
	{"Status", 12, func(r record.EmployeeRecord) any { return r.Status }},
	{"Created At", 20, func(r record.EmployeeRecord) any { return r.CreatedAt.Format("2006-01-02 15:04:05") }},
}

type Service interface {
	ExportRecords(ctx context.Context) (content *bytes.Buffer, filename string, err error)
}

type service struct {
	recordRepo record.Repository
	logger     *zap.Logger
}

func NewService(recordRepo record.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("export.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.service")
	}
	return &service{recordRepo: recordRepo, logger: l}
}

func (s *service) ExportRecords(ctx context.Context) (*bytes.Buffer, string, error) {
	recs, err := s.recordRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("export fetch failed", zap.Error(err))
		return nil, "", exporterrors.ErrExportFailed
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", exporterrors.ErrExportFailed
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
	})
	if err != nil {
		return nil, "", exporterrors.ErrExportFailed
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", exporterrors.ErrExportFailed
		}
		if err := f.SetCellValue(sheetName, cell, col.header); err != nil {
			return nil, "", exporterrors.ErrExportFailed
		}
		colName, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetName, colName, colName, col.width); err != nil {
			return nil, "", exporterrors.ErrExportFailed
		}
	}
	lastCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
	if err := f.SetCellStyle(sheetName, "A1", lastCell, headerStyle); err != nil {
		return nil, "", exporterrors.ErrExportFailed
	}

	for rowIdx, rec := range recs {
		for colIdx, col := range columns {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, "", exporterrors.ErrExportFailed
			}
			if err := f.SetCellValue(sheetName, cell, col.value(rec)); err != nil {
				return nil, "", exporterrors.ErrExportFailed
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("export write failed", zap.Error(err))
		return nil, "", exporterrors.ErrExportFailed
	}

	filename := fmt.Sprintf("employees-%s.xlsx", time.Now().UTC().Format("2006-01-02"))

	s.logger.Info("records exported",
		zap.Int("row_count", len(recs)),
		zap.String("filename", filename),
	)

	return buf, filename, nil
}
