package export_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TrueLearn-Academy/Emp-agent/internal/export"
	exporterrors "github.com/TrueLearn-Academy/Emp-agent/internal/export/errors"
	"github.com/TrueLearn-Academy/Emp-agent/internal/record"
	recordMock "github.com/TrueLearn-Academy/Emp-agent/internal/record/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func setupExportTest(t *testing.T) (export.Service, *recordMock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := recordMock.NewMockRepository(ctrl)
	return export.NewService(repo), repo
}

func TestExportService_ExportRecords(t *testing.T) {
	ctx := context.Background()

	t.Run("workbook layout", func(t *testing.T) {
		svc, repo := setupExportTest(t)

		dob := time.Date(1998, 4, 12, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().FindAll(ctx).Return([]record.EmployeeRecord{
			{
				ID:         uuid.New(),
				EmployeeID: "EMP-000001",
				FullName:   "Asha Verma",
				Email:      "asha@example.com",
				Phone:      "9876543210",
				DOB:        &dob,
				Aadhaar:    "123412341234",
				PAN:        "ABCDE1234F",
				IFSC:       "HDFC0001234",
				Status:     record.StatusVerified,
				CreatedAt:  time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
			},
			{
				ID:         uuid.New(),
				EmployeeID: "EMP-000002",
				FullName:   "Rahul Nair",
				Status:     record.StatusDraft,
				CreatedAt:  time.Date(2026, 1, 6, 11, 0, 0, 0, time.UTC),
			},
		}, nil)

		buf, filename, err := svc.ExportRecords(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "employees-"+time.Now().UTC().Format("2006-01-02")+".xlsx", filename)

		f, err := excelize.OpenReader(buf)
		assert.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"Employees"}, f.GetSheetList())

		rows, err := f.GetRows("Employees")
		assert.NoError(t, err)
		if assert.Len(t, rows, 3) {
			assert.Equal(t, "Employee ID", rows[0][0])
			assert.Equal(t, "Full Name", rows[0][1])
			assert.Equal(t, "Percentage/CGPA", rows[0][21])
			assert.Equal(t, "IFSC Code", rows[0][26])
			assert.Equal(t, "Status", rows[0][27])
			assert.Equal(t, "Created At", rows[0][28])

			assert.Equal(t, "EMP-000001", rows[1][0])
			assert.Equal(t, "Asha Verma", rows[1][1])
			assert.Equal(t, "1998-04-12", rows[1][7])
			assert.Equal(t, "VERIFIED", rows[1][27])
			assert.Equal(t, "EMP-000002", rows[2][0])
		}
	})

	t.Run("empty dataset still yields header row", func(t *testing.T) {
		svc, repo := setupExportTest(t)

		repo.EXPECT().FindAll(ctx).Return([]record.EmployeeRecord{}, nil)

		buf, _, err := svc.ExportRecords(ctx)

		assert.NoError(t, err)

		f, err := excelize.OpenReader(buf)
		assert.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Employees")
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("fetch failure", func(t *testing.T) {
		svc, repo := setupExportTest(t)

		repo.EXPECT().FindAll(ctx).Return(nil, errors.New("connection refused"))

		_, _, err := svc.ExportRecords(ctx)

		assert.ErrorIs(t, err, exporterrors.ErrExportFailed)
	})
}
