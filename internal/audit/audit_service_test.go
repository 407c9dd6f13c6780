package audit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TrueLearn-Academy/Emp-agent/internal/audit"
	auditerrors "github.com/TrueLearn-Academy/Emp-agent/internal/audit/errors"
	auditMock "github.com/TrueLearn-Academy/Emp-agent/internal/audit/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupAuditTest(t *testing.T) (audit.Service, *auditMock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := auditMock.NewMockRepository(ctrl)
	return audit.NewService(repo), repo
}

func TestAuditService_ListForRecord(t *testing.T) {
	ctx := context.Background()
	recordUUID := uuid.New()
	recordID := recordUUID.String()
	adminID := uuid.New()

	t.Run("maps entries newest first with admin identity", func(t *testing.T) {
		svc, repo := setupAuditTest(t)

		reason := "Aadhaar scan unreadable"
		newest := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
		oldest := newest.Add(-24 * time.Hour)

		repo.EXPECT().ListForRecord(ctx, recordID).Return([]audit.Entry{
			{
				AuditLog: audit.AuditLog{
					ID:        uuid.New(),
					AdminID:   adminID,
					RecordID:  recordUUID,
					Action:    "Status changed to REJECTED",
					Details:   &reason,
					Timestamp: newest,
				},
				AdminName:  "Ops Admin",
				AdminEmail: "ops@truelearn.example",
			},
			{
				AuditLog: audit.AuditLog{
					ID:        uuid.New(),
					AdminID:   adminID,
					RecordID:  recordUUID,
					Action:    "Status changed to SUBMITTED",
					Timestamp: oldest,
				},
				AdminName:  "Ops Admin",
				AdminEmail: "ops@truelearn.example",
			},
		}, nil)

		resp, err := svc.ListForRecord(ctx, recordID)

		assert.NoError(t, err)
		if assert.Len(t, resp, 2) {
			assert.Equal(t, "Status changed to REJECTED", resp[0].Action)
			if assert.NotNil(t, resp[0].Details) {
				assert.Equal(t, reason, *resp[0].Details)
			}
			assert.Equal(t, "2026-02-10T09:30:00Z", resp[0].Timestamp)
			assert.Equal(t, "Ops Admin", resp[0].AdminName)
			assert.Nil(t, resp[1].Details)
		}
	})

	t.Run("empty trail is an empty list, not an error", func(t *testing.T) {
		svc, repo := setupAuditTest(t)

		repo.EXPECT().ListForRecord(ctx, recordID).Return([]audit.Entry{}, nil)

		resp, err := svc.ListForRecord(ctx, recordID)

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("invalid record id", func(t *testing.T) {
		svc, _ := setupAuditTest(t)

		_, err := svc.ListForRecord(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, auditerrors.ErrInvalidRecordID)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc, repo := setupAuditTest(t)

		repo.EXPECT().
			ListForRecord(ctx, recordID).
			Return(nil, errors.New("connection refused"))

		_, err := svc.ListForRecord(ctx, recordID)

		assert.ErrorIs(t, err, auditerrors.ErrTrailLookupFailed)
	})
}
