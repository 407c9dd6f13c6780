package workflow_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/TrueLearn-Academy/Emp-agent/internal/audit"
	"github.com/TrueLearn-Academy/Emp-agent/internal/events"
	"github.com/TrueLearn-Academy/Emp-agent/internal/messaging/kafka"
	"github.com/TrueLearn-Academy/Emp-agent/internal/record"
	"github.com/TrueLearn-Academy/Emp-agent/internal/workflow"
	workflowerrors "github.com/TrueLearn-Academy/Emp-agent/internal/workflow/errors"

	auditMock "github.com/TrueLearn-Academy/Emp-agent/internal/audit/mock"
	kafkaMock "github.com/TrueLearn-Academy/Emp-agent/internal/messaging/kafka/mock"
	recordMock "github.com/TrueLearn-Academy/Emp-agent/internal/record/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type workflowDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   workflow.Service
	records   *recordMock.MockRepository
	audits    *auditMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	redisMock redismock.ClientMock
}

func setupWorkflowTest(t *testing.T) *workflowDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	assert.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()
	records := recordMock.NewMockRepository(ctrl)
	audits := auditMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := workflow.NewService(gormDB, records, audits, outbox, rdb)

	return &workflowDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		records:   records,
		audits:    audits,
		outbox:    outbox,
		redisMock: redisMock,
	}
}

func TestWorkflowService_Verify(t *testing.T) {
	ctx := context.Background()
	recordUUID := uuid.New()
	recordID := recordUUID.String()
	adminID := uuid.New().String()

	t.Run("success - one transaction, one audit entry, one event", func(t *testing.T) {
		deps := setupWorkflowTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.records.EXPECT().WithTx(gomock.Any()).Return(deps.records)
		deps.records.EXPECT().
			FindByID(ctx, recordID).
			Return(&record.EmployeeRecord{
				ID:         recordUUID,
				EmployeeID: "EMP-000004",
				Status:     record.StatusSubmitted,
			}, nil)
		deps.records.EXPECT().
			UpdateStatusWhere(ctx, recordID,
				[]string{record.StatusDraft, record.StatusSubmitted}, record.StatusVerified).
			Return(int64(1), nil)

		auditCalls := 0
		deps.audits.EXPECT().WithTx(gomock.Any()).Return(deps.audits)
		deps.audits.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, entry *audit.AuditLog) error {
				auditCalls++
				assert.Equal(t, "Status changed to VERIFIED", entry.Action)
				assert.Equal(t, adminID, entry.AdminID.String())
				assert.Equal(t, recordID, entry.RecordID.String())
				assert.Nil(t, entry.Details)
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.EventTypeRecordStatusChanged, ev.EventType)
				assert.Equal(t, events.RecordLifecycleTopic, ev.Topic)
				assert.Equal(t, recordID, ev.AggregateID)
				return nil
			})

		deps.redisMock.ExpectDel(
			record.RecordListKey,
			record.RecordStatsKey,
			record.RecordDetailPrefix+recordID,
		).SetVal(3)

		resp, err := deps.service.Verify(ctx, recordID, adminID, "")

		assert.NoError(t, err)
		assert.Equal(t, record.StatusVerified, resp.Status)
		assert.Equal(t, record.StatusSubmitted, resp.FromStatus)
		assert.Equal(t, 1, auditCalls)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("terminal record cannot be verified again", func(t *testing.T) {
		deps := setupWorkflowTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.records.EXPECT().WithTx(gomock.Any()).Return(deps.records)
		deps.records.EXPECT().
			FindByID(ctx, recordID).
			Return(&record.EmployeeRecord{ID: recordUUID, Status: record.StatusVerified}, nil)

		_, err := deps.service.Verify(ctx, recordID, adminID, "")

		// Audit dan outbox tidak boleh tersentuh pada no-op.
		assert.ErrorIs(t, err, workflowerrors.ErrInvalidTransition)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("concurrent transition loses the row guard", func(t *testing.T) {
		deps := setupWorkflowTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		// Status masih SUBMITTED saat dibaca, tapi transaksi lain menang di UPDATE.
		deps.records.EXPECT().WithTx(gomock.Any()).Return(deps.records)
		deps.records.EXPECT().
			FindByID(ctx, recordID).
			Return(&record.EmployeeRecord{ID: recordUUID, Status: record.StatusSubmitted}, nil)
		deps.records.EXPECT().
			UpdateStatusWhere(ctx, recordID,
				[]string{record.StatusDraft, record.StatusSubmitted}, record.StatusVerified).
			Return(int64(0), nil)

		_, err := deps.service.Verify(ctx, recordID, adminID, "")

		assert.ErrorIs(t, err, workflowerrors.ErrInvalidTransition)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing record", func(t *testing.T) {
		deps := setupWorkflowTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.records.EXPECT().WithTx(gomock.Any()).Return(deps.records)
		deps.records.EXPECT().
			FindByID(ctx, recordID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Verify(ctx, recordID, adminID, "")

		assert.ErrorIs(t, err, workflowerrors.ErrRecordNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid record id rejected before transaction", func(t *testing.T) {
		deps := setupWorkflowTest(t)
		defer deps.db.Close()

		_, err := deps.service.Verify(ctx, "not-a-uuid", adminID, "")

		assert.ErrorIs(t, err, workflowerrors.ErrInvalidRecordID)
	})
}

func TestWorkflowService_Reject(t *testing.T) {
	ctx := context.Background()
	recordUUID := uuid.New()
	recordID := recordUUID.String()
	adminID := uuid.New().String()

	t.Run("reason recorded in audit details", func(t *testing.T) {
		deps := setupWorkflowTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.records.EXPECT().WithTx(gomock.Any()).Return(deps.records)
		deps.records.EXPECT().
			FindByID(ctx, recordID).
			Return(&record.EmployeeRecord{ID: recordUUID, Status: record.StatusSubmitted}, nil)
		deps.records.EXPECT().
			UpdateStatusWhere(ctx, recordID,
				[]string{record.StatusDraft, record.StatusSubmitted}, record.StatusRejected).
			Return(int64(1), nil)

		deps.audits.EXPECT().WithTx(gomock.Any()).Return(deps.audits)
		deps.audits.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, entry *audit.AuditLog) error {
				assert.Equal(t, "Status changed to REJECTED", entry.Action)
				if assert.NotNil(t, entry.Details) {
					assert.Equal(t, "Aadhaar scan unreadable", *entry.Details)
				}
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		deps.redisMock.ExpectDel(
			record.RecordListKey,
			record.RecordStatsKey,
			record.RecordDetailPrefix+recordID,
		).SetVal(3)

		resp, err := deps.service.Reject(ctx, recordID, adminID, "Aadhaar scan unreadable")

		assert.NoError(t, err)
		assert.Equal(t, record.StatusRejected, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
