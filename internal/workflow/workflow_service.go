package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/TrueLearn-Academy/Emp-agent/internal/audit"
	"github.com/TrueLearn-Academy/Emp-agent/internal/events"
	"github.com/TrueLearn-Academy/Emp-agent/internal/messaging/kafka"
	"github.com/TrueLearn-Academy/Emp-agent/internal/record"
	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/apperror"
	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/contextutil"
	workflowerrors "github.com/TrueLearn-Academy/Emp-agent/internal/workflow/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=workflow_service.go -destination=mock/workflow_service_mock.go -package=mock
type Service interface {
	Verify(ctx context.Context, recordID, adminID, reason string) (TransitionResponse, error)
	Reject(ctx context.Context, recordID, adminID, reason string) (TransitionResponse, error)
}

type service struct {
	db         *gorm.DB
	recordRepo record.Repository
	auditRepo  audit.Repository
	outbox     kafka.OutboxRepository
	rdb        *redis.Client
	logger     *zap.Logger
}

func NewService(
	db *gorm.DB,
	recordRepo record.Repository,
	auditRepo audit.Repository,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("workflow.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workflow.service")
	}
	return &service{
		db:         db,
		recordRepo: recordRepo,
		auditRepo:  auditRepo,
		outbox:     outbox,
		rdb:        rdb,
		logger:     l,
	}
}

func (s *service) Verify(ctx context.Context, recordID, adminID, reason string) (TransitionResponse, error) {
	return s.transition(ctx, recordID, adminID, reason, record.StatusVerified)
}

func (s *service) Reject(ctx context.Context, recordID, adminID, reason string) (TransitionResponse, error) {
	return s.transition(ctx, recordID, adminID, reason, record.StatusRejected)
}

// transition menjalankan update status + audit append + outbox dalam satu
// transaksi. Status terminal tidak pernah ditimpa, guard-nya di level SQL.
func (s *service) transition(ctx context.Context, recordID, adminID, reason, toStatus string) (TransitionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("status transition requested",
		zap.String("request_id", rid),
		zap.String("record_id", recordID),
		zap.String("to_status", toStatus),
	)

	if _, err := uuid.Parse(recordID); err != nil {
		return TransitionResponse{}, workflowerrors.ErrInvalidRecordID
	}
	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return TransitionResponse{}, workflowerrors.ErrInvalidAdminID
	}

	var fromStatus string
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.recordRepo.WithTx(tx)

		rec, err := qtx.FindByID(ctx, recordID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return workflowerrors.ErrRecordNotFound
			}
			return err
		}
		fromStatus = rec.Status
		if record.IsTerminal(fromStatus) {
			return workflowerrors.ErrInvalidTransition
		}

		rows, err := qtx.UpdateStatusWhere(ctx, recordID,
			[]string{record.StatusDraft, record.StatusSubmitted}, toStatus)
		if err != nil {
			return err
		}
		if rows == 0 {
			// Record ada tapi statusnya sudah terminal.
			return workflowerrors.ErrInvalidTransition
		}

		entry := &audit.AuditLog{
			ID:        uuid.New(),
			AdminID:   adminUUID,
			RecordID:  rec.ID,
			Action:    fmt.Sprintf("Status changed to %s", toStatus),
			Timestamp: time.Now().UTC(),
		}
		if reason != "" {
			entry.Details = &reason
		}
		if err := s.auditRepo.WithTx(tx).Create(ctx, entry); err != nil {
			return err
		}

		event := events.RecordStatusChangedEvent{
			EventType:  events.EventTypeRecordStatusChanged,
			RequestID:  rid,
			RecordID:   recordID,
			EmployeeID: rec.EmployeeID,
			FromStatus: fromStatus,
			ToStatus:   toStatus,
			AdminID:    adminID,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		if s.outbox != nil {
			return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
				ID:            uuid.NewString(),
				RequestID:     rid,
				AggregateType: "employee_record",
				AggregateID:   recordID,
				EventType:     event.EventType,
				Topic:         events.RecordLifecycleTopic,
				Payload:       payload,
				Status:        kafka.OutboxStatusPending,
			})
		}
		return nil
	})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return TransitionResponse{}, err
		}
		s.logger.Error("status transition failed",
			zap.String("request_id", rid),
			zap.String("record_id", recordID),
			zap.String("to_status", toStatus),
			zap.Error(err),
		)
		return TransitionResponse{}, workflowerrors.ErrTransitionFailed
	}

	s.invalidateCaches(ctx, recordID)

	s.logger.Info("status transition success",
		zap.String("request_id", rid),
		zap.String("record_id", recordID),
		zap.String("from_status", fromStatus),
		zap.String("to_status", toStatus),
		zap.String("admin_id", adminID),
	)

	return TransitionResponse{
		RecordID:   recordID,
		FromStatus: fromStatus,
		Status:     toStatus,
		AdminID:    adminID,
	}, nil
}

func (s *service) invalidateCaches(ctx context.Context, recordID string) {
	if s.rdb == nil {
		return
	}
	keys := []string{
		record.RecordListKey,
		record.RecordStatsKey,
		record.RecordDetailPrefix + recordID,
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.logger.Warn("cache invalidation failed", zap.Error(err))
	}
}
