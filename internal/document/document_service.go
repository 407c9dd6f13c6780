package document

import (
	"context"
	"errors"
	"io"

	documenterrors "github.com/TrueLearn-Academy/Emp-agent/internal/document/errors"
	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Detail cache milik package record; key di-mirror di sini karena record
// meng-import document, jadi arah import sebaliknya tidak mungkin.
const recordDetailPrefix = "records:detail:"

type UploadInput struct {
	RecordID string
	Slot     string
	Ext      string
	Content  io.Reader
}

type Service interface {
	Upload(ctx context.Context, in UploadInput) (UploadResponse, error)
	GetByRecordID(ctx context.Context, recordID string) (DocumentSetResponse, error)
}

type service struct {
	repo    Repository
	storage Storage
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewService(repo Repository, storage Storage, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{repo: repo, storage: storage, rdb: rdb, logger: l}
}

func (s *service) Upload(ctx context.Context, in UploadInput) (UploadResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("upload document requested",
		zap.String("request_id", rid),
		zap.String("record_id", in.RecordID),
		zap.String("slot", in.Slot),
	)

	if _, err := uuid.Parse(in.RecordID); err != nil {
		return UploadResponse{}, documenterrors.ErrInvalidRecordID
	}
	if !IsKnownSlot(in.Slot) {
		return UploadResponse{}, documenterrors.ErrUnknownSlot
	}

	status, err := s.repo.RecordStatus(ctx, in.RecordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UploadResponse{}, documenterrors.ErrRecordNotFound
		}
		s.logger.Error("record status lookup failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return UploadResponse{}, documenterrors.ErrStorageFailed
	}
	if status != "DRAFT" {
		return UploadResponse{}, documenterrors.ErrRecordNotEditable
	}

	path, err := s.storage.Save(ctx, in.RecordID, in.Slot, in.Ext, in.Content)
	if err != nil {
		s.logger.Error("file save failed",
			zap.String("request_id", rid),
			zap.String("slot", in.Slot),
			zap.Error(err),
		)
		return UploadResponse{}, documenterrors.ErrStorageFailed
	}

	// Overwrite path lama: re-upload slot yang sama bersifat idempotent.
	rows, err := s.repo.UpdateSlot(ctx, in.RecordID, in.Slot, path)
	if err != nil {
		s.logger.Error("slot update failed",
			zap.String("request_id", rid),
			zap.String("slot", in.Slot),
			zap.Error(err),
		)
		return UploadResponse{}, documenterrors.ErrStorageFailed
	}
	if rows == 0 {
		return UploadResponse{}, documenterrors.ErrRecordNotFound
	}

	if err := s.rdb.Del(ctx, recordDetailPrefix+in.RecordID).Err(); err != nil {
		s.logger.Warn("detail cache invalidation failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
	}

	s.logger.Info("document uploaded",
		zap.String("request_id", rid),
		zap.String("record_id", in.RecordID),
		zap.String("slot", in.Slot),
	)

	return UploadResponse{RecordID: in.RecordID, Slot: in.Slot, Path: path}, nil
}

func (s *service) GetByRecordID(ctx context.Context, recordID string) (DocumentSetResponse, error) {
	if _, err := uuid.Parse(recordID); err != nil {
		return DocumentSetResponse{}, documenterrors.ErrInvalidRecordID
	}

	set, err := s.repo.FindByRecordID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DocumentSetResponse{}, documenterrors.ErrRecordNotFound
		}
		s.logger.Error("document set lookup failed", zap.Error(err))
		return DocumentSetResponse{}, documenterrors.ErrStorageFailed
	}

	return mapSetToResponse(set), nil
}
