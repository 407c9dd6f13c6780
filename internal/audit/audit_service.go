package audit

import (
	"context"

	auditerrors "github.com/TrueLearn-Academy/Emp-agent/internal/audit/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	ListForRecord(ctx context.Context, recordID string) ([]EntryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("audit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) ListForRecord(ctx context.Context, recordID string) ([]EntryResponse, error) {
	if _, err := uuid.Parse(recordID); err != nil {
		return nil, auditerrors.ErrInvalidRecordID
	}

	entries, err := s.repo.ListForRecord(ctx, recordID)
	if err != nil {
		s.logger.Error("audit trail lookup failed",
			zap.String("record_id", recordID),
			zap.Error(err),
		)
		return nil, auditerrors.ErrTrailLookupFailed
	}

	resp := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, mapEntryToResponse(e))
	}
	return resp, nil
}
