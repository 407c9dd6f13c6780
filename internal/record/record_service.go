package record

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/TrueLearn-Academy/Emp-agent/internal/document"
	"github.com/TrueLearn-Academy/Emp-agent/internal/events"
	"github.com/TrueLearn-Academy/Emp-agent/internal/messaging/kafka"
	recorderrors "github.com/TrueLearn-Academy/Emp-agent/internal/record/errors"
	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/contextutil"
	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	RecordListKey      = "records:list"
	RecordStatsKey     = "records:stats"
	RecordDetailPrefix = "records:detail:"

	employeeSerialCounter = "employee_serial"
)

func RecordDetailKey(id string) string {
	return RecordDetailPrefix + id
}

// Policy menampung keputusan produk yang masih configurable.
type Policy struct {
	// RequireDocuments gates submission on every document slot being filled.
	RequireDocuments bool
}

//go:generate mockgen -source=record_service.go -destination=mock/record_service_mock.go -package=mock
type Service interface {
	CreateDraft(ctx context.Context) (DraftResponse, error)
	GetByID(ctx context.Context, id string) (RecordResponse, error)
	SaveSection(ctx context.Context, id, section string, fields map[string]any) error
	Submit(ctx context.Context, id string, req SubmitRecordRequest) (RecordResponse, error)
	GetAll(ctx context.Context) ([]RecordResponse, error)
	GetStats(ctx context.Context) (StatsResponse, error)
}

type service struct {
	db      *gorm.DB
	repo    Repository
	docs    document.Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	policy  Policy
	logger  *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	docs document.Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	policy Policy,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("record.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("record.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		docs:    docs,
		counter: counterRepo,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		policy:  policy,
		logger:  l,
	}
}

// Per-section whitelist of incoming field name -> column. Anything outside the
// section's set (status included) is silently dropped from the merge.
var sectionColumns = map[string]map[string]string{
	SectionPersonal: {
		"fullName":      "full_name",
		"fatherName":    "father_name",
		"motherName":    "mother_name",
		"phone":         "phone",
		"whatsapp":      "whatsapp",
		"email":         "email",
		"dob":           "dob",
		"dateOfJoining": "date_of_joining",
		"gender":        "gender",
		"bloodGroup":    "blood_group",
	},
	SectionAddress: {
		"permanentAddress": "permanent_address",
		"presentAddress":   "present_address",
		"state":            "state",
		"district":         "district",
		"pincode":          "pincode",
	},
	SectionGovernment: {
		"aadhaar": "aadhaar",
		"pan":     "pan",
		"uan":     "uan",
		"esic":    "esic",
	},
	SectionEducation: {
		"highestQualification": "highest_qualification",
		"institution":          "institution",
		"yearOfPassing":        "year_of_passing",
		"percentage":           "percentage",
	},
	SectionBank: {
		"bankAccountName": "bank_account_name",
		"bankName":        "bank_name",
		"branchName":      "branch_name",
		"accountNumber":   "account_number",
		"ifsc":            "ifsc",
	},
}

var dateFields = map[string]bool{
	"dob":           true,
	"dateOfJoining": true,
}

func (s *service) CreateDraft(ctx context.Context) (DraftResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create draft requested", zap.String("request_id", rid))

	var rec *EmployeeRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		nextVal, err := s.counter.WithTx(tx).GetNextValue(ctx, employeeSerialCounter)
		if err != nil {
			return err
		}

		rec = &EmployeeRecord{
			ID:         uuid.New(),
			EmployeeID: fmt.Sprintf("EMP-%06d", nextVal),
			Status:     StatusDraft,
		}
		if err := s.repo.WithTx(tx).Create(ctx, rec); err != nil {
			return err
		}

		// The empty DocumentSet rides the same transaction so a failed second
		// insert never leaves a document-less record behind.
		return s.docs.WithTx(tx).Create(ctx, &document.DocumentSet{
			ID:       uuid.New(),
			RecordID: rec.ID,
		})
	})
	if err != nil {
		s.logger.Error("create draft failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return DraftResponse{}, recorderrors.ErrPartialCreation
	}

	s.invalidateListCaches(ctx)

	s.logger.Info("create draft success",
		zap.String("request_id", rid),
		zap.String("record_id", rec.ID.String()),
		zap.String("employee_id", rec.EmployeeID),
	)

	return DraftResponse{
		ID:         rec.ID.String(),
		EmployeeID: rec.EmployeeID,
		Status:     rec.Status,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (RecordResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return RecordResponse{}, recorderrors.ErrInvalidRecordID
	}

	cacheKey := RecordDetailKey(id)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp RecordResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get record by id failed", zap.String("record_id", id), zap.Error(err))
		return RecordResponse{}, mapRepositoryError(err)
	}

	resp := mapToResponse(*rec)
	if s.rdb != nil {
		if jsonData, err := json.Marshal(resp); err == nil {
			s.rdb.Set(ctx, cacheKey, jsonData, 10*time.Minute)
		}
	}
	return resp, nil
}

func (s *service) SaveSection(ctx context.Context, id, section string, fields map[string]any) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("save section requested",
		zap.String("request_id", rid),
		zap.String("record_id", id),
		zap.String("section", section),
	)

	if _, err := uuid.Parse(id); err != nil {
		return recorderrors.ErrInvalidRecordID
	}

	allowed, ok := sectionColumns[section]
	if !ok {
		return recorderrors.ErrUnknownSection
	}

	// The wizard validates its own step before calling save; here only the
	// whitelist and date coercion apply, so incomplete sections still persist.
	cols := make(map[string]any, len(fields))
	for name, value := range fields {
		column, ok := allowed[name]
		if !ok {
			continue
		}
		if dateFields[name] {
			str, _ := value.(string)
			if str == "" {
				continue
			}
			parsed, err := time.Parse(dateLayout, str)
			if err != nil {
				s.logger.Warn("save section invalid date value",
					zap.String("record_id", id),
					zap.String("field", name),
				)
				continue
			}
			cols[column] = parsed
			continue
		}
		cols[column] = value
	}

	rows, err := s.repo.UpdateFieldsWhereStatus(ctx, id, cols, StatusDraft)
	if err != nil {
		s.logger.Error("save section persist failed",
			zap.String("record_id", id),
			zap.String("section", section),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}
	if rows == 0 {
		// Not matched: either the record is gone or no longer a draft.
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			return mapRepositoryError(err)
		}
		return recorderrors.ErrRecordNotEditable
	}

	s.invalidateDetailCaches(ctx, id)

	s.logger.Info("save section success",
		zap.String("request_id", rid),
		zap.String("record_id", id),
		zap.String("section", section),
	)
	return nil
}

func (s *service) Submit(ctx context.Context, id string, req SubmitRecordRequest) (RecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit record requested",
		zap.String("request_id", rid),
		zap.String("record_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return RecordResponse{}, recorderrors.ErrInvalidRecordID
	}

	// Full validation pass first; no mutation happens on failure.
	fieldErrs := ValidateRecord(req)
	if s.policy.RequireDocuments {
		missing, err := s.missingDocumentSlots(ctx, id)
		if err != nil {
			return RecordResponse{}, err
		}
		fieldErrs = append(fieldErrs, missing...)
	}
	if len(fieldErrs) > 0 {
		s.logger.Warn("submit record validation failed",
			zap.String("record_id", id),
			zap.Int("error_count", len(fieldErrs)),
		)
		return RecordResponse{}, recorderrors.ErrValidationFailed.WithDetails(fieldErrs)
	}

	dob, _ := time.Parse(dateLayout, req.DOB)
	doj, _ := time.Parse(dateLayout, req.DateOfJoining)

	cols := map[string]any{
		"full_name":             req.FullName,
		"father_name":           req.FatherName,
		"mother_name":           req.MotherName,
		"phone":                 req.Phone,
		"whatsapp":              req.Whatsapp,
		"email":                 req.Email,
		"dob":                   dob,
		"date_of_joining":       doj,
		"gender":                req.Gender,
		"blood_group":           req.BloodGroup,
		"permanent_address":     req.PermanentAddress,
		"present_address":       req.PresentAddress,
		"state":                 req.State,
		"district":              req.District,
		"pincode":               req.Pincode,
		"aadhaar":               req.Aadhaar,
		"pan":                   req.PAN,
		"uan":                   req.UAN,
		"esic":                  req.ESIC,
		"highest_qualification": req.HighestQualification,
		"institution":           req.Institution,
		"year_of_passing":       req.YearOfPassing,
		"percentage":            req.Percentage,
		"bank_account_name":     req.BankAccountName,
		"bank_name":             req.BankName,
		"branch_name":           req.BranchName,
		"account_number":        req.AccountNumber,
		"ifsc":                  req.IFSC,
		"status":                StatusSubmitted,
	}

	var rec *EmployeeRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		// Resubmission of an already-SUBMITTED record is rejected to keep the
		// review trail honest; only drafts can be submitted.
		rows, err := qtx.UpdateFieldsWhereStatus(ctx, id, cols, StatusDraft)
		if err != nil {
			return err
		}
		if rows == 0 {
			if _, err := qtx.FindByID(ctx, id); err != nil {
				return err
			}
			return recorderrors.ErrInvalidTransition
		}

		rec, err = qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		event := events.RecordSubmittedEvent{
			EventType:  events.EventTypeRecordSubmitted,
			RequestID:  rid,
			RecordID:   id,
			EmployeeID: rec.EmployeeID,
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
				AggregateID:   id,
				EventType:     event.EventType,
				Topic:         events.RecordLifecycleTopic,
				Payload:       payload,
				Status:        kafka.OutboxStatusPending,
			})
		}
		return nil
	})
	if err != nil {
		s.logger.Error("submit record failed",
			zap.String("request_id", rid),
			zap.String("record_id", id),
			zap.Error(err),
		)
		return RecordResponse{}, mapRepositoryError(err)
	}

	s.invalidateDetailCaches(ctx, id)

	s.logger.Info("submit record success",
		zap.String("request_id", rid),
		zap.String("record_id", id),
		zap.String("employee_id", rec.EmployeeID),
	)
	return mapToResponse(*rec), nil
}

func (s *service) missingDocumentSlots(ctx context.Context, id string) ([]FieldError, error) {
	set, err := s.docs.FindByRecordID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	var missing []FieldError
	for _, slot := range document.Slots {
		if set.PathFor(slot) == "" {
			missing = append(missing, FieldError{Field: slot, Message: "Document upload is required"})
		}
	}
	return missing, nil
}

func (s *service) GetAll(ctx context.Context) ([]RecordResponse, error) {
	s.logger.Debug("get all records requested")
	recs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all records failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(recs), nil
}

func (s *service) GetStats(ctx context.Context) (StatsResponse, error) {
	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, RecordStatsKey).Result(); err == nil {
			var resp StatsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight agar dashboard yang ramai tidak menumpuk query COUNT
	v, err, _ := s.sf.Do(RecordStatsKey, func() (interface{}, error) {
		counts, err := s.repo.CountByStatus(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := StatsResponse{
			Draft:     counts[StatusDraft],
			Submitted: counts[StatusSubmitted],
			Verified:  counts[StatusVerified],
			Rejected:  counts[StatusRejected],
		}
		resp.Total = resp.Draft + resp.Submitted + resp.Verified + resp.Rejected

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, RecordStatsKey, jsonData, 5*time.Minute)
			}
		}
		return resp, nil
	})
	if err != nil {
		return StatsResponse{}, err
	}

	return v.(StatsResponse), nil
}

func (s *service) invalidateListCaches(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, RecordListKey, RecordStatsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate record list caches", zap.Error(err))
	}
}

func (s *service) invalidateDetailCaches(ctx context.Context, id string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, RecordDetailKey(id), RecordListKey, RecordStatsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate record caches",
			zap.Error(err),
			zap.String("record_id", id),
		)
	}
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func mapToResponse(rec EmployeeRecord) RecordResponse {
	return RecordResponse{
		ID:         rec.ID.String(),
		EmployeeID: rec.EmployeeID,

		FullName:      rec.FullName,
		FatherName:    rec.FatherName,
		MotherName:    rec.MotherName,
		Phone:         rec.Phone,
		Whatsapp:      rec.Whatsapp,
		Email:         rec.Email,
		DOB:           formatDate(rec.DOB),
		DateOfJoining: formatDate(rec.DateOfJoining),
		Gender:        rec.Gender,
		BloodGroup:    rec.BloodGroup,

		PermanentAddress: rec.PermanentAddress,
		PresentAddress:   rec.PresentAddress,
		State:            rec.State,
		District:         rec.District,
		Pincode:          rec.Pincode,

		Aadhaar: rec.Aadhaar,
		PAN:     rec.PAN,
		UAN:     rec.UAN,
		ESIC:    rec.ESIC,

		HighestQualification: rec.HighestQualification,
		Institution:          rec.Institution,
		YearOfPassing:        rec.YearOfPassing,
		Percentage:           rec.Percentage,

		BankAccountName: rec.BankAccountName,
		BankName:        rec.BankName,
		BranchName:      rec.BranchName,
		AccountNumber:   rec.AccountNumber,
		IFSC:            rec.IFSC,

		Status:    rec.Status,
		CreatedAt: rec.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: rec.UpdatedAt.UTC().Format(time.RFC3339),

		Documents: mapDocumentsToResponse(rec.Documents),
	}
}

func mapToListResponse(recs []EmployeeRecord) []RecordResponse {
	res := make([]RecordResponse, len(recs))
	for i, r := range recs {
		res[i] = mapToResponse(r)
	}
	return res
}
