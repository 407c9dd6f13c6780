package record

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/apperror"
	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("record.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("record.handler")
	}
	return &Handler{service: service, logger: l}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

// releaseIdempotencyLock melepas lock milik middleware Idempotency setelah
// handler selesai, agar retry tidak menunggu expiry 30 detik.
func (h *Handler) releaseIdempotencyLock(c *gin.Context) {
	if h.rdb == nil {
		return
	}
	if lk := c.GetString("idempotency_lock_key"); lk != "" {
		h.rdb.Del(c.Request.Context(), lk)
	}
}

// cacheIdempotentResult menyimpan hasil sukses di bawah key idempotency
// supaya retry dengan Idempotency-Key yang sama mendapat replay, bukan draft baru.
func (h *Handler) cacheIdempotentResult(c *gin.Context, resp any) {
	if h.rdb == nil {
		return
	}
	ck := c.GetString("idempotency_cache_key")
	if ck == "" {
		return
	}
	if payload, err := json.Marshal(resp); err == nil {
		_ = h.rdb.Set(c.Request.Context(), ck, string(payload), 24*time.Hour).Err()
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("record request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CreateDraft(c *gin.Context) {
	h.logger.Debug("http create draft")
	defer h.releaseIdempotencyLock(c)

	resp, err := h.service.CreateDraft(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResult(c, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	h.logger.Debug("http get record by id", zap.String("record_id", id))

	resp, err := h.service.GetByID(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SaveSection(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	section := c.Param("section")
	h.logger.Debug("http save section",
		zap.String("record_id", id),
		zap.String("section", section),
	)

	var req SaveSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http save section bind failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.SaveSection(ctx, id, section, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"saved": true, "section": section}, nil)
}

func (h *Handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	h.logger.Debug("http submit record", zap.String("record_id", id))
	defer h.releaseIdempotencyLock(c)

	var req SubmitRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http submit record bind failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Submit(ctx, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResult(c, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	h.logger.Debug("http get all records")

	resp, err := h.service.GetAll(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	q := strings.TrimSpace(strings.ToLower(c.Query("q")))
	if q != "" {
		filtered := make([]RecordResponse, 0, len(resp))
		for _, r := range resp {
			if strings.Contains(strings.ToLower(r.FullName), q) ||
				strings.Contains(strings.ToLower(r.Email), q) ||
				strings.Contains(strings.ToLower(r.EmployeeID), q) {
				filtered = append(filtered, r)
			}
		}
		resp = filtered
	}

	status := strings.ToUpper(strings.TrimSpace(c.Query("status")))
	if status != "" {
		filtered := make([]RecordResponse, 0, len(resp))
		for _, r := range resp {
			if r.Status == status {
				filtered = append(filtered, r)
			}
		}
		resp = filtered
	}

	sortBy := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_by", "created_at")))
	sortDir := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_dir", "desc")))
	if sortDir != "asc" {
		sortDir = "desc"
	}
	sort.SliceStable(resp, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "name":
			less = strings.ToLower(resp[i].FullName) < strings.ToLower(resp[j].FullName)
		case "employee_id":
			less = resp[i].EmployeeID < resp[j].EmployeeID
		case "status":
			less = resp[i].Status < resp[j].Status
		default:
			less = resp[i].CreatedAt < resp[j].CreatedAt
		}
		if sortDir == "desc" {
			return !less
		}
		return less
	})

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()
	h.logger.Debug("http get record stats")

	resp, err := h.service.GetStats(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
