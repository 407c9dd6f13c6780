package workflow

import (
	"context"
	"net/http"

	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/apperror"
	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("workflow.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workflow.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("workflow request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Verify(c *gin.Context) {
	h.handleTransition(c, h.service.Verify)
}

func (h *Handler) Reject(c *gin.Context) {
	h.handleTransition(c, h.service.Reject)
}

func (h *Handler) handleTransition(
	c *gin.Context,
	fn func(ctx context.Context, recordID, adminID, reason string) (TransitionResponse, error),
) {
	ctx := c.Request.Context()
	recordID := c.Param("id")

	adminID, ok := c.Get("user_id")
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req TransitionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
	}

	resp, err := fn(ctx, recordID, adminID.(string), req.Reason)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
