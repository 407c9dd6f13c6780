package audit

import (
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
	l := zap.L().Named("audit.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) ListForRecord(c *gin.Context) {
	ctx := c.Request.Context()
	recordID := c.Param("id")
	h.logger.Debug("http list audit trail", zap.String("record_id", recordID))

	resp, err := h.service.ListForRecord(ctx, recordID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
