package export

import (
	"fmt"

	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/apperror"
	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("export.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) ExportRecords(c *gin.Context) {
	ctx := c.Request.Context()
	h.logger.Debug("http export records")

	buf, filename, err := h.service.ExportRecords(ctx)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(200, xlsxContentType, buf.Bytes())
}
