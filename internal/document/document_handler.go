package document

import (
	"io"
	"net/http"

	documenterrors "github.com/TrueLearn-Academy/Emp-agent/internal/document/errors"
	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/apperror"
	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxUploadBytes = 5 << 20 // 5MB

var allowedExtByType = map[string]string{
	"application/pdf": ".pdf",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
}

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("document.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("document request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()
	recordID := c.Param("id")
	slot := c.Param("slot")
	h.logger.Debug("http upload document",
		zap.String("record_id", recordID),
		zap.String("slot", slot),
	)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Field file wajib diisi", err.Error())
		return
	}
	if fileHeader.Size > maxUploadBytes {
		h.writeServiceError(c, documenterrors.ErrFileTooLarge)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "File tidak bisa dibaca", err.Error())
		return
	}
	defer f.Close()

	// Deteksi tipe dari isi file, bukan dari header yang dikirim klien.
	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "File tidak bisa dibaca", err.Error())
		return
	}
	contentType := http.DetectContentType(head[:n])
	ext, ok := allowedExtByType[contentType]
	if !ok {
		h.writeServiceError(c, documenterrors.ErrUnsupportedFileType)
		return
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "File tidak bisa dibaca", err.Error())
		return
	}

	resp, err := h.service.Upload(ctx, UploadInput{
		RecordID: recordID,
		Slot:     slot,
		Ext:      ext,
		Content:  io.LimitReader(f, maxUploadBytes),
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByRecordID(c *gin.Context) {
	ctx := c.Request.Context()
	recordID := c.Param("id")
	h.logger.Debug("http get document set", zap.String("record_id", recordID))

	resp, err := h.service.GetByRecordID(ctx, recordID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
