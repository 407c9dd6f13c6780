package document_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TrueLearn-Academy/Emp-agent/internal/document"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeDocumentService struct {
	UploadFn        func(ctx context.Context, in document.UploadInput) (document.UploadResponse, error)
	GetByRecordIDFn func(ctx context.Context, recordID string) (document.DocumentSetResponse, error)
}

func (f *fakeDocumentService) Upload(ctx context.Context, in document.UploadInput) (document.UploadResponse, error) {
	return f.UploadFn(ctx, in)
}

func (f *fakeDocumentService) GetByRecordID(ctx context.Context, recordID string) (document.DocumentSetResponse, error) {
	return f.GetByRecordIDFn(ctx, recordID)
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func performUpload(t *testing.T, svc document.Service, recordID, slot string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "id", Value: recordID}, {Key: "slot", Value: slot}}
	c.Request = httptest.NewRequest(http.MethodPost,
		"/records/"+recordID+"/documents/"+slot, body)
	c.Request.Header.Set("Content-Type", contentType)

	document.NewHandler(svc).Upload(c)
	return rec
}

func TestDocumentHandler_Upload(t *testing.T) {
	recordID := uuid.New().String()

	t.Run("pdf content accepted", func(t *testing.T) {
		var got document.UploadInput
		svc := &fakeDocumentService{
			UploadFn: func(ctx context.Context, in document.UploadInput) (document.UploadResponse, error) {
				got = in
				return document.UploadResponse{
					RecordID: in.RecordID,
					Slot:     in.Slot,
					Path:     in.RecordID + "/aadhaarFile_1.pdf",
				}, nil
			},
		}

		body, contentType := multipartBody(t, "aadhaar.pdf", []byte("%PDF-1.7\nscan content"))
		rec := performUpload(t, svc, recordID, document.SlotAadhaar, body, contentType)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, ".pdf", got.Ext)
		assert.Equal(t, document.SlotAadhaar, got.Slot)

		var envelope struct {
			OK   bool                    `json:"ok"`
			Data document.UploadResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.True(t, envelope.OK)
		assert.Equal(t, recordID+"/aadhaarFile_1.pdf", envelope.Data.Path)
	})

	t.Run("png detected from magic bytes despite filename", func(t *testing.T) {
		pngHeader := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
		svc := &fakeDocumentService{
			UploadFn: func(ctx context.Context, in document.UploadInput) (document.UploadResponse, error) {
				assert.Equal(t, ".png", in.Ext)
				return document.UploadResponse{RecordID: in.RecordID, Slot: in.Slot}, nil
			},
		}

		body, contentType := multipartBody(t, "scan.pdf", pngHeader)
		rec := performUpload(t, svc, recordID, document.SlotPAN, body, contentType)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("oversized file rejected before service call", func(t *testing.T) {
		svc := &fakeDocumentService{
			UploadFn: func(ctx context.Context, in document.UploadInput) (document.UploadResponse, error) {
				t.Fatal("service must not be called")
				return document.UploadResponse{}, nil
			},
		}

		big := append([]byte("%PDF-1.7\n"), bytes.Repeat([]byte("a"), 5<<20)...)
		body, contentType := multipartBody(t, "huge.pdf", big)
		rec := performUpload(t, svc, recordID, document.SlotAadhaar, body, contentType)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("unsupported content type rejected", func(t *testing.T) {
		svc := &fakeDocumentService{
			UploadFn: func(ctx context.Context, in document.UploadInput) (document.UploadResponse, error) {
				t.Fatal("service must not be called")
				return document.UploadResponse{}, nil
			},
		}

		body, contentType := multipartBody(t, "resume.txt", []byte("plain text resume"))
		rec := performUpload(t, svc, recordID, document.SlotAadhaar, body, contentType)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("missing file field", func(t *testing.T) {
		svc := &fakeDocumentService{}

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		assert.NoError(t, w.Close())
		rec := performUpload(t, svc, recordID, document.SlotAadhaar, &buf, w.FormDataContentType())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDocumentHandler_GetByRecordID(t *testing.T) {
	recordID := uuid.New().String()

	svc := &fakeDocumentService{
		GetByRecordIDFn: func(ctx context.Context, id string) (document.DocumentSetResponse, error) {
			assert.Equal(t, recordID, id)
			return document.DocumentSetResponse{
				RecordID: id,
				Slots: map[string]string{
					document.SlotAadhaar: id + "/aadhaarFile_1.pdf",
				},
			}, nil
		},
	}

	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "id", Value: recordID}}
	c.Request = httptest.NewRequest(http.MethodGet, "/records/"+recordID+"/documents", nil)

	document.NewHandler(svc).GetByRecordID(c)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		OK   bool                         `json:"ok"`
		Data document.DocumentSetResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.OK)
	assert.Equal(t, recordID+"/aadhaarFile_1.pdf", envelope.Data.Slots[document.SlotAadhaar])
}
