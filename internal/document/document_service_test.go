package document_test

import (
	"context"
	"strings"
	"testing"

	"github.com/TrueLearn-Academy/Emp-agent/internal/document"
	documenterrors "github.com/TrueLearn-Academy/Emp-agent/internal/document/errors"
	documentMock "github.com/TrueLearn-Academy/Emp-agent/internal/document/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type documentDeps struct {
	service   document.Service
	repo      *documentMock.MockRepository
	storage   *documentMock.MockStorage
	redisMock redismock.ClientMock
}

func setupDocumentTest(t *testing.T) *documentDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	rdb, redisMock := redismock.NewClientMock()
	repo := documentMock.NewMockRepository(ctrl)
	storage := documentMock.NewMockStorage(ctrl)

	return &documentDeps{
		service:   document.NewService(repo, storage, rdb),
		repo:      repo,
		storage:   storage,
		redisMock: redisMock,
	}
}

func TestDocumentService_Upload(t *testing.T) {
	ctx := context.Background()
	recordID := uuid.New().String()
	body := strings.NewReader("%PDF-1.7 dummy")

	t.Run("success on draft record", func(t *testing.T) {
		deps := setupDocumentTest(t)

		deps.repo.EXPECT().RecordStatus(ctx, recordID).Return("DRAFT", nil)
		deps.storage.EXPECT().
			Save(ctx, recordID, document.SlotAadhaar, ".pdf", body).
			Return(recordID+"/aadhaarFile_1700000000.pdf", nil)
		deps.repo.EXPECT().
			UpdateSlot(ctx, recordID, document.SlotAadhaar, recordID+"/aadhaarFile_1700000000.pdf").
			Return(int64(1), nil)
		deps.redisMock.ExpectDel("records:detail:" + recordID).SetVal(1)

		resp, err := deps.service.Upload(ctx, document.UploadInput{
			RecordID: recordID,
			Slot:     document.SlotAadhaar,
			Ext:      ".pdf",
			Content:  body,
		})

		assert.NoError(t, err)
		assert.Equal(t, document.SlotAadhaar, resp.Slot)
		assert.Equal(t, recordID+"/aadhaarFile_1700000000.pdf", resp.Path)
	})

	t.Run("re-upload same slot overwrites path", func(t *testing.T) {
		deps := setupDocumentTest(t)

		deps.repo.EXPECT().RecordStatus(ctx, recordID).Return("DRAFT", nil)
		deps.storage.EXPECT().
			Save(ctx, recordID, document.SlotPAN, ".jpg", gomock.Any()).
			Return(recordID+"/panFile_1700000099.jpg", nil)
		deps.repo.EXPECT().
			UpdateSlot(ctx, recordID, document.SlotPAN, recordID+"/panFile_1700000099.jpg").
			Return(int64(1), nil)
		deps.redisMock.ExpectDel("records:detail:" + recordID).SetVal(1)

		resp, err := deps.service.Upload(ctx, document.UploadInput{
			RecordID: recordID,
			Slot:     document.SlotPAN,
			Ext:      ".jpg",
			Content:  strings.NewReader("new scan"),
		})

		assert.NoError(t, err)
		assert.Equal(t, recordID+"/panFile_1700000099.jpg", resp.Path)
	})

	t.Run("rejected once record is submitted", func(t *testing.T) {
		deps := setupDocumentTest(t)

		deps.repo.EXPECT().RecordStatus(ctx, recordID).Return("SUBMITTED", nil)

		_, err := deps.service.Upload(ctx, document.UploadInput{
			RecordID: recordID,
			Slot:     document.SlotAadhaar,
			Ext:      ".pdf",
			Content:  body,
		})

		assert.ErrorIs(t, err, documenterrors.ErrRecordNotEditable)
	})

	t.Run("unknown slot", func(t *testing.T) {
		deps := setupDocumentTest(t)

		_, err := deps.service.Upload(ctx, document.UploadInput{
			RecordID: recordID,
			Slot:     "resumeFile",
			Ext:      ".pdf",
			Content:  body,
		})

		assert.ErrorIs(t, err, documenterrors.ErrUnknownSlot)
	})

	t.Run("missing record", func(t *testing.T) {
		deps := setupDocumentTest(t)

		deps.repo.EXPECT().
			RecordStatus(ctx, recordID).
			Return("", gorm.ErrRecordNotFound)

		_, err := deps.service.Upload(ctx, document.UploadInput{
			RecordID: recordID,
			Slot:     document.SlotPassbook,
			Ext:      ".png",
			Content:  body,
		})

		assert.ErrorIs(t, err, documenterrors.ErrRecordNotFound)
	})

	t.Run("invalid record id", func(t *testing.T) {
		deps := setupDocumentTest(t)

		_, err := deps.service.Upload(ctx, document.UploadInput{
			RecordID: "abc",
			Slot:     document.SlotAadhaar,
			Ext:      ".pdf",
			Content:  body,
		})

		assert.ErrorIs(t, err, documenterrors.ErrInvalidRecordID)
	})
}

func TestDocumentService_GetByRecordID(t *testing.T) {
	ctx := context.Background()
	recordUUID := uuid.New()
	recordID := recordUUID.String()

	t.Run("returns all slots including empty ones", func(t *testing.T) {
		deps := setupDocumentTest(t)

		deps.repo.EXPECT().
			FindByRecordID(ctx, recordID).
			Return(&document.DocumentSet{
				ID:          uuid.New(),
				RecordID:    recordUUID,
				AadhaarFile: recordID + "/aadhaarFile_1.pdf",
				PANFile:     recordID + "/panFile_2.pdf",
			}, nil)

		resp, err := deps.service.GetByRecordID(ctx, recordID)

		assert.NoError(t, err)
		assert.Equal(t, recordID, resp.RecordID)
		assert.Len(t, resp.Slots, len(document.Slots))
		assert.Equal(t, recordID+"/aadhaarFile_1.pdf", resp.Slots[document.SlotAadhaar])
		assert.Equal(t, "", resp.Slots[document.SlotDegreeCertificate])
	})

	t.Run("missing record", func(t *testing.T) {
		deps := setupDocumentTest(t)

		deps.repo.EXPECT().
			FindByRecordID(ctx, recordID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByRecordID(ctx, recordID)

		assert.ErrorIs(t, err, documenterrors.ErrRecordNotFound)
	})
}
