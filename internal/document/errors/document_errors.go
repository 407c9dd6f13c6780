package documenterrors

import (
	"net/http"

	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/apperror"
)

var (
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee record not found",
		http.StatusNotFound,
	)

	ErrUnknownSlot = apperror.New(
		apperror.CodeValidationError,
		"Unknown document slot",
		http.StatusBadRequest,
	)

	ErrRecordNotEditable = apperror.New(
		apperror.CodeInvalidState,
		"Documents can only be uploaded while the record is a draft",
		http.StatusConflict,
	)

	ErrFileTooLarge = apperror.New(
		apperror.CodeValidationError,
		"File exceeds the 5MB size limit",
		http.StatusRequestEntityTooLarge,
	)

	ErrUnsupportedFileType = apperror.New(
		apperror.CodeValidationError,
		"File must be a PDF, JPEG, or PNG",
		http.StatusUnsupportedMediaType,
	)

	ErrStorageFailed = apperror.New(
		apperror.CodeStoreError,
		"Failed to store the file, please retry",
		http.StatusServiceUnavailable,
	)

	ErrInvalidRecordID = apperror.New(
		apperror.CodeValidationError,
		"Invalid record ID",
		http.StatusBadRequest,
	)
)
