package recorderrors

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
	ErrValidationFailed = apperror.New(
		apperror.CodeValidationError,
		"One or more fields failed validation",
		http.StatusUnprocessableEntity,
	)
	ErrUnknownSection = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown wizard section",
		http.StatusBadRequest,
	)
	ErrRecordNotEditable = apperror.New(
		apperror.CodeInvalidState,
		"Record is no longer editable after submission",
		http.StatusConflict,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"Record status does not allow this transition",
		http.StatusConflict,
	)
	ErrPartialCreation = apperror.New(
		apperror.CodePartialCreation,
		"Draft creation could not complete, please retry",
		http.StatusServiceUnavailable,
	)
	ErrEmployeeIDConflict = apperror.New(
		apperror.CodeConflict,
		"Employee ID already allocated",
		http.StatusConflict,
	)
	ErrInvalidRecordID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid record ID",
		http.StatusBadRequest,
	)
)
