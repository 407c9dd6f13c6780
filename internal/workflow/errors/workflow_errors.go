package workflowerrors

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

	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"Record status is final and cannot be changed",
		http.StatusConflict,
	)

	ErrInvalidRecordID = apperror.New(
		apperror.CodeValidationError,
		"Invalid record ID",
		http.StatusBadRequest,
	)

	ErrInvalidAdminID = apperror.New(
		apperror.CodeValidationError,
		"Invalid admin ID",
		http.StatusBadRequest,
	)

	ErrTransitionFailed = apperror.New(
		apperror.CodeStoreError,
		"Failed to update record status, please retry",
		http.StatusServiceUnavailable,
	)
)
