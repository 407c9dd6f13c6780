package auditerrors

import (
	"net/http"

	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/apperror"
)

var (
	ErrInvalidRecordID = apperror.New(
		apperror.CodeValidationError,
		"Invalid record ID",
		http.StatusBadRequest,
	)

	ErrTrailLookupFailed = apperror.New(
		apperror.CodeStoreError,
		"Failed to read the audit trail",
		http.StatusServiceUnavailable,
	)
)
