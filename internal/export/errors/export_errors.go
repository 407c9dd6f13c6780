package exporterrors

import (
	"net/http"

	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/apperror"
)

var ErrExportFailed = apperror.New(
	apperror.CodeInternalError,
	"Failed to generate the export file",
	http.StatusInternalServerError,
)
