package record

import (
	"errors"
	"net/http"
	"strings"

	recorderrors "github.com/TrueLearn-Academy/Emp-agent/internal/record/errors"
	"github.com/TrueLearn-Academy/Emp-agent/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	// Sentinels raised inside a transaction pass through untouched.
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return recorderrors.ErrRecordNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employee_records_employee_id" {
			return recorderrors.ErrEmployeeIDConflict
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_records_employee_id") {
		return recorderrors.ErrEmployeeIDConflict
	}

	// Operator detail is logged by callers; users get a retryable message.
	return apperror.Wrap(err, apperror.CodeStoreError, apperror.ErrStore.Message, http.StatusServiceUnavailable)
}
