package salaryerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary structure not found",
		http.StatusNotFound,
	)
	ErrSalaryAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Salary structure already exists for this employee",
		http.StatusConflict,
	)
)
