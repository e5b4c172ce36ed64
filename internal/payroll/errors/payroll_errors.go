package payrollerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll not found",
		http.StatusNotFound,
	)
	ErrPayrollAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Payroll already exists for this month",
		http.StatusConflict,
	)
	ErrNoActiveEmployees = apperror.New(
		apperror.CodeNotFound,
		"No active employees found for payroll generation",
		http.StatusNotFound,
	)
)
