package leaveerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrLeaveAlreadyReviewed = apperror.New(
		apperror.CodeInvalidState,
		"Leave request has already been reviewed",
		http.StatusConflict,
	)
)
