package meetingerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var ErrMeetingNotFound = apperror.New(
	apperror.CodeNotFound,
	"Meeting not found",
	http.StatusNotFound,
)
