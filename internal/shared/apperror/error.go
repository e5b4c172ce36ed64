package apperror

import "fmt"

// AppError is the error type every service layer returns. Handlers map it to
// an HTTP response via ToHTTP without inspecting sentinel errors themselves.
type AppError struct {
	Code       string // Machine-readable code (e.g., NOT_FOUND)
	Message    string // Message safe to show to API clients
	HTTPStatus int    // Status the handler should respond with
	Err        error  // Underlying cause, nil when none
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause so errors.Is/As see through an AppError.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError with no underlying cause.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        nil,
	}
}

// Wrap annotates err with a code and client message. Returns nil for a nil err
// so call sites can wrap unconditionally.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
