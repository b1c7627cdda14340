package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string   // Error code (e.g., INVALID_INPUT)
	Message    string   // User-friendly message
	HTTPStatus int      // HTTP status code
	Details    []string // Optional per-field messages (validation)
	Err        error    // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        nil,
	}
}

// Newf creates a new AppError with a formatted message, wrapping sentinel
// so that errors.Is(err, sentinel) still holds.
func Newf(sentinel *AppError, format string, args ...any) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: sentinel.HTTPStatus,
		Err:        sentinel,
	}
}

// Wrap creates an AppError that wraps an existing error
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

// ToHTTP is the single translation point from a service/validation failure
// to an outward status and body. Uncategorized errors become 500 and carry
// the underlying message through.
func ToHTTP(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &AppError{
		Code:       CodeInternalError,
		Message:    msg,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
