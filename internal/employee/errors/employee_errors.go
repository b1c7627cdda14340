package employeeerrors

import (
	"net/http"

	"employee-api/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)

// NotFoundByID names the missing id in the outward message while staying
// errors.Is-compatible with ErrEmployeeNotFound.
func NotFoundByID(id int64) *apperror.AppError {
	return apperror.Newf(ErrEmployeeNotFound, "Employee not found with id: %d", id)
}

// DuplicateEmail names the offending email.
func DuplicateEmail(email string) *apperror.AppError {
	return apperror.Newf(ErrEmployeeAlreadyExists, "Email already exists: %s", email)
}
