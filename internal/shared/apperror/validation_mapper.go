package apperror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// formatFieldName turns a json field name into a human-readable one
// (dateOfBirth -> Date Of Birth).
func formatFieldName(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return titleCaser.String(b.String())
}

func fieldMessage(e validator.FieldError) string {
	name := formatFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email address"
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters long", name, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", name, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters long", name, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", name, e.Param())
	case "len":
		return fmt.Sprintf("%s must contain exactly %s characters", name, e.Param())
	case "number":
		return name + " must contain only digits"
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", name, e.Param())
	case "beforetoday":
		return name + " must be a date in the past"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", name, strings.Join(strings.Fields(e.Param()), ", "))
	default:
		return name + " is invalid"
	}
}

// MapValidationErrors translates a binding failure into the outward
// validation error. All violated fields are reported; when one field breaks
// several rules the first message wins. Non-validator binding failures
// (malformed JSON, wrong types) collapse into a generic invalid-input error.
func MapValidationErrors(err error) *AppError {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Wrap(err, CodeInvalidInput, "Malformed request body", http.StatusBadRequest)
	}

	seen := make(map[string]bool, len(errs))
	details := make([]string, 0, len(errs))
	for _, e := range errs {
		if seen[e.Field()] {
			continue
		}
		seen[e.Field()] = true
		details = append(details, e.Field()+": "+fieldMessage(e))
	}

	return &AppError{
		Code:       CodeInvalidInput,
		Message:    "Validation failed",
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
		Err:        err,
	}
}
