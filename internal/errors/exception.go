package errors

import (
	"errors"
	"net/http"
)

// Exception is an application error carrying the HTTP status the transport
// layer should map it to. Field is set for validation failures so the caller
// learns which input was rejected.
type Exception struct {
	Message    string
	StatusCode int
	Field      string
}

func (e *Exception) Error() string {
	return e.Message
}

// Validation builds a field-level validation error.
func Validation(field, message string) *Exception {
	return &Exception{
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Field:      field,
	}
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
