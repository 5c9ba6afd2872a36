package errors

import (
	"errors"
	"net/http"
	"strings"
)

type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// NewValidation joins every failing rule into one client-facing message.
func NewValidation(failures []string) *Exception {
	return &Exception{
		Message:    "validation error: " + strings.Join(failures, ", "),
		StatusCode: http.StatusBadRequest,
	}
}
