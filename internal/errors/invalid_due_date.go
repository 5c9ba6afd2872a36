package errors

import "net/http"

var ErrInvalidDueDate = &Exception{
	Message:    "dueDate must be a valid calendar date (YYYY-MM-DD)",
	StatusCode: http.StatusBadRequest,
}
