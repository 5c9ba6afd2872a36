package errors

import "net/http"

var ErrFilterRequired = &Exception{
	Message:    "at least one filter is required: status, dueDate or user",
	StatusCode: http.StatusBadRequest,
}
