package errors

import "net/http"

var ErrUnauthorized = &Exception{
	Message:    "missing or invalid token",
	StatusCode: http.StatusUnauthorized,
}
