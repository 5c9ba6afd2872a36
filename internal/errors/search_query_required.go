package errors

import "net/http"

var ErrSearchQueryRequired = &Exception{
	Message:    "a search term is required",
	StatusCode: http.StatusBadRequest,
}
