package errors

import "net/http"

var ErrNoFilterMatches = &Exception{
	Message:    "no tasks matched the provided filters",
	StatusCode: http.StatusNotFound,
}
