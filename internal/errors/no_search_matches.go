package errors

import "net/http"

var ErrNoSearchMatches = &Exception{
	Message:    "no tasks matched the search term",
	StatusCode: http.StatusNotFound,
}
