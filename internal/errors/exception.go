package errors

import (
	"errors"
	"net/http"
)

// Exception is an application error that knows the HTTP status it should
// surface with at the boundary.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// StatusCode maps err to an HTTP status, defaulting to 500 for anything
// that is not an *Exception.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
