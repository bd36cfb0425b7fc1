package errors

import "net/http"

// ErrNotFound covers both "no such entity" and "entity owned by someone
// else"; the two causes must stay indistinguishable to the caller.
var ErrNotFound = &Exception{
	Message:    "resource not found",
	StatusCode: http.StatusNotFound,
}
