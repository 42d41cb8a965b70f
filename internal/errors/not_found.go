package errors

import "net/http"

// ErrNotFound is returned both for absent records and for records owned by a
// different user; the message never reveals which.
var ErrNotFound = &Exception{
	Message:    "not found",
	StatusCode: http.StatusNotFound,
}
