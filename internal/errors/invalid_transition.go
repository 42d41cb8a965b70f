package errors

import "net/http"

// ErrInvalidTransition rejects reopening a completed task. Completion is a
// terminal state.
var ErrInvalidTransition = &Exception{
	Message:    "a completed task cannot be reopened",
	StatusCode: http.StatusBadRequest,
}
