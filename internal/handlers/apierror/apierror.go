// Package apierror is the error body every endpoint returns: a bare
// {"error": "..."} object with the HTTP status carried out of band.
package apierror

import (
	"github.com/danielgtaylor/huma/v2"
)

// Error implements huma.StatusError and serializes as {"error": message}.
type Error struct {
	status  int
	Message string `json:"error" doc:"Human-readable error message"`
}

var _ huma.StatusError = (*Error)(nil)

// New creates an API error with the given status and caller-facing message.
func New(status int, message string) *Error {
	return &Error{status: status, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.status
}
