package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means no response was received from the server at all
	// (connection refused, DNS failure, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the server rejected the credential on a
	// credentialed call. The token is no longer usable.
	ErrUnauthorized = errors.New("unauthorized")
)

// ServerError is any other 4xx/5xx response with a body. Callers match it
// with errors.As.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server rejected request: %d %s", e.Status, e.Message)
}
