package gateway

import (
	"errors"
	"fmt"
)

// NetworkError is a transport failure or a non-2xx response
type NetworkError struct {
	Status  int    // 0 for transport failures
	Message string // server-provided message when the body carried one
	Err     error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return "network error: " + e.Err.Error()
	case e.Status != 0:
		return fmt.Sprintf("request failed with status %d", e.Status)
	default:
		return "network error"
	}
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NotFoundError is an empty by-id result or a mutation of an id the server does not know
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// ValidationError is raised before any request is sent
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
