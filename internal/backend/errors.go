package backend

import (
	"errors"
	"fmt"
)

// ValidationError is returned before any request is sent
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// TransportError covers network failures, timeouts, non-2xx statuses and
// bodies that could not be decoded
type TransportError struct {
	Op         string
	StatusCode int // 0 when no response was received
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ApplicationError means the server answered success=false
type ApplicationError struct {
	Op      string
	Message string
}

func (e *ApplicationError) Error() string {
	if e.Message == "" {
		return e.Op + ": rejected by server"
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// UserMessage picks the text to show for a failed call: the server's message
// when one was supplied, otherwise fallback.
func UserMessage(err error, fallback string) string {
	var appErr *ApplicationError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	var trErr *TransportError
	if errors.As(err, &trErr) && trErr.Message != "" {
		return trErr.Message
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.Reason
	}
	return fallback
}

// IsValidation reports whether err was raised before any request was sent
func IsValidation(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
