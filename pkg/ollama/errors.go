package ollama

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorType classifies client failures.
type ErrorType int

const (
	ErrTypeOther ErrorType = iota
	ErrTypeTimeout
	ErrTypeConnection
)

func (t ErrorType) String() string {
	switch t {
	case ErrTypeTimeout:
		return "timeout"
	case ErrTypeConnection:
		return "connection"
	default:
		return "other"
	}
}

// ClientError is returned for every failed call.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ollama: %s: %v", e.Message, e.Cause)
	}
	return "ollama: " + e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is matches on Type so callers can test errors.Is(err, ollama.ErrTimeout).
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	if !ok {
		return false
	}
	return t.Message == "" && t.Cause == nil && t.Type == e.Type
}

var (
	ErrTimeout    = &ClientError{Type: ErrTypeTimeout}
	ErrConnection = &ClientError{Type: ErrTypeConnection}
)

// APIError is a non-2xx answer from the daemon.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
}

// classifyTransportError maps an http.Client.Do failure.
func classifyTransportError(err error) *ClientError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &ClientError{Type: ErrTypeTimeout, Message: "request timed out", Cause: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &ClientError{Type: ErrTypeTimeout, Message: "request timed out", Cause: err}
	}
	return &ClientError{Type: ErrTypeConnection, Message: "failed to reach server", Cause: err}
}
