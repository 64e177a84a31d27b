package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderUnavailable indicates the provider could not be reached
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// ProviderError wraps provider-specific errors. Kind, when set, is one of the
// sentinel errors above so callers can branch with errors.Is.
type ProviderError struct {
	Provider string
	Kind     error
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

// classifyTransportError tags SDK/transport errors with a Kind.
func classifyTransportError(provider string, err error) error {
	if err == nil {
		return nil
	}

	pe := &ProviderError{Provider: provider, Err: err}

	var urlErr *url.Error
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		pe.Kind = ErrProviderTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		pe.Kind = ErrProviderTimeout
	case errors.As(err, &urlErr):
		pe.Kind = ErrProviderUnavailable
	}
	return pe
}
