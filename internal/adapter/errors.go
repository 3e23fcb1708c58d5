package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuth means the provider rejected the configured credentials.
	ErrAuth = errors.New("upstream rejected credentials")
	// ErrRateLimited means the provider is throttling requests.
	ErrRateLimited = errors.New("upstream rate limit exceeded")
	// ErrEmptyResponse means the provider answered without any content.
	ErrEmptyResponse = errors.New("upstream returned empty content")
)

// StatusError carries a non-success upstream status and the provider's own
// message. The message is for logs only and must not reach API callers.
type StatusError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Message)
}

// Unwrap lets errors.Is match ErrAuth and ErrRateLimited on classified statuses.
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuth
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return nil
	}
}
