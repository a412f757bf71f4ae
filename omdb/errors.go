package omdb

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid omdb configuration")
	// ErrTimeout indicates the lookup exceeded its deadline
	ErrTimeout = errors.New("omdb request timed out")
	// ErrTransport indicates a network or body read failure
	ErrTransport = errors.New("omdb request failed")
	// ErrMalformedBody indicates a 200 response that could not be decoded
	ErrMalformedBody = errors.New("omdb response body is not valid JSON")
)

// APIError represents a non-200 reply from OMDb
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("omdb API error: status %d: %s", e.StatusCode, e.Body)
}

// IsUnauthorized checks if the error indicates a rejected API key
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsTimeout reports whether err was caused by a timeout.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
