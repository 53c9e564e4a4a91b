package otf

import (
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrNoUser indicates an operation that needs an authenticated user
	// ran before login completed.
	ErrNoUser = errors.New("no authenticated user")

	// ErrClosed indicates the client was used after Close.
	ErrClosed = errors.New("client is closed")
)

// HTTPError represents a non-2xx API response. The status code and raw
// body are preserved for caller-side diagnosis; no retry is attempted.
type HTTPError struct {
	Status int
	URL    string
	Body   string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("API request to %s failed with status %d: %s", e.URL, e.Status, e.Body)
}

// IsNotFound checks if the error indicates a not found response.
func (e *HTTPError) IsNotFound() bool {
	return e.Status == 404
}

// IsUnauthorized checks if the error indicates an authentication failure.
func (e *HTTPError) IsUnauthorized() bool {
	return e.Status == 401 || e.Status == 403
}

// NetworkError represents a transport failure with no HTTP response.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError represents a 2xx response whose body was not valid JSON.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid JSON from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
