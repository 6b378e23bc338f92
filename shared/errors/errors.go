package errors

import (
	"fmt"
)

// Is reports whether err is an instance of T.
// Only the top-level error is checked; use errors.As to look through wrapping.
func Is[T error](err error) bool {
	if _, ok := err.(T); ok {
		return true
	}
	return false
}

// ValidationError is returned before any network call when a request field
// violates its format. Message is field-path qualified, e.g. "guest.email is invalid".
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// APIError is returned after a completed round trip with a non-2xx status.
// Body is the response body re-encoded as JSON.
type APIError struct {
	StatusCode int
	Body       string
}

// Callers match on this text, keep the format stable.
func (e *APIError) Error() string {
	return fmt.Sprintf("ChatEase API error: %d - %s", e.StatusCode, e.Body)
}

// TransportError wraps failures of the network itself (DNS, refused connection,
// timeout, truncated body). It never carries an HTTP status.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("chatease transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a 2xx response body cannot be read as a board:
// invalid JSON, or slug, hostURL or guestURL missing. Body is the re-encoded body.
type DecodeError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode board response (status %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
