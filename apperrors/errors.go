// Package apperrors defines the error categories shared by all services.
// Sentinel values let the controllers distinguish failure classes with
// errors.Is and translate them to HTTP status codes: ErrNotFound -> 404,
// ErrInvalidRequest -> 400, ErrConflict -> 409, anything else -> 500.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced entity id does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidRequest is returned when a date-range, discount-rate or
// numeric-field constraint is violated.
var ErrInvalidRequest = errors.New("invalid request")

// ErrConflict is reserved for operations that cannot proceed because of
// conflicting state. No current service returns it, but callers already
// map it so new checks can use it without touching the controllers.
var ErrConflict = errors.New("conflict")

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrNotFound}, args...)...)
}

// InvalidRequestf wraps ErrInvalidRequest with a formatted message.
func InvalidRequestf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidRequest}, args...)...)
}
