// Package apperr defines the error kinds the core distinguishes. Callers
// classify failures with errors.Is against the four sentinels; services wrap
// them with fmt.Errorf("%w: ...") to add detail without losing the kind.
package apperr

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed or missing input. Recoverable by the
	// caller correcting the request; never retried.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden marks an actor whose role does not permit the operation
	// or visibility scope.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable marks an unreachable or timed-out external dependency.
	// The only kind for which caller retry is a reasonable strategy.
	ErrUnavailable = errors.New("service unavailable")
)

// Validationf wraps ErrValidation with a formatted detail message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

// Forbiddenf wraps ErrForbidden with a formatted detail message.
func Forbiddenf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrForbidden}, args...)...)
}

// NotFoundf wraps ErrNotFound with a formatted detail message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrNotFound}, args...)...)
}

// Unavailablef wraps ErrUnavailable with a formatted detail message.
func Unavailablef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrUnavailable}, args...)...)
}

// FromStore classifies an error returned by the external store. Cancellation
// and deadline failures become ErrUnavailable so callers never mistake a
// connectivity problem for bad input; other errors pass through unchanged.
func FromStore(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
