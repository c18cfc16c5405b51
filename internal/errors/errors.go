// Package errors defines the error taxonomy shared across the webhook.
package errors

import (
	"errors"
	"fmt"
)

var (
	// Startup errors
	ErrConfigurationMissing = errors.New("configuration missing")

	// Callback validation errors
	ErrInvalidCSRFState         = errors.New("invalid CSRF state")
	ErrMissingAuthorizationCode = errors.New("missing authorization code")

	// Provider errors
	ErrTokenExchangeFailed   = errors.New("token exchange failed")
	ErrEnrichmentUnavailable = errors.New("creator info unavailable")

	// Storage errors
	ErrPersistenceFailed  = errors.New("persistence failed")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Tag attaches a sentinel to err so callers can match it with Is while the
// original cause stays in the message.
func Tag(err, sentinel error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
