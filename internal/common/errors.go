// Package common defines shared constants and sentinel errors used across
// client and server layers of Courtside. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound          = errors.New("not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrStoreUnavailable    = errors.New("store unavailable")

	// Service-level errors.
	ErrorInternal         = errors.New("internal error")
	ErrValidation         = errors.New("validation error")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleMismatch       = errors.New("role mismatch")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)

// ValidationError names the request field that failed validation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is reports ErrValidation so callers can match on the sentinel.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// RoleMismatchError is returned by login when the requested role differs from
// the role the account was registered with.
type RoleMismatchError struct {
	Registered string
}

func (e *RoleMismatchError) Error() string {
	return fmt.Sprintf("Account is registered as a %s.", e.Registered)
}

// Is reports ErrRoleMismatch so callers can match on the sentinel.
func (e *RoleMismatchError) Is(target error) bool { return target == ErrRoleMismatch }
