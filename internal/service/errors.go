package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for the service layer. Handlers map each to exactly
// one HTTP status; messages shown to users live at the handler layer.
var (
	// ErrValidation marks missing or malformed input.
	ErrValidation = errors.New("invalid input")
	// ErrAuth marks failed credential or token checks. Deliberately
	// uniform: callers cannot tell a missing user from a bad password.
	ErrAuth = errors.New("invalid credentials")
	// ErrConflict marks a uniqueness violation.
	ErrConflict = errors.New("already exists")
	// ErrNotFound marks reads or writes that matched no owned row.
	// Rows owned by someone else also land here, never a 403.
	ErrNotFound = errors.New("not found")
	// ErrStorage marks an underlying store failure.
	ErrStorage = errors.New("storage failure")
)

// storage wraps a store failure while keeping the cause visible to
// errors.Is (context.DeadlineExceeded in particular).
func storage(err error) error {
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
