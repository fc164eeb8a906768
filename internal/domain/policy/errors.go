package policy

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired is returned when an operation that needs an active
	// session is attempted without one. Checked before any storage call.
	ErrAuthRequired = errors.New("authentication required")

	// ErrPermissionDenied is returned when a role or ownership check fails.
	// List reads never return this; they yield an empty result set instead.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidTransition is returned for an appointment status change the
	// lifecycle table does not allow.
	ErrInvalidTransition = errors.New("invalid appointment status transition")
)

// IntegrityViolationError blocks a user deletion while appointments still
// reference the user as patient or doctor. It reports the conflicting count.
type IntegrityViolationError struct {
	Appointments int64
}

func (e *IntegrityViolationError) Error() string {
	return fmt.Sprintf("user is referenced by %d appointment(s)", e.Appointments)
}

// IsIntegrityViolation reports whether err is an IntegrityViolationError.
func IsIntegrityViolation(err error) bool {
	var target *IntegrityViolationError
	return errors.As(err, &target)
}
