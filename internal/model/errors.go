package model

import "errors"

var (
	// ErrNotFound is returned when a referenced user or profile does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned on unique-constraint violations and stale
	// compare-and-set writes.
	ErrConflict = errors.New("conflict")
	// ErrPermissionDenied is returned when an access policy denies a mutation.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrUnauthenticated is returned when a mutation requires a requester
	// identity and none was presented.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// ValidationError is a user-correctable input problem. Info is the
// machine-readable message surfaced to the caller.
type ValidationError struct {
	Info string
}

func (e *ValidationError) Error() string {
	return e.Info
}

// NewValidationError creates a ValidationError with the given info message.
func NewValidationError(info string) *ValidationError {
	return &ValidationError{Info: info}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
