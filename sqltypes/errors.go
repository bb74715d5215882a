package sqltypes

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is returned when a backend has no tag by the given name.
	ErrUnknownType = errors.New("unknown sql type")

	// ErrBackendNotEnabled is returned when the backend was never registered.
	ErrBackendNotEnabled = errors.New("backend not enabled")

	// ErrDuplicateBackend is returned when a backend is registered twice.
	ErrDuplicateBackend = errors.New("backend already registered")

	// ErrArrayUnsupported is returned for array declarations of a type without
	// an array form on the backend.
	ErrArrayUnsupported = errors.New("array form not supported")

	// ErrInvalidDeclaration is returned when a column type cannot be parsed.
	ErrInvalidDeclaration = errors.New("invalid type declaration")
)

// LookupError describes a failed tag lookup.
type LookupError struct {
	Backend string
	Type    string
	Cause   error
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("%s: %v", e.Backend, e.Cause)
	}
	return fmt.Sprintf("%s: %q: %v", e.Backend, e.Type, e.Cause)
}

// Unwrap returns the underlying error.
func (e *LookupError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target.
func (e *LookupError) Is(target error) bool {
	return errors.Is(e.Cause, target)
}

func lookupErr(backend, typ string, cause error) *LookupError {
	return &LookupError{Backend: backend, Type: typ, Cause: cause}
}
