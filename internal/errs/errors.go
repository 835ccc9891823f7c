package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error variables
var (
	ErrValidation = errors.New("validation failed")     // Malformed input, rejected before storage
	ErrConflict   = errors.New("record already exists") // Uniqueness violation on create
	ErrNotFound   = errors.New("record not found")      // Update/delete target does not exist
	ErrStorage    = errors.New("storage failure")       // Any other persistence error
)

// ValidationError lists the fields that failed validation and why.
type ValidationError struct {
	Fields map[string]string
}

// Error returns the failing fields in a stable order.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

// Is reports ValidationError as ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// Storage wraps a persistence failure so it matches ErrStorage while keeping the cause.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
