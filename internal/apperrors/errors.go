package apperrors

import (
	"errors"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPrecondition indicates that a caller passed arguments a pure calculation cannot accept,
// such as a zero-day stay. Validated records never trigger it.
var ErrPrecondition = errors.New("precondition violated")

// FieldError describes a single field that failed validation.
type FieldError struct {
	Field   string `json:"field"`   // external field name, e.g. "totalPrice"
	Message string `json:"message"` // user-facing message
}

// ValidationError carries every field that failed validation for one request.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports ErrValidation as the sentinel for this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// HasField reports whether the named field is among the failures.
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// FieldNames returns the failed field names in reporting order.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return names
}
