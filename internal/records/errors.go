package records

import (
	"errors"
	"strings"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation   = errors.New("validation failed")
	ErrUnknownField = errors.New("unknown field")
	ErrNoFields     = errors.New("no fields")
	ErrArity        = errors.New("wrong number of values")
	ErrEmptyValue   = errors.New("empty value")
)

// ValidationError reports the fields that were blank when Add was called.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing values for: " + strings.Join(e.Missing, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
