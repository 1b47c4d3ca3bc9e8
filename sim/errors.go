package sim

import (
	"github.com/cockroachdb/errors"
)

// ErrInvalidInput marks every precondition failure reported by the simulation engines.
// Test with errors.Is(err, ErrInvalidInput); the message names the offending field.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputf formats a validation failure and marks it as ErrInvalidInput.
func InvalidInputf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidInput)
}

// ValidatePositive checks that values is non-empty and that every element is > 0.
// name is used as the field prefix in the error message (e.g. "blocks[2]").
func ValidatePositive(name string, values []int) error {
	if len(values) == 0 {
		return InvalidInputf("%s must not be empty", name)
	}
	for i, v := range values {
		if v <= 0 {
			return InvalidInputf("%s[%d] must be positive, got %d", name, i, v)
		}
	}
	return nil
}

// ValidateNonEmpty checks that values has at least one element.
// Element values are not inspected.
func ValidateNonEmpty(name string, values []int) error {
	if len(values) == 0 {
		return InvalidInputf("%s must not be empty", name)
	}
	return nil
}
