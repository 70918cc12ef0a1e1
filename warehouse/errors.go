package warehouse

import (
	"fmt"
)

// ValidationError represents a malformed or out-of-range field value on an
// input record.
type ValidationError struct {
	Field  string
	Reason string
	Value  interface{}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed for field '%s': %s (value: %v)", e.Field, e.Reason, e.Value)
	}
	return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Reason)
}

// MissingReferenceError represents a fact row referencing a nonexistent
// dimension key.
type MissingReferenceError struct {
	Dimension string
	SaleID    int
	Key       int
}

// Error implements the error interface
func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("sale %d references missing %s key %d", e.SaleID, e.Dimension, e.Key)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, reason string) error {
	return &ValidationError{
		Field:  field,
		Reason: reason,
	}
}

// NewValidationErrorWithValue creates a new ValidationError with a value
func NewValidationErrorWithValue(field, reason string, value interface{}) error {
	return &ValidationError{
		Field:  field,
		Reason: reason,
		Value:  value,
	}
}

// NewMissingReferenceError creates a new MissingReferenceError
func NewMissingReferenceError(dimension string, saleID, key int) error {
	return &MissingReferenceError{
		Dimension: dimension,
		SaleID:    saleID,
		Key:       key,
	}
}
