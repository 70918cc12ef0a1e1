package analytics

import (
	"fmt"
)

// EmptyInputError represents an aggregation requested over zero rows, where
// mean and standard deviation are undefined.
type EmptyInputError struct {
	Stage string
}

// Error implements the error interface
func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: empty input, nothing to aggregate", e.Stage)
}

// InsufficientDataError represents a population too small for the requested
// computation, e.g. fewer distinct clients than clusters.
type InsufficientDataError struct {
	Stage string
	Need  int
	Got   int
}

// Error implements the error interface
func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: need at least %d records, got %d", e.Stage, e.Need, e.Got)
}

// NewEmptyInputError creates a new EmptyInputError
func NewEmptyInputError(stage string) error {
	return &EmptyInputError{Stage: stage}
}

// NewInsufficientDataError creates a new InsufficientDataError
func NewInsufficientDataError(stage string, need, got int) error {
	return &InsufficientDataError{
		Stage: stage,
		Need:  need,
		Got:   got,
	}
}
