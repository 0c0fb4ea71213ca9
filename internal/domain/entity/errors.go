package entity

import (
	"errors"
	"fmt"
)

// Shape errors define domain-specific error conditions.
var (
	// ErrNotAShape is returned when a collection element cannot compute an area.
	ErrNotAShape = errors.New("not a shape")

	// ErrUnknownShapeKind is returned when a shape kind has no variant.
	ErrUnknownShapeKind = errors.New("unknown shape kind")
)

// NotAShapeError identifies the collection element that failed the
// Shape capability check.
type NotAShapeError struct {
	// Index is the position of the element in the collection.
	Index int

	// Value is the offending element.
	Value any
}

// Error implements error.
func (e *NotAShapeError) Error() string {
	return fmt.Sprintf("element %d (%T) %v is not a shape", e.Index, e.Value, e.Value)
}

// Unwrap returns ErrNotAShape so callers can match with errors.Is.
func (e *NotAShapeError) Unwrap() error {
	return ErrNotAShape
}
