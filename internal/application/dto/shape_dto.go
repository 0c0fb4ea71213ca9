// Package dto contains data transfer objects.
package dto

import (
	"fmt"
	"strings"

	"github.com/hapkiduki/shapecalc/internal/domain/entity"
)

// ShapeSpec describes a shape by kind and dimensions.
// Only the dimensions relevant to Kind are read.
type ShapeSpec struct {
	// Kind is the shape variant (square, circle, rectangle, sphere).
	Kind string `mapstructure:"kind" json:"kind"`

	// Side is the side length of a square.
	Side float64 `mapstructure:"side" json:"side,omitempty"`

	// Radius is the radius of a circle or sphere.
	Radius float64 `mapstructure:"radius" json:"radius,omitempty"`

	// Length is the length of a rectangle.
	Length float64 `mapstructure:"length" json:"length,omitempty"`

	// Width is the width of a rectangle.
	Width float64 `mapstructure:"width" json:"width,omitempty"`
}

// ValidationError represents a shape spec that could not be mapped.
type ValidationError struct {
	// Field is the field that failed validation.
	Field string `json:"field"`

	// Message is the validation error message.
	Message string `json:"message"`

	// Value is the invalid value.
	Value any `json:"value,omitempty"`
}

// ToEntity maps the spec to its shape variant.
//
// Returns:
//   - entity.Shape: the constructed shape
//   - error: entity.ErrUnknownShapeKind if Kind has no variant
func (s ShapeSpec) ToEntity() (entity.Shape, error) {
	switch entity.Kind(strings.ToLower(strings.TrimSpace(s.Kind))) {
	case entity.KindSquare:
		return entity.NewSquare(s.Side), nil
	case entity.KindCircle:
		return entity.NewCircle(s.Radius), nil
	case entity.KindRectangle:
		return entity.NewRectangle(s.Length, s.Width), nil
	case entity.KindSphere:
		return entity.NewSphere(s.Radius), nil
	default:
		return nil, fmt.Errorf("%w: %q", entity.ErrUnknownShapeKind, s.Kind)
	}
}

// ToEntities maps specs to a heterogeneous shape collection.
// It stops at the first spec with an unknown kind.
//
// Parameters:
//   - specs: ordered shape specs
//
// Returns:
//   - []any: the shape collection, in spec order
//   - []ValidationError: the failing spec, if any
//   - error: entity.ErrUnknownShapeKind wrapped with the spec position
func ToEntities(specs []ShapeSpec) ([]any, []ValidationError, error) {
	shapes := make([]any, 0, len(specs))
	for i, spec := range specs {
		shape, err := spec.ToEntity()
		if err != nil {
			verr := ValidationError{
				Field:   fmt.Sprintf("shapes[%d].kind", i),
				Message: "unknown shape kind",
				Value:   spec.Kind,
			}
			return nil, []ValidationError{verr}, fmt.Errorf("shape %d: %w", i, err)
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil, nil
}

// DefaultShapes returns the fixed demonstration set:
// Square(2), Circle(5), Rectangle(3,4) and Sphere(5).
func DefaultShapes() []ShapeSpec {
	return []ShapeSpec{
		{Kind: string(entity.KindSquare), Side: 2},
		{Kind: string(entity.KindCircle), Radius: 5},
		{Kind: string(entity.KindRectangle), Length: 3, Width: 4},
		{Kind: string(entity.KindSphere), Radius: 5},
	}
}
