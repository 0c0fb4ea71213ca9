// Package service contains domain services that operate over collections
// of shape entities.
//
// SOLID Principles applied:
//   - Open/Closed: adding a shape variant does not modify the calculators.
//   - Dependency Inversion: calculators depend on the entity.Shape and
//     entity.Solid capabilities, never on concrete variants.
package service

import "github.com/hapkiduki/shapecalc/internal/domain/entity"

// AreaCalculator sums the area over a heterogeneous collection.
// Every element must be an entity.Shape.
type AreaCalculator struct {
	shapes []any
}

// NewAreaCalculator creates an AreaCalculator over the given collection.
//
// Parameters:
//   - shapes: ordered collection of values expected to be shapes
//
// Returns:
//   - *AreaCalculator: calculator holding a reference to the collection
func NewAreaCalculator(shapes []any) *AreaCalculator {
	return &AreaCalculator{shapes: shapes}
}

// Sum returns the total area of the collection.
// It fails on the first element that is not a shape; no partial sum is returned.
//
// Returns:
//   - float64: the summed area (0 for an empty collection)
//   - error: *entity.NotAShapeError wrapping entity.ErrNotAShape
func (c *AreaCalculator) Sum() (float64, error) {
	var total float64
	for i, v := range c.shapes {
		shape, ok := v.(entity.Shape)
		if !ok {
			return 0, &entity.NotAShapeError{Index: i, Value: v}
		}
		total += shape.Area()
	}
	return total, nil
}

// VolumeCalculator sums the volume over a heterogeneous collection.
// Elements that are not entity.Solid contribute zero.
type VolumeCalculator struct {
	shapes []any
}

// NewVolumeCalculator creates a VolumeCalculator over the given collection.
func NewVolumeCalculator(shapes []any) *VolumeCalculator {
	return &VolumeCalculator{shapes: shapes}
}

// Sum returns the total volume of the collection. It never fails.
func (c *VolumeCalculator) Sum() float64 {
	var total float64
	for _, v := range c.shapes {
		if solid, ok := v.(entity.Solid); ok {
			total += solid.Volume()
		}
	}
	return total
}
