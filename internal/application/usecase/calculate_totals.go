// Package usecase contains the application use cases.
// A use case orchestrates domain services and reports through ports.
package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hapkiduki/shapecalc/internal/application/port"
	"github.com/hapkiduki/shapecalc/internal/domain/entity"
	"github.com/hapkiduki/shapecalc/internal/domain/service"
	"github.com/hapkiduki/shapecalc/internal/domain/valueobject"
	"github.com/hapkiduki/shapecalc/pkg/runctx"
)

// Capability describes what a collection element can compute.
type Capability struct {
	// Index is the position of the element in the collection.
	Index int `json:"index"`

	// Kind is the shape variant tag.
	Kind entity.Kind `json:"kind"`

	// IsShape reports the area capability.
	IsShape bool `json:"is_shape"`

	// IsSolid reports the volume capability.
	IsSolid bool `json:"is_solid"`
}

// CalculateTotals computes the total area and volume of a shape collection.
type CalculateTotals struct {
	log port.Logger
}

// NewCalculateTotals creates the use case.
//
// Parameters:
//   - log: logger port
//
// Returns:
//   - *CalculateTotals: the use case
func NewCalculateTotals(log port.Logger) *CalculateTotals {
	return &CalculateTotals{log: log}
}

// Execute runs one aggregation over shapes.
// Area aggregation is strict and aborts on the first non-shape;
// volume aggregation treats non-solids as zero.
//
// Parameters:
//   - ctx: context for the run; a run ID is attached for logging
//   - shapes: ordered heterogeneous collection
//
// Returns:
//   - valueobject.AggregateResult: rounded totals
//   - error: wrapped entity.ErrNotAShape when an element has no area
func (uc *CalculateTotals) Execute(ctx context.Context, shapes []any) (valueobject.AggregateResult, error) {
	ctx = runctx.WithRunID(ctx, uuid.New().String())
	log := uc.log.WithContext(ctx)

	log.Debug("Aggregation started", "shape_count", len(shapes))

	area, err := service.NewAreaCalculator(shapes).Sum()
	if err != nil {
		log.Error("Area aggregation failed", "error", err)
		return valueobject.AggregateResult{}, fmt.Errorf("failed to sum area: %w", err)
	}

	volume := service.NewVolumeCalculator(shapes).Sum()

	result := valueobject.NewAggregateResult(valueobject.Totals{
		Area:   area,
		Volume: volume,
	})

	log.Info("Totals calculated",
		"shape_count", len(shapes),
		"total_area", result.Area,
		"total_volume", result.Volume,
	)

	return result, nil
}

// Capabilities reports the capabilities of every element in shapes.
func Capabilities(shapes []any) []Capability {
	caps := make([]Capability, len(shapes))
	for i, v := range shapes {
		caps[i] = Capability{
			Index:   i,
			Kind:    entity.KindOf(v),
			IsShape: entity.IsShape(v),
			IsSolid: entity.IsSolid(v),
		}
	}
	return caps
}
