// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
//
// Value Objects follow these principles:
//   - Immutability: Once created, they cannot be changed.
//   - Equality: Two value objects are equal if all their attributes are equal.
//   - Side-effect free: Methods return new instances rather than modifying state
package valueobject

import (
	"fmt"
	"math"
	"strconv"
)

// DisplayPrecision is the number of decimal places kept for display.
const DisplayPrecision = 2

// Totals holds the raw aggregate sums passed to NewAggregateResult.
// Fields are named so area and volume cannot be swapped by position.
type Totals struct {
	// Area is the raw summed area.
	Area float64

	// Volume is the raw summed volume.
	Volume float64
}

// AggregateResult holds the total area and total volume of a shape
// collection, each rounded to DisplayPrecision decimal places.
//
// Example usage:
//
//	result := valueobject.NewAggregateResult(valueobject.Totals{Area: 408.5, Volume: 523.3333})
//	result.Volume // 523.33
type AggregateResult struct {
	// Area is the rounded total area.
	Area float64 `json:"total_area"`

	// Volume is the rounded total volume.
	Volume float64 `json:"total_volume"`
}

// NewAggregateResult rounds the raw totals for display.
// A value that is NaN or infinite defaults to 0.
//
// Parameters:
//   - totals: the raw area and volume sums
//
// Returns:
//   - AggregateResult: the rounded result
func NewAggregateResult(totals Totals) AggregateResult {
	return AggregateResult{
		Area:   displayValue(totals.Area),
		Volume: displayValue(totals.Volume),
	}
}

func displayValue(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return Round2(v)
}

// Round2 rounds v to DisplayPrecision decimal places. Rounding works on the
// exact binary value of v, with exact halves going to the even digit.
func Round2(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', DisplayPrecision, 64), 64)
	if err != nil {
		return 0
	}
	return rounded
}

// Equals checks if two results are equal in area and volume.
func (r AggregateResult) Equals(other AggregateResult) bool {
	return r.Area == other.Area && r.Volume == other.Volume
}

// String returns a formatted string representation.
//
// Returns:
//   - string: formatted result (e.g., "area=408.50 volume=523.33")
func (r AggregateResult) String() string {
	return fmt.Sprintf("area=%.2f volume=%.2f", r.Area, r.Volume)
}
