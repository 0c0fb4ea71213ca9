// Package port contains the port interfaces (driven ports) for the application layer.
// Ports define the interfaces that the application layer requires from external
// concerns like logging and presentation.
//
// In Hexagonal Architecture (ports & adapters):
//   - Ports are interfaces that define what the application needs.
//   - Adapters are implementations of these interfaces
//   - this enables loose coupling and easy testing/swapping of implementations.
//
// SOLID Principles applied:
//   - Interface Segregation: small, focused interfaces
//   - Dependency Inversion: Application depends on abstractions
package port

import (
	"context"
	"io"

	"github.com/hapkiduki/shapecalc/internal/domain/valueobject"
)

// Logger defines the interface for structured logging.
//
// Example usage:
//
//	logger.Info("Totals calculated", "total_area", result.Area, "total_volume", result.Volume)
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...any)

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// With return a logger with additional context fields.
	With(keysAndValues ...any) Logger

	// WithContext return a logger with context information (e.g., run ID).
	WithContext(ctx context.Context) Logger
}

// Renderer writes an aggregate result in a presentation format.
type Renderer interface {
	// Format returns the format name (e.g., "json", "html").
	Format() string

	// Render writes the result to w.
	//
	// Parameters:
	//   - w: destination writer
	//   - result: the rounded totals to render
	//
	// Returns:
	//   - error: any error encountered while writing
	Render(w io.Writer, result valueobject.AggregateResult) error
}
