// Package runctx carries the calculation run ID through a context.
package runctx

import "context"

// contextKey is a custom type for context keys.
type contextKey string

// RunIDKey is the context key for the calculation run ID.
const RunIDKey contextKey = "run_id"

// WithRunID returns a copy of ctx carrying the run ID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// RunID extracts the run ID from the context.
//
// Returns:
//   - string: the run ID, or empty string if not found
func RunID(ctx context.Context) string {
	if id, ok := ctx.Value(RunIDKey).(string); ok {
		return id
	}
	return ""
}
