// Package logging adapts pkg/logger to the application's port.Logger.
package logging

import (
	"context"

	"github.com/hapkiduki/shapecalc/internal/application/port"
	"github.com/hapkiduki/shapecalc/pkg/logger"
)

// Adapter adapts the logger.Logger to the port.Logger interface.
type Adapter struct {
	*logger.Logger
}

// NewAdapter wraps log as a port.Logger.
func NewAdapter(log *logger.Logger) *Adapter {
	return &Adapter{log}
}

// With implements port.Logger.
func (a *Adapter) With(keysAndValues ...any) port.Logger {
	return &Adapter{a.Logger.With(keysAndValues...)}
}

// WithContext implements port.Logger.
func (a *Adapter) WithContext(ctx context.Context) port.Logger {
	return &Adapter{a.Logger.WithContext(ctx)}
}

var _ port.Logger = (*Adapter)(nil)
