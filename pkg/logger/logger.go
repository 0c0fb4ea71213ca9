// Package logger provides structured logging utilities.
// It wraps the zap logger with a simplified interface that follows
// the 12-Factor App logging principles (logs as event streams).
//
// 12-Factor App compliance:
//   - XI. Logs: Treat logs as event streams
//   - Output to stderr, keeping stdout for rendered results
//   - Structured logging format (JSON) for easy parsing
package logger

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hapkiduki/shapecalc/pkg/runctx"
)

// Logger is the application logger interface implementation.
type Logger struct {
	zap    *zap.Logger
	sugar  *zap.SugaredLogger
	fields []any
}

// Config contains logger configuration.
type Config struct {
	// Level is the minimun log level (debug, info, warn, error).
	Level string

	// Format is the output format (json, console).
	Format string

	// Development enables development mode (more verbose)
	Development bool
}

// DefaultConfig returns the default logger configuration.
//
// Returns:
//   - Config: default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		Development: false,
	}
}

// New creates a new Logger with the given configuration.
//
// Parameters:
//   - cfg: Logger configuration
//
// Returns:
//   - *Logger: configured logger instance
//   - error: Any error during initialization
func New(cfg Config) (*Logger, error) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(
		encoder,
		zapcore.AddSync(os.Stderr),
		level,
	)

	opts := []zap.Option{
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	}

	if cfg.Development {
		opts = append(opts, zap.Development())
	}

	return NewFromZap(zap.New(core, opts...)), nil
}

// MustNew creates a new Logger and panics on error.
//
// Parameters:
//   - cfg: Logger configuration
//
// Returns:
//   - *Logger: configured logger instance
func MustNew(cfg Config) *Logger {
	logger, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return logger
}

// NewFromZap wraps an existing zap.Logger.
func NewFromZap(z *zap.Logger) *Logger {
	return &Logger{
		zap:   z,
		sugar: z.Sugar(),
	}
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return NewFromZap(zap.NewNop())
}

// Debug logs a debug message with optional key-value pairs.
func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, l.merge(keysAndValues)...)
}

// Info logs an info message with optional key-value pairs.
func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.sugar.Infow(msg, l.merge(keysAndValues)...)
}

// Warn logs a warning message with optional key-value pairs.
func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.sugar.Warnw(msg, l.merge(keysAndValues)...)
}

// Error logs an error message with optional key-value pairs.
func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.sugar.Errorw(msg, l.merge(keysAndValues)...)
}

// Fatal logs a fatal message and exits the program.
func (l *Logger) Fatal(msg string, keysAndValues ...any) {
	l.sugar.Fatalw(msg, l.merge(keysAndValues)...)
}

// merge copies the bound fields so appends never alias between loggers.
func (l *Logger) merge(keysAndValues []any) []any {
	out := make([]any, 0, len(l.fields)+len(keysAndValues))
	out = append(out, l.fields...)
	return append(out, keysAndValues...)
}

// With return a logger with additional context fields.
// These fields will be included in all subsequent log entries.
//
// Parameters:
//   - keysAndValues: key-value pairs to add
//
// Returns:
//   - Logger: new logger with additional fields
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{
		zap:    l.zap,
		sugar:  l.sugar,
		fields: l.merge(keysAndValues),
	}
}

// WithContext return a logger with context information (the run ID).
//
// Parameters:
//   - ctx: the context to extract values from
//
// Returns:
//   - Logger: new logger with context fields
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if runID := runctx.RunID(ctx); runID != "" {
		return l.With("run_id", runID)
	}
	return l.With()
}

// Sync flushes any buffered log entries.
// Should be called before application exit.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}

// Named returns a named logger
//
// Parameters:
//   - name: The logger name (will be added to log output)
//
// Returns:
//   - *Logger: A named logger
func (l *Logger) Named(name string) *Logger {
	named := l.zap.Named(name)
	return &Logger{
		zap:    named,
		sugar:  named.Sugar(),
		fields: l.fields,
	}
}

// ZapLogger returns the underlying zap.Logger instance.
func (l *Logger) ZapLogger() *zap.Logger {
	return l.zap
}
