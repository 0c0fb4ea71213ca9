package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hapkiduki/shapecalc/pkg/logger"
	"github.com/hapkiduki/shapecalc/pkg/runctx"
)

func newObserved(level zapcore.Level) (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return logger.NewFromZap(zap.New(core)), logs
}

func Test_Logger_WithFields(t *testing.T) {
	log, logs := newObserved(zapcore.DebugLevel)

	base := log.With("component", "calculator")
	base.Info("first", "n", 1)
	base.With("extra", true).Debug("second")
	base.Warn("third")

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, "calculator", entries[0].ContextMap()["component"])
	assert.EqualValues(t, 1, entries[0].ContextMap()["n"])

	assert.Equal(t, true, entries[1].ContextMap()["extra"])
	_, leaked := entries[2].ContextMap()["extra"]
	assert.False(t, leaked)
}

func Test_Logger_WithContext(t *testing.T) {
	log, logs := newObserved(zapcore.InfoLevel)

	ctx := runctx.WithRunID(context.Background(), "run-1")
	log.WithContext(ctx).Info("with run")
	log.WithContext(context.Background()).Info("without run")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "run-1", entries[0].ContextMap()["run_id"])
	_, ok := entries[1].ContextMap()["run_id"]
	assert.False(t, ok)
}

func Test_Logger_LevelFilter(t *testing.T) {
	log, logs := newObserved(zapcore.WarnLevel)

	log.Debug("hidden")
	log.Info("hidden")
	log.Error("shown")

	assert.Equal(t, 1, logs.Len())
}

func Test_New(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		wantErr bool
	}{
		{name: "default", cfg: logger.DefaultConfig()},
		{name: "console_debug", cfg: logger.Config{Level: "debug", Format: "console", Development: true}},
		{name: "bad_level", cfg: logger.Config{Level: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, log.ZapLogger())
		})
	}
}

func Test_Logger_Named(t *testing.T) {
	log, logs := newObserved(zapcore.InfoLevel)

	log.With("component", "calc").Named("shapecalc").Info("named")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "shapecalc", entries[0].LoggerName)
	assert.Equal(t, "calc", entries[0].ContextMap()["component"])
}
