package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/shapecalc/internal/application/dto"
	"github.com/hapkiduki/shapecalc/internal/infrastructure/config"
)

func Test_Load_Defaults(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "shapecalc", cfg.App.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"html", "json"}, cfg.Output.Formats)
	assert.Equal(t, dto.DefaultShapes(), cfg.Shapes)
}

func Test_Load_EnvOverrides(t *testing.T) {
	t.Setenv("SHAPECALC_LOG_LEVEL", "debug")
	t.Setenv("SHAPECALC_OUTPUT_FORMATS", "json")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"json"}, cfg.Output.Formats)
}

func Test_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.yaml")
	content := `
log:
  format: console
output:
  formats: [json]
shapes:
  - kind: square
    side: 3
  - kind: sphere
    radius: 1.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"json"}, cfg.Output.Formats)
	assert.Equal(t, []dto.ShapeSpec{
		{Kind: "square", Side: 3},
		{Kind: "sphere", Radius: 1.5},
	}, cfg.Shapes)
}

func Test_LoadFile_Missing(t *testing.T) {
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
