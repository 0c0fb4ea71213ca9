// Package config provides configuration management for the application.
// It follows the 12-Factor App methodology by loading configuration
// from environment variables and supporting external configuration files.
//
// 12-Factor App Compilance:
//   - III. Config: Store config in the environment
//   - Configuration is loaded from environment variables
//   - An optional config file may override the default shape set
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/hapkiduki/shapecalc/internal/application/dto"
)

// Config holds all application configuration.
// All fields are populated from environment variables or config files.
type Config struct {
	// App contains application-level configuration
	App AppConfig `mapstructure:"app"`

	// Log contains logger configuration
	Log LogConfig `mapstructure:"log"`

	// Output contains result rendering configuration
	Output OutputConfig `mapstructure:"output"`

	// Shapes is the collection to aggregate
	Shapes []dto.ShapeSpec `mapstructure:"shapes"`
}

// AppConfig contains application-level configuration.
type AppConfig struct {
	// Name of the application
	Name string `mapstructure:"name"`

	// Environment the application is running in (e.g., development, production)
	Environment string `mapstructure:"environment"`

	// Version of the application
	Version string `mapstructure:"version"`
}

// LogConfig contains logger configuration.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format is the log encoding (json, console)
	Format string `mapstructure:"format"`
}

// OutputConfig contains result rendering configuration.
type OutputConfig struct {
	// Formats lists the renderers to run, in order (json, html)
	Formats []string `mapstructure:"formats"`
}

// Load loads the configuration from environment variables and config files.
// It follows this precedence (higest to lowest):
//  1. Environment variables
//  2. Config file (if found)
//  3. Default values
//
// Returns:
//   - *Config: The loaded configuration
//   - error: Any error encountered during loading
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/shapecalc")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use env vars and defaults
	}

	return unmarshal(v)
}

// LoadFile loads the configuration from an explicit config file.
//
// Parameters:
//   - path: path to a yaml, json or toml file
//
// Returns:
//   - *Config: The loaded configuration
//   - error: Any error encountered during loading
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return unmarshal(v)
}

// MustLoad loads the configuration and panics on error.
// Use this in application entry points where configuration is required.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SHAPECALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Env vars arrive as a single space-separated string.
	if len(cfg.Output.Formats) == 1 {
		cfg.Output.Formats = strings.FieldsFunc(cfg.Output.Formats[0], func(r rune) bool {
			return r == ',' || r == ' '
		})
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "shapecalc")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "1.0.0")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Output defaults
	v.SetDefault("output.formats", []string{"html", "json"})

	// Shape defaults
	specs := dto.DefaultShapes()
	shapes := make([]map[string]any, len(specs))
	for i, s := range specs {
		shapes[i] = map[string]any{
			"kind":   s.Kind,
			"side":   s.Side,
			"radius": s.Radius,
			"length": s.Length,
			"width":  s.Width,
		}
	}
	v.SetDefault("shapes", shapes)
}
