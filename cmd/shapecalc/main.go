// Package main is the entry point for the shape calculator.
// It aggregates the total area and volume of a shape collection and
// prints the result as an HTML table and as JSON.
//
// 12-Factor App compilance:
//   - III. Config: Configuration via environment variables
//   - XI. Logs: Structured logging to stderr
//
// Usage:
//
//	go run ./cmd/shapecalc
//
// Environment Variables:
//
//	SHAPECALC_LOG_LEVEL      - Minimum log level (default: info)
//	SHAPECALC_LOG_FORMAT     - Log encoding, json or console (default: json)
//	SHAPECALC_OUTPUT_FORMATS - Renderers to run (default: "html json")
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hapkiduki/shapecalc/internal/application/dto"
	"github.com/hapkiduki/shapecalc/internal/application/port"
	"github.com/hapkiduki/shapecalc/internal/application/usecase"
	"github.com/hapkiduki/shapecalc/internal/infrastructure/config"
	"github.com/hapkiduki/shapecalc/internal/infrastructure/logging"
	"github.com/hapkiduki/shapecalc/internal/interfaces/render"
	"github.com/hapkiduki/shapecalc/pkg/logger"
)

// version is set at build time via ldflags
var version = "dev"

// labels prefixes each rendered format on stdout.
var labels = map[string]string{
	render.FormatHTML: "htm",
	render.FormatJSON: "jsn",
}

func main() {
	cfg := config.MustLoad()

	log := logger.MustNew(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.App.Environment == "development",
	})
	defer log.Sync()

	log.Info("Starting shape calculator",
		"version", version,
		"environment", cfg.App.Environment,
	)

	if err := run(context.Background(), cfg, logging.NewAdapter(log.Named("calculator")), os.Stdout); err != nil {
		log.Fatal("Calculation failed", "error", err)
	}
}

// run maps the configured shapes, aggregates them and writes every
// configured format to out.
func run(ctx context.Context, cfg *config.Config, log port.Logger, out io.Writer) error {
	renderers := make([]port.Renderer, 0, len(cfg.Output.Formats))
	for _, name := range cfg.Output.Formats {
		r, err := render.ForFormat(name)
		if err != nil {
			return err
		}
		renderers = append(renderers, r)
	}

	shapes, verrs, err := dto.ToEntities(cfg.Shapes)
	if err != nil {
		log.Error("Invalid shape configuration", "validation_errors", verrs)
		return err
	}

	for _, c := range usecase.Capabilities(shapes) {
		log.Debug("Shape capabilities",
			"index", c.Index,
			"kind", c.Kind,
			"is_shape", c.IsShape,
			"is_solid", c.IsSolid,
		)
	}

	result, err := usecase.NewCalculateTotals(log).Execute(ctx, shapes)
	if err != nil {
		return err
	}

	for _, r := range renderers {
		if _, err := fmt.Fprintf(out, "%s: ", labels[r.Format()]); err != nil {
			return err
		}
		if err := r.Render(out, result); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}

	return nil
}
