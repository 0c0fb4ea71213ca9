// Package render provides presentation adapters for aggregate results.
// Each renderer implements port.Renderer and is deterministic for a given result.
package render

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/hapkiduki/shapecalc/internal/application/port"
	"github.com/hapkiduki/shapecalc/internal/domain/valueobject"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatHTML = "html"
)

// ErrUnknownFormat is returned when no renderer exists for a format name.
var ErrUnknownFormat = errors.New("unknown output format")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONRenderer renders a result as a single-line JSON object.
type JSONRenderer struct{}

// Format implements port.Renderer.
func (JSONRenderer) Format() string { return FormatJSON }

// Render implements port.Renderer.
func (JSONRenderer) Render(w io.Writer, result valueobject.AggregateResult) error {
	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = w.Write(b)
	return err
}

var tableTemplate = template.Must(template.New("table").Parse(
	`<table>
<thead>
<tr><th>Total Area</th><th>Total Volume</th></tr>
</thead>
<tbody>
<tr><td>{{.Area}}</td><td>{{.Volume}}</td></tr>
</tbody>
</table>`))

// HTMLRenderer renders a result as a two-column HTML table.
type HTMLRenderer struct{}

// Format implements port.Renderer.
func (HTMLRenderer) Format() string { return FormatHTML }

// Render implements port.Renderer.
func (HTMLRenderer) Render(w io.Writer, result valueobject.AggregateResult) error {
	if err := tableTemplate.Execute(w, result); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// ForFormat returns the renderer for a format name.
//
// Parameters:
//   - name: format name, case-insensitive
//
// Returns:
//   - port.Renderer: the matching renderer
//   - error: ErrUnknownFormat if no renderer matches
func ForFormat(name string) (port.Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatJSON:
		return JSONRenderer{}, nil
	case FormatHTML:
		return HTMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}
