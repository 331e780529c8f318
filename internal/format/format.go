// Package format renders a built set for non-interactive mode output.
package format

import (
	"encoding/json"
	"fmt"

	"github.com/setforge/setforge/internal/set"
)

// OutputFormat represents the format for non-interactive mode output
type OutputFormat string

const (
	// TextFormat is plain text output (default)
	TextFormat OutputFormat = "text"

	// JSONFormat is output wrapped in a JSON object
	JSONFormat OutputFormat = "json"
)

// IsValid checks if the output format is valid
func (f OutputFormat) IsValid() bool {
	return f == TextFormat || f == JSONFormat
}

// String returns the string representation of the output format
func (f OutputFormat) String() string {
	return string(f)
}

// Render formats the built set according to the specified format: the set
// literal for text, an {"items": [...]} object for json.
func Render(values []string, format OutputFormat) (string, error) {
	switch format {
	case TextFormat:
		return set.Literal(values), nil
	case JSONFormat:
		jsonData := map[string]any{
			"items": values,
		}
		jsonBytes, err := json.MarshalIndent(jsonData, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(jsonBytes), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}
