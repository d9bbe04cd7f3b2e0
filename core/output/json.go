// Package output - JSON formatter
package output

import (
	"encoding/json"
	"io"

	"saas-cost/core/engine"
	"saas-cost/internal/errors"
)

// JSONFormatter renders the report as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the report as JSON
func (f *JSONFormatter) Render(w io.Writer, report *engine.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return errors.Internal("failed to encode report", err)
	}
	return nil
}
