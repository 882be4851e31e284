package report

import (
	"encoding/json"
	"io"

	"github.com/haukened/urlrisk/internal/urlrisk/domain"
)

// JSONReport is the JSON document shape. It is also the HTTP response body.
type JSONReport struct {
	URL        string           `json:"url"`
	Apex       string           `json:"apex,omitempty"`
	Suspicious bool             `json:"suspicious"`
	Verdict    string           `json:"verdict"`
	Warnings   []domain.Warning `json:"warnings"`
}

// NewJSONReport builds the JSON view of r.
func NewJSONReport(r domain.EvaluationResult) JSONReport {
	warnings := r.Warnings
	if warnings == nil {
		warnings = []domain.Warning{}
	}
	return JSONReport{
		URL:        r.URL,
		Apex:       apexOf(r),
		Suspicious: r.Suspicious,
		Verdict:    verdictLine(r),
		Warnings:   warnings,
	}
}

// JSONWriter outputs one JSON document per result.
type JSONWriter struct {
	baseWriter
	indent string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint indents output by two spaces.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) { w.indent = "  " }
}

// NewJSONWriter creates a JSONWriter; output is compact unless an option
// says otherwise.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write renders r followed by a newline.
func (w *JSONWriter) Write(r domain.EvaluationResult) error {
	enc := json.NewEncoder(w.output)
	if w.indent != "" {
		enc.SetIndent("", w.indent)
	}
	return enc.Encode(NewJSONReport(r))
}
