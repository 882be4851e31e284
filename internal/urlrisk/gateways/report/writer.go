// Package report renders evaluation results for people and tools.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/haukened/urlrisk/internal/urlrisk/domain"
)

// Format names an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ErrUnknownFormat is returned by NewWriter for unsupported formats.
var ErrUnknownFormat = errors.New("unknown report format")

// Writer renders one evaluation result.
type Writer interface {
	Write(result domain.EvaluationResult) error
}

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatMarkdown}
}

// ParseFormat maps a case-insensitive name ("md" is accepted for markdown)
// to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// NewWriter returns the Writer for format.
func NewWriter(format Format, output io.Writer) (Writer, error) {
	switch format {
	case FormatText:
		return NewTextWriter(output), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// baseWriter holds the output destination shared by all writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// verdictLine is the one-line conclusion used by every format.
func verdictLine(r domain.EvaluationResult) string {
	if r.Suspicious {
		return "URL is not safe for further visit and contains phishing indicators."
	}
	return "URL is safe for further visit."
}

// apexOf reports the registrable domain of the evaluated URL.
func apexOf(r domain.EvaluationResult) string {
	return domain.ParseURL(r.URL).Apex
}
