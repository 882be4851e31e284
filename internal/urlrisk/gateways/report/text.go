package report

import (
	"bufio"
	"io"

	"github.com/haukened/urlrisk/internal/urlrisk/domain"
)

// TextWriter prints the verdict followed by one " - <warning>" line per
// warning, in rule order.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write renders r.
func (w *TextWriter) Write(r domain.EvaluationResult) error {
	bw := bufio.NewWriter(w.output)
	bw.WriteString(verdictLine(r))
	bw.WriteByte('\n')
	for _, warning := range r.Warnings {
		bw.WriteString(" - ")
		bw.WriteString(warning.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
