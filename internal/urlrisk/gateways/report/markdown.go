package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/haukened/urlrisk/internal/urlrisk/domain"
)

// MarkdownWriter outputs a result as a small Markdown document, suitable
// for pasting into tickets.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write renders r.
func (w *MarkdownWriter) Write(r domain.EvaluationResult) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("URL Risk Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"URL", "`" + r.URL + "`"},
			{"Apex domain", orDash(apexOf(r))},
			{"Suspicious", strconv.FormatBool(r.Suspicious)},
			{"Warnings", strconv.Itoa(len(r.Warnings))},
		},
	})
	md.PlainText("")
	md.PlainText("**" + verdictLine(r) + "**")

	if len(r.Warnings) > 0 {
		md.PlainText("")
		md.H2("Warnings")
		md.PlainText("")
		items := make([]string, len(r.Warnings))
		for i, warning := range r.Warnings {
			items[i] = "`" + string(warning.Rule) + "` " + warning.Message
		}
		md.BulletList(items...)
	}
	md.PlainText("")

	return md.Build()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
