package report

import (
	"io"

	"github.com/nao1215/markdown"
	"github.com/natscan/natscan/internal/model"
)

// MarkdownWriter outputs tables in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter

	// title is the document heading.
	title string
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithTitle overrides the document heading.
func WithTitle(title string) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.title = title
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		title:      "Naturalisation Records",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the table in Markdown format.
func (w *MarkdownWriter) Write(table *model.Table) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(w.title)
	md.PlainText("")

	if table.Len() == 0 {
		md.PlainText("No records extracted.")
		md.PlainText("")
		return len(md.String()), md.Build()
	}

	rows := make([][]string, 0, table.Len())
	for _, row := range table.Rows {
		rows = append(rows, row.Fields())
	}

	md.Table(markdown.TableSet{
		Header: model.Columns,
		Rows:   rows,
	})
	md.PlainText("")
	md.PlainTextf("Total records: %d", table.Len())

	return len(md.String()), md.Build()
}
