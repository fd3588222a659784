package report

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/natscan/natscan/internal/model"
)

// SimpleWriter outputs human-readable aligned text tables.
// This format is designed for terminal display.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
//
// Column widths are computed with display width, not byte length, so
// names and addresses with non-ASCII characters stay aligned.
type SimpleWriter struct {
	baseWriter

	// header controls whether the column header row is written.
	header bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithoutSimpleHeader suppresses the column header row.
func WithoutSimpleHeader() SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.header = false
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		header:     true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the table as aligned plain text.
func (w *SimpleWriter) Write(table *model.Table) (int, error) {
	var sb strings.Builder

	if table.Len() == 0 {
		sb.WriteString("No records extracted.\n")
		return io.WriteString(w.output, sb.String())
	}

	lines := make([][]string, 0, table.Len()+1)
	if w.header {
		lines = append(lines, model.Columns)
	}
	for _, row := range table.Rows {
		lines = append(lines, row.Fields())
	}

	widths := columnWidths(lines)

	for i, fields := range lines {
		writeAligned(&sb, fields, widths)
		if w.header && i == 0 {
			writeRule(&sb, widths)
		}
	}

	return io.WriteString(w.output, sb.String())
}

// columnWidths returns the display width of the widest cell per column.
func columnWidths(lines [][]string) []int {
	widths := make([]int, len(model.Columns))
	for _, fields := range lines {
		for i, field := range fields {
			if w := runewidth.StringWidth(field); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// writeAligned writes one row with columns padded to their widths.
// The last column is not padded to avoid trailing spaces.
func writeAligned(sb *strings.Builder, fields []string, widths []int) {
	for i, field := range fields {
		if i == len(fields)-1 {
			sb.WriteString(field)
			break
		}
		sb.WriteString(runewidth.FillRight(field, widths[i]))
		sb.WriteString("  ")
	}
	sb.WriteString("\n")
}

// writeRule writes the separator line under the header.
func writeRule(sb *strings.Builder, widths []int) {
	for i, width := range widths {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(strings.Repeat("-", width))
	}
	sb.WriteString("\n")
}
