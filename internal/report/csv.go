package report

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/natscan/natscan/internal/model"
)

// CSVWriter outputs tables in CSV format with a header row.
// This format is designed for spreadsheet import and downstream scripts.
//
// Design decision: We use standard encoding/csv rather than a third-party
// CSV library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. RFC 4180 quoting handles commas inside address fields
// 3. It's sufficient for our needs
type CSVWriter struct {
	baseWriter

	// comma is the field delimiter.
	comma rune

	// header controls whether the column header row is written.
	header bool
}

// CSVWriterOption configures a CSVWriter.
type CSVWriterOption func(*CSVWriter)

// WithComma sets the field delimiter.
func WithComma(comma rune) CSVWriterOption {
	return func(w *CSVWriter) {
		w.comma = comma
	}
}

// WithoutHeader suppresses the column header row.
func WithoutHeader() CSVWriterOption {
	return func(w *CSVWriter) {
		w.header = false
	}
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer, opts ...CSVWriterOption) *CSVWriter {
	w := &CSVWriter{
		baseWriter: newBaseWriter(output),
		comma:      ',',
		header:     true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the table in CSV format.
func (w *CSVWriter) Write(table *model.Table) (int, error) {
	var buf bytes.Buffer

	cw := csv.NewWriter(&buf)
	cw.Comma = w.comma

	if w.header {
		if err := cw.Write(model.Columns); err != nil {
			return 0, err
		}
	}

	for _, row := range table.Rows {
		if err := cw.Write(row.Fields()); err != nil {
			return 0, err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}
