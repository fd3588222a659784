// Package report provides output writers for extracted record tables.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable aligned text for terminal display
//   - CSVWriter: Comma-separated values for spreadsheet import
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: Markdown tables for documentation and sharing
//
// Design decision: We separate report writing from the table data
// structures (which are in the model package) to follow the single
// responsibility principle. This allows adding new output formats
// without modifying the core data structures.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
