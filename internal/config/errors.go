package config

import "errors"

// Configuration validation errors.
// Package-level sentinel errors let callers use errors.Is while still
// carrying human-readable messages.
var (
	// ErrNoInput is returned when neither a query nor an input file is
	// specified.
	ErrNoInput = errors.New("no input: provide --query or --input")

	// ErrMissingAPIKey is returned when a remote query is requested
	// without an API key.
	ErrMissingAPIKey = errors.New("missing API key: remote queries require --api-key or the config file")

	// ErrInvalidPageSize is returned when the page size is not positive.
	ErrInvalidPageSize = errors.New("invalid page size: must be positive")

	// ErrInvalidMaxArticles is returned when the article cap is negative.
	// Use 0 for no cap.
	ErrInvalidMaxArticles = errors.New("invalid max articles: must be non-negative")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidQueryDelay is returned when the politeness delay is
	// negative. Use 0 for no delay.
	ErrInvalidQueryDelay = errors.New("invalid query delay: must be non-negative")

	// ErrInvalidMaxBodySize is returned when the max body size is
	// negative. Use 0 for the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrConflictingReportFormats is returned when more than one of
	// --csv, --json, and --markdown is specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: choose at most one of --csv, --json, --markdown")
)
