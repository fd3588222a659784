package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultPageSize is the number of articles requested per API page.
	// 100 is the largest page the bibliographic API serves; fewer pages
	// means fewer round trips on bulk harvests.
	DefaultPageSize = 100

	// DefaultTimeout is the connection timeout per API request. The
	// digitized-newspaper service can be slow on deep result pages, so
	// the value is generous.
	DefaultTimeout = 60 * time.Second

	// DefaultBatchSize is the number of articles tagged concurrently.
	// Tagging is CPU-bound, so a modest pool saturates most machines
	// without drowning the scheduler.
	DefaultBatchSize = 8

	// DefaultMaxArticles caps a harvest run. 0 means no cap; the flag
	// exists so exploratory runs can stop early.
	DefaultMaxArticles = 0

	// DefaultQueryDelay is the politeness delay between API page
	// requests.
	DefaultQueryDelay = 1 * time.Second

	// DefaultMaxBodySize limits the API response body size. Result
	// pages are JSON and stay well under this; the cap only guards
	// against a misbehaving endpoint.
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB

	// DefaultUserAgent identifies natscan in API requests.
	DefaultUserAgent = "natscan/1.0 (+https://github.com/natscan/natscan)"

	// AppName is the application name used for XDG directory paths.
	AppName = "natscan"
)

// Config holds all configuration options for natscan.
type Config struct {
	// Query is the search query sent to the bibliographic API when
	// harvesting remote articles. Empty when reading a local input file.
	Query string

	// APIKey authenticates against the bibliographic API. Required for
	// remote harvests; unused for local input.
	APIKey string

	// InputPath is a local JSONL file of {id, articleText} items.
	// When set, no remote query is made.
	InputPath string

	// PageSize is the number of results requested per API page.
	PageSize int

	// MaxArticles caps the number of articles processed. 0 means all.
	MaxArticles int

	// BatchSize is the number of articles tagged concurrently.
	BatchSize int

	// Timeout is the per-request connection timeout for API calls.
	Timeout time.Duration

	// QueryDelay is the delay between successive API page requests.
	QueryDelay time.Duration

	// MaxBodySize is the maximum API response body size in bytes.
	// 0 means the default limit.
	MaxBodySize int64

	// UserAgent is the User-Agent header sent with API requests.
	UserAgent string

	// CacheDir is the directory holding the response cache database.
	// Empty disables caching.
	CacheDir string

	// Verbose enables debug-level log output.
	Verbose bool

	// CSVReport enables CSV output. Mutually exclusive with JSONReport
	// and MarkdownReport; the default is the human-readable table.
	CSVReport bool

	// JSONReport enables JSON output.
	JSONReport bool

	// MarkdownReport enables Markdown output.
	MarkdownReport bool

	// Rejected switches the export target to the rejected record set.
	// The accepted set is the default export target.
	Rejected bool

	// ReportFile is the output file path. Empty writes to stdout.
	ReportFile string

	// ConfigFilePath is the path of the .natscan file. Empty triggers
	// the search in the current and home directories.
	ConfigFilePath string

	// Presets holds saved query presets loaded from the config file.
	Presets *File
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		PageSize:    DefaultPageSize,
		MaxArticles: DefaultMaxArticles,
		BatchSize:   DefaultBatchSize,
		Timeout:     DefaultTimeout,
		QueryDelay:  DefaultQueryDelay,
		MaxBodySize: DefaultMaxBodySize,
		UserAgent:   DefaultUserAgent,
		CacheDir:    XDGCacheDir(),
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Query == "" && c.InputPath == "" {
		return ErrNoInput
	}

	if c.Query != "" && c.APIKey == "" {
		return ErrMissingAPIKey
	}

	if c.PageSize < 1 {
		return ErrInvalidPageSize
	}

	if c.MaxArticles < 0 {
		return ErrInvalidMaxArticles
	}

	if c.BatchSize < 1 {
		return ErrInvalidBatchSize
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.QueryDelay < 0 {
		return ErrInvalidQueryDelay
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	if countReportFormats(c) > 1 {
		return ErrConflictingReportFormats
	}

	return nil
}

// countReportFormats counts the mutually exclusive format flags set.
func countReportFormats(c *Config) int {
	n := 0
	for _, set := range []bool{c.CSVReport, c.JSONReport, c.MarkdownReport} {
		if set {
			n++
		}
	}
	return n
}

// XDGCacheDir returns the XDG cache directory for natscan.
// On Linux: ~/.cache/natscan.
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// XDGDataDir returns the XDG data directory for natscan.
// On Linux: ~/.local/share/natscan.
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}
