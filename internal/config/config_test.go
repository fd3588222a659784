package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestNewConfigDefaults verifies the default values.
func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.PageSize != DefaultPageSize {
		t.Errorf("PageSize = %d, expected %d", cfg.PageSize, DefaultPageSize)
	}
	if cfg.BatchSize != DefaultBatchSize {
		t.Errorf("BatchSize = %d, expected %d", cfg.BatchSize, DefaultBatchSize)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, expected %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.CacheDir == "" {
		t.Error("CacheDir should default to the XDG cache directory")
	}
}

// TestConfigValidate tests the validation rules.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := NewConfig()
		cfg.InputPath = "articles.jsonl"
		return cfg
	}

	testCases := []struct {
		name     string
		mutate   func(*Config)
		expected error
	}{
		{
			name:     "valid local input",
			mutate:   func(*Config) {},
			expected: nil,
		},
		{
			name: "valid remote query",
			mutate: func(c *Config) {
				c.InputPath = ""
				c.Query = "naturalisation"
				c.APIKey = "key"
			},
			expected: nil,
		},
		{
			name:     "no input at all",
			mutate:   func(c *Config) { c.InputPath = "" },
			expected: ErrNoInput,
		},
		{
			name: "query without API key",
			mutate: func(c *Config) {
				c.InputPath = ""
				c.Query = "naturalisation"
			},
			expected: ErrMissingAPIKey,
		},
		{
			name:     "zero page size",
			mutate:   func(c *Config) { c.PageSize = 0 },
			expected: ErrInvalidPageSize,
		},
		{
			name:     "negative max articles",
			mutate:   func(c *Config) { c.MaxArticles = -1 },
			expected: ErrInvalidMaxArticles,
		},
		{
			name:     "zero batch size",
			mutate:   func(c *Config) { c.BatchSize = 0 },
			expected: ErrInvalidBatchSize,
		},
		{
			name:     "zero timeout",
			mutate:   func(c *Config) { c.Timeout = 0 },
			expected: ErrInvalidTimeout,
		},
		{
			name:     "negative query delay",
			mutate:   func(c *Config) { c.QueryDelay = -1 },
			expected: ErrInvalidQueryDelay,
		},
		{
			name:     "negative max body size",
			mutate:   func(c *Config) { c.MaxBodySize = -1 },
			expected: ErrInvalidMaxBodySize,
		},
		{
			name: "conflicting report formats",
			mutate: func(c *Config) {
				c.CSVReport = true
				c.JSONReport = true
			},
			expected: ErrConflictingReportFormats,
		},
		{
			name: "single report format is fine",
			mutate: func(c *Config) {
				c.MarkdownReport = true
			},
			expected: nil,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tc.expected) {
				t.Errorf("Validate() = %v, expected %v", err, tc.expected)
			}
		})
	}
}

// TestLoadConfigFile tests YAML loading and the not-found sentinel.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := "apiKey: abc123\npresets:\n  naturalisation:\n    query: naturalization OR naturalisation\n    pageSize: 50\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		f, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("LoadConfigFile returned error: %v", err)
		}
		if f.APIKey != "abc123" {
			t.Errorf("APIKey = %q, expected %q", f.APIKey, "abc123")
		}

		preset, ok := f.GetPreset("naturalisation")
		if !ok {
			t.Fatal("preset not found")
		}
		if preset.PageSize != 50 {
			t.Errorf("preset page size = %d, expected 50", preset.PageSize)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("got %v, expected ErrConfigNotFound", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("apiKey: [broken"), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Fatal("expected error for invalid YAML")
		}
	})
}
