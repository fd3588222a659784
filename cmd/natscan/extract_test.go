package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/natscan/natscan/internal/config"
)

// TestNewExtractCmd tests the extract command creation.
func TestNewExtractCmd(t *testing.T) {
	t.Parallel()

	cmd := NewExtractCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "extract" {
			t.Errorf("expected use 'extract', got %q", cmd.Use)
		}
	})

	t.Run("has expected flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{
			"query", "preset", "api-key", "input",
			"page-size", "max-articles", "timeout", "delay", "no-cache",
			"batch", "config", "csv", "json", "markdown", "rejected", "output",
		} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %s flag", name)
			}
		}
	})

	t.Run("flag defaults match config defaults", func(t *testing.T) {
		t.Parallel()

		pageSize, err := cmd.Flags().GetInt("page-size")
		if err != nil {
			t.Fatal(err)
		}
		if pageSize != config.DefaultPageSize {
			t.Errorf("page-size default = %d, want %d", pageSize, config.DefaultPageSize)
		}

		batch, err := cmd.Flags().GetInt("batch")
		if err != nil {
			t.Fatal(err)
		}
		if batch != config.DefaultBatchSize {
			t.Errorf("batch default = %d, want %d", batch, config.DefaultBatchSize)
		}
	})
}

// TestBuildConfig tests flag-to-config mapping.
func TestBuildConfig(t *testing.T) {
	t.Run("maps flags to config", func(t *testing.T) {
		cmd := NewExtractCmd()
		if err := cmd.ParseFlags([]string{
			"--query", "naturalisation",
			"--api-key", "test-key",
			"--page-size", "50",
			"--max-articles", "200",
			"--batch", "4",
			"--delay", "500ms",
			"--rejected",
			"--csv",
			"--output", "out.csv",
		}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatal(err)
		}

		if cfg.Query != "naturalisation" {
			t.Errorf("Query = %q, want %q", cfg.Query, "naturalisation")
		}
		if cfg.APIKey != "test-key" {
			t.Errorf("APIKey = %q, want %q", cfg.APIKey, "test-key")
		}
		if cfg.PageSize != 50 {
			t.Errorf("PageSize = %d, want 50", cfg.PageSize)
		}
		if cfg.MaxArticles != 200 {
			t.Errorf("MaxArticles = %d, want 200", cfg.MaxArticles)
		}
		if cfg.BatchSize != 4 {
			t.Errorf("BatchSize = %d, want 4", cfg.BatchSize)
		}
		if cfg.QueryDelay != 500*time.Millisecond {
			t.Errorf("QueryDelay = %v, want 500ms", cfg.QueryDelay)
		}
		if !cfg.Rejected {
			t.Error("Rejected = false, want true")
		}
		if !cfg.CSVReport {
			t.Error("CSVReport = false, want true")
		}
		if cfg.ReportFile != "out.csv" {
			t.Errorf("ReportFile = %q, want %q", cfg.ReportFile, "out.csv")
		}
	})

	t.Run("no-cache clears cache dir", func(t *testing.T) {
		cmd := NewExtractCmd()
		if err := cmd.ParseFlags([]string{"--no-cache"}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.CacheDir != "" {
			t.Errorf("CacheDir = %q, want empty", cfg.CacheDir)
		}
	})

	t.Run("explicit missing config file fails", func(t *testing.T) {
		cmd := NewExtractCmd()
		if err := cmd.ParseFlags([]string{
			"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		}); err != nil {
			t.Fatal(err)
		}

		if _, err := buildConfig(cmd); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("preset fills query and overrides", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), ".natscan")
		content := `apiKey: "file-key"
presets:
  nat:
    query: "naturalisation certificate"
    pageSize: 25
    maxArticles: 100
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewExtractCmd()
		if err := cmd.ParseFlags([]string{
			"--config", configPath,
			"--preset", "nat",
		}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatal(err)
		}

		if cfg.Query != "naturalisation certificate" {
			t.Errorf("Query = %q, want preset query", cfg.Query)
		}
		if cfg.PageSize != 25 {
			t.Errorf("PageSize = %d, want 25", cfg.PageSize)
		}
		if cfg.MaxArticles != 100 {
			t.Errorf("MaxArticles = %d, want 100", cfg.MaxArticles)
		}
		if cfg.APIKey != "file-key" {
			t.Errorf("APIKey = %q, want file key", cfg.APIKey)
		}
	})

	t.Run("flag api key wins over file key", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), ".natscan")
		if err := os.WriteFile(configPath, []byte(`apiKey: "file-key"`), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewExtractCmd()
		if err := cmd.ParseFlags([]string{
			"--config", configPath,
			"--api-key", "flag-key",
		}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.APIKey != "flag-key" {
			t.Errorf("APIKey = %q, want %q", cfg.APIKey, "flag-key")
		}
	})

	t.Run("unknown preset fails", func(t *testing.T) {
		cmd := NewExtractCmd()
		if err := cmd.ParseFlags([]string{"--preset", "nope"}); err != nil {
			t.Fatal(err)
		}

		if _, err := buildConfig(cmd); err == nil {
			t.Error("expected error for unknown preset")
		}
	})
}

// TestExtractEndToEnd runs the extract command against a local input
// file and checks the CSV output.
func TestExtractEndToEnd(t *testing.T) {
	tmpDir := t.TempDir()

	inputPath := filepath.Join(tmpDir, "articles.jsonl")
	input := `{"id":"1001","articleText":"Smith, John, 12 Main St, 15.12.66 Jones, Mary, 4 High St, 1.2.67"}` + "\n"
	if err := os.WriteFile(inputPath, []byte(input), 0600); err != nil {
		t.Fatal(err)
	}

	outputPath := filepath.Join(tmpDir, "out.csv")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{
		"extract",
		"--input", inputPath,
		"--no-cache",
		"--csv",
		"--output", outputPath,
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 records:\n%s", len(lines), content)
	}
	if lines[0] != "id,first,last,address,date,datestring" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Smith") || !strings.Contains(lines[1], "1966-12-15") {
		t.Errorf("first record = %q", lines[1])
	}
	if !strings.Contains(lines[2], "Jones") || !strings.Contains(lines[2], "1967-02-01") {
		t.Errorf("second record = %q", lines[2])
	}
}
