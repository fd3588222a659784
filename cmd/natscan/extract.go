package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/natscan/natscan/internal/config"
	"github.com/natscan/natscan/internal/database"
	"github.com/natscan/natscan/internal/extract"
	"github.com/natscan/natscan/internal/gazette"
	"github.com/natscan/natscan/internal/log"
	"github.com/natscan/natscan/internal/model"
	"github.com/natscan/natscan/internal/pipeline"
	"github.com/natscan/natscan/internal/report"
	"github.com/spf13/cobra"
)

// NewExtractCmd creates the extract command.
func NewExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract naturalisation records from gazette articles",
		Long: `Extract harvests gazette articles and extracts structured records.

Each article passes through the tagging pipeline:
- Normalization (markup stripping, header removal, line joining)
- Date matching by token shape
- Sequencing of the text between dates into name and address fields

Records that fail plausibility checks (digits in names, unparsable
dates, over-long or "formerly" addresses) are kept in a separate
rejected set.

Examples:
  # Harvest from the API and print the accepted records
  natscan extract --query "naturalisation" --api-key KEY

  # Read articles from a local JSON Lines file
  natscan extract --input articles.jsonl

  # Use a saved preset from the .natscan config file
  natscan extract --preset naturalisation --api-key KEY

  # Export the rejected set as CSV for review
  natscan extract --input articles.jsonl --rejected --csv -o rejected.csv

Configuration file (.natscan) example:
  apiKey: "your-api-key"
  presets:
    naturalisation:
      query: "naturalisation certificate"
      maxArticles: 5000`,
		Args: cobra.NoArgs,
		RunE: runExtractCmd,
	}

	// Input flags
	cmd.Flags().StringP("query", "q", "",
		"Search query for the bibliographic API")
	cmd.Flags().StringP("preset", "P", "",
		"Named query preset from the configuration file")
	cmd.Flags().StringP("api-key", "k", "",
		"API key for the bibliographic API (overrides the config file)")
	cmd.Flags().StringP("input", "i", "",
		"Local JSON Lines article file (skips the remote harvest)")

	// Harvest behavior flags
	cmd.Flags().IntP("page-size", "p", config.DefaultPageSize,
		"Number of results per API page")
	cmd.Flags().IntP("max-articles", "n", config.DefaultMaxArticles,
		"Maximum number of articles to process (0 = all)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Connection timeout for each API request")
	cmd.Flags().DurationP("delay", "d", config.DefaultQueryDelay,
		"Politeness delay between API page requests")
	cmd.Flags().BoolP("no-cache", "N", false,
		"Disable the response cache")

	// Processing flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of articles tagged concurrently")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .natscan in current or home directory)")

	// Report flags
	cmd.Flags().Bool("csv", false,
		"Output CSV (mutually exclusive with --json and --markdown)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --csv and --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --csv and --json)")
	cmd.Flags().BoolP("rejected", "r", false,
		"Export the rejected record set instead of the accepted set")
	cmd.Flags().StringP("output", "o", "",
		"Write output to specified file path (creates directories if needed)")

	return cmd
}

// runExtractCmd executes the extract command.
func runExtractCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging. Article text attrs are clipped so a
	// noisy OCR article cannot flood the log.
	logger := log.NewClipLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runExtract(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Query, err = cmd.Flags().GetString("query")
	if err != nil {
		return nil, err
	}

	cfg.APIKey, err = cmd.Flags().GetString("api-key")
	if err != nil {
		return nil, err
	}

	cfg.InputPath, err = cmd.Flags().GetString("input")
	if err != nil {
		return nil, err
	}

	cfg.PageSize, err = cmd.Flags().GetInt("page-size")
	if err != nil {
		return nil, err
	}

	cfg.MaxArticles, err = cmd.Flags().GetInt("max-articles")
	if err != nil {
		return nil, err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.QueryDelay, err = cmd.Flags().GetDuration("delay")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return nil, err
	}
	if noCache {
		cfg.CacheDir = ""
	}

	cfg.CSVReport, err = cmd.Flags().GetBool("csv")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.Rejected, err = cmd.Flags().GetBool("rejected")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	if err := loadFileConfig(cmd, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFileConfig merges the .natscan file and the selected preset into
// the config. An explicitly given config path must exist; the implicit
// search tolerates absence.
func loadFileConfig(cmd *cobra.Command, cfg *config.Config) error {
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Presets = file

		// A key on the command line wins over the file's key.
		if cfg.APIKey == "" {
			cfg.APIKey = file.APIKey
		}
	} else if explicitConfigPath {
		return fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.Presets = &config.File{Presets: make(map[string]config.Preset)}
	}

	presetName, err := cmd.Flags().GetString("preset")
	if err != nil {
		return err
	}
	if presetName == "" {
		return nil
	}

	preset, ok := cfg.Presets.GetPreset(presetName)
	if !ok {
		return fmt.Errorf("preset not found in configuration file: %s", presetName)
	}

	cfg.Query = preset.Query
	if preset.PageSize > 0 {
		cfg.PageSize = preset.PageSize
	}
	if preset.MaxArticles > 0 {
		cfg.MaxArticles = preset.MaxArticles
	}

	return nil
}

// runExtract executes the extraction.
func runExtract(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting extraction",
		"query", cfg.Query,
		"input", cfg.InputPath,
		"batchSize", cfg.BatchSize,
		"rejected", cfg.Rejected,
	)

	// Open the cache/records database unless caching is disabled.
	var db *database.HarvestDB
	if cfg.CacheDir != "" {
		var err error
		db, err = database.Open(cfg.CacheDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Info("database opened", "dir", cfg.CacheDir)
	}

	articles, err := loadArticles(ctx, cfg, db, logger)
	if err != nil {
		return err
	}
	if len(articles) == 0 {
		fmt.Println("No articles to process.")
		return nil
	}

	fmt.Printf("Processing %d articles (concurrency: %d)...\n", len(articles), cfg.BatchSize)
	startTime := time.Now()

	// Tag every article through the pipeline.
	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(pipeline.DefaultSteps()...)

	bp := pipeline.NewBatchProcessor(p,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	articleErrs, err := bp.Process(ctx, articles)
	if err != nil {
		return err
	}
	for _, ae := range articleErrs {
		logger.Warn("article skipped", "articleID", ae.ArticleID, "error", ae.Err)
	}

	// Walk the tag streams into records and split them by plausibility.
	records := extract.NewExtractor().Extract(articles)
	accepted, rejected := extract.NewValidator().Partition(records)

	elapsed := time.Since(startTime)
	fmt.Printf("Extraction completed in %s: %d accepted, %d rejected\n\n",
		elapsed.Round(time.Millisecond), len(accepted), len(rejected))

	if db != nil {
		if err := db.SaveRecords(ctx, records); err != nil {
			logger.Error("failed to save records", "error", err)
		}
	}

	exported := accepted
	if cfg.Rejected {
		exported = rejected
	}

	return outputTable(cfg, model.NewTable(exported))
}

// loadArticles reads articles from the local file or harvests them from
// the API.
func loadArticles(ctx context.Context, cfg *config.Config, db *database.HarvestDB, logger *slog.Logger) ([]*model.Article, error) {
	if cfg.InputPath != "" {
		articles, err := gazette.ReadArticleFile(cfg.InputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		if cfg.MaxArticles > 0 && len(articles) > cfg.MaxArticles {
			articles = articles[:cfg.MaxArticles]
		}
		logger.Info("articles loaded", "path", cfg.InputPath, "count", len(articles))
		return articles, nil
	}

	opts := []gazette.ClientOption{
		gazette.WithUserAgent(cfg.UserAgent),
		gazette.WithPageSize(cfg.PageSize),
		gazette.WithDelay(cfg.QueryDelay),
		gazette.WithMaxBodySize(cfg.MaxBodySize),
		gazette.WithLogger(logger),
	}
	if db != nil {
		opts = append(opts, gazette.WithCache(db))
	}

	client := gazette.NewClient(&http.Client{Timeout: cfg.Timeout}, cfg.APIKey, opts...)

	fmt.Printf("Harvesting articles for query %q...\n", cfg.Query)
	articles, err := client.Harvest(ctx, cfg.Query, cfg.MaxArticles)
	if err != nil {
		return nil, fmt.Errorf("harvest failed: %w", err)
	}

	logger.Info("articles harvested", "query", cfg.Query, "count", len(articles))
	return articles, nil
}

// outputTable writes the table in the requested format.
func outputTable(cfg *config.Config, table *model.Table) error {
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var w report.Writer
	switch {
	case cfg.CSVReport:
		w = report.NewCSVWriter(output)
	case cfg.JSONReport:
		w = report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		title := "Naturalisation Records"
		if cfg.Rejected {
			title = "Rejected Records"
		}
		w = report.NewMarkdownWriter(output, report.WithTitle(title))
	default:
		w = report.NewSimpleWriter(output)
	}

	_, err := w.Write(table)
	return err
}
