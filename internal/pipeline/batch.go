package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/natscan/natscan/internal/model"
)

// DefaultConcurrency is the default worker count for batch tagging.
const DefaultConcurrency = 8

// ArticleError records one article's failure during batch processing.
type ArticleError struct {
	// ArticleID identifies the failed article.
	ArticleID string

	// Err is the failure, wrapped with the failing step's name.
	Err error
}

// Error implements the error interface.
func (e ArticleError) Error() string {
	return fmt.Sprintf("article %s: %v", e.ArticleID, e.Err)
}

// Unwrap returns the underlying error.
func (e ArticleError) Unwrap() error {
	return e.Err
}

// BatchProcessor tags a collection of articles concurrently.
//
// Each worker owns its article exclusively, so per-article state needs
// no locking; only the shared error list is guarded. The pipeline's
// steps are read-only after construction and shared by all workers.
type BatchProcessor struct {
	// pipeline is the per-article stage sequence shared by workers.
	pipeline *Pipeline

	// concurrency is the maximum number of concurrent workers.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// errs collects per-article failures. Guarded by mu.
	errs []ArticleError
	mu   sync.Mutex
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent workers.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor running the given pipeline.
func NewBatchProcessor(p *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipeline:    p,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// Process tags every article in the collection, mutating the articles in
// place. Input order is preserved because articles are never reordered,
// only populated.
//
// A failing article is recorded and skipped; it never aborts the batch.
// The returned error is non-nil only when the batch itself was
// cancelled. The returned slice lists the per-article failures; articles
// tagged before a cancellation remain valid and reusable.
func (bp *BatchProcessor) Process(ctx context.Context, articles []*model.Article) ([]ArticleError, error) {
	bp.logger.Info("starting batch tagging",
		"total_articles", len(articles),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	bp.mu.Lock()
	bp.errs = nil
	bp.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for _, article := range articles {
		article := article
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if err := bp.pipeline.Execute(ctx, article); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				bp.recordError(ArticleError{ArticleID: article.ID, Err: err})
			}

			return nil
		})
	}

	err := g.Wait()

	bp.mu.Lock()
	errs := bp.errs
	bp.mu.Unlock()

	bp.logger.Info("batch tagging complete",
		"total_articles", len(articles),
		"failed_articles", len(errs),
		"duration", time.Since(startTime),
	)

	return errs, err
}

// recordError appends a failure to the shared error list.
func (bp *BatchProcessor) recordError(e ArticleError) {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	bp.errs = append(bp.errs, e)
}
