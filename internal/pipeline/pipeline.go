package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/natscan/natscan/internal/model"
)

// Step defines the interface that all pipeline stages implement.
// Steps are executed in sequence, each receiving the article as
// populated by the previous steps.
type Step interface {
	// Do executes the stage over the article. It receives the context
	// for cancellation and the article to populate. Returns an error
	// only for failures that make later stages meaningless for this
	// article.
	Do(ctx context.Context, article *model.Article) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of the per-article steps.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, the default logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added with AddSteps after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddSteps appends steps to the pipeline. Steps run in the order they
// are added.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps over one article in sequence.
// Cancellation is checked before each step; steps themselves are
// CPU-bound and short, so they do not observe the context internally.
// The first step error aborts the article and is returned wrapped with
// the step name; the article's fields populated so far remain valid.
func (p *Pipeline) Execute(ctx context.Context, article *model.Article) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"article", article.ID,
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"article", article.ID,
		)

		if err := step.Do(ctx, article); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"article", article.ID,
				"error", err,
			)
			return fmt.Errorf("step %s: %w", step.Name(), err)
		}
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
