package pipeline

import (
	"context"
	"errors"

	"github.com/natscan/natscan/internal/extract"
	"github.com/natscan/natscan/internal/model"
)

// ErrEmptyArticle is returned when an article normalizes to nothing.
// Later stages would silently produce no tags anyway; failing the
// article here makes the empty input visible in the batch error list.
var ErrEmptyArticle = errors.New("article has no text after normalization")

// NormalizeStep populates Article.NormalizedText from the raw text.
type NormalizeStep struct {
	normalizer *extract.Normalizer
}

// NewNormalizeStep creates the normalization step.
func NewNormalizeStep(normalizer *extract.Normalizer) *NormalizeStep {
	return &NormalizeStep{normalizer: normalizer}
}

// Name returns the step name.
func (s *NormalizeStep) Name() string {
	return "normalize"
}

// Do strips markup and header boilerplate from the article.
func (s *NormalizeStep) Do(_ context.Context, article *model.Article) error {
	article.NormalizedText = s.normalizer.Normalize(article.RawText)
	if article.NormalizedText == "" {
		return ErrEmptyArticle
	}
	return nil
}

// DateMatchStep finds DATE tags in the normalized text. The matcher's
// rule table is read-only after construction, so one step instance is
// safe to share across workers.
type DateMatchStep struct {
	matcher *extract.DateMatcher
}

// NewDateMatchStep creates the date matching step.
func NewDateMatchStep(matcher *extract.DateMatcher) *DateMatchStep {
	return &DateMatchStep{matcher: matcher}
}

// Name returns the step name.
func (s *DateMatchStep) Name() string {
	return "date_match"
}

// Do emits DATE tags into the article. An article with no date-shaped
// text gets no tags and no error; it simply yields no records later.
func (s *DateMatchStep) Do(_ context.Context, article *model.Article) error {
	article.AddTags(s.matcher.Match(article.NormalizedText)...)
	return nil
}

// SequenceStep splits the text between DATE tags into name and address
// tags and leaves the article's tags sorted by offset, ready for
// record extraction.
type SequenceStep struct {
	sequencer *extract.Sequencer
}

// NewSequenceStep creates the tag sequencing step.
func NewSequenceStep(sequencer *extract.Sequencer) *SequenceStep {
	return &SequenceStep{sequencer: sequencer}
}

// Name returns the step name.
func (s *SequenceStep) Name() string {
	return "sequence"
}

// Do emits LASTNAME/FIRSTNAME/ADDR tags into the article.
func (s *SequenceStep) Do(_ context.Context, article *model.Article) error {
	dates := article.TagsOfKind(model.TagDate)
	article.AddTags(s.sequencer.Sequence(article.NormalizedText, dates)...)
	article.SortTags()
	return nil
}

// DefaultSteps returns the standard per-article stage sequence.
func DefaultSteps() []Step {
	return []Step{
		NewNormalizeStep(extract.NewNormalizer()),
		NewDateMatchStep(extract.NewDateMatcher()),
		NewSequenceStep(extract.NewSequencer()),
	}
}
