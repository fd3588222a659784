package model

import "sort"

// Article represents a single gazette article moving through the
// extraction pipeline.
//
// RawText holds the article exactly as retrieved, one markup-wrapped
// fragment per original line. NormalizedText and Tags are derived fields:
// each pipeline stage populates its field exactly once and no stage
// mutates a field written by an earlier stage.
type Article struct {
	// ID is the article identifier assigned by the upstream collection
	// (for remote articles, the digitized-newspaper article ID).
	ID string `json:"id"`

	// RawText is the article text as retrieved, markup included.
	RawText string `json:"raw_text"`

	// NormalizedText is the plain text produced by the normalizer:
	// markup stripped and the boilerplate header discarded.
	NormalizedText string `json:"normalized_text,omitempty"`

	// Tags are the labeled spans found in NormalizedText.
	// DATE tags are emitted before the surrounding name tags, so the
	// slice is not ordered by offset until SortTags is called.
	Tags []Tag `json:"tags,omitempty"`
}

// NewArticle creates an Article holding the given raw text.
func NewArticle(id, rawText string) *Article {
	return &Article{
		ID:      id,
		RawText: rawText,
	}
}

// AddTags appends tags to the article.
func (a *Article) AddTags(tags ...Tag) {
	a.Tags = append(a.Tags, tags...)
}

// SortTags orders the article's tags by start offset. Ties are broken by
// end offset so the ordering is deterministic. Grouping into records
// requires this ordering because the sequencer emits DATE tags before the
// name tags that precede them in the text.
func (a *Article) SortTags() {
	sort.SliceStable(a.Tags, func(i, j int) bool {
		if a.Tags[i].Start != a.Tags[j].Start {
			return a.Tags[i].Start < a.Tags[j].Start
		}
		return a.Tags[i].End < a.Tags[j].End
	})
}

// TagsOfKind returns the article's tags of the given kind in slice order.
func (a *Article) TagsOfKind(kind TagKind) []Tag {
	var tags []Tag
	for _, tag := range a.Tags {
		if tag.Kind == kind {
			tags = append(tags, tag)
		}
	}
	return tags
}
