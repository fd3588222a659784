package extract

import "github.com/natscan/natscan/internal/model"

// Extractor assembles tagged articles into records.
//
// The extractor walks each article's tags in start-offset order and
// emits one Record per contiguous LASTNAME, FIRSTNAME, ADDR, DATE run.
// Runs with missing or misordered fields emit nothing; the walk simply
// continues, so one malformed span never hides later complete runs in
// the same article.
type Extractor struct{}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// canonicalRun is the tag kind order that forms one record.
var canonicalRun = []model.TagKind{
	model.TagLastname,
	model.TagFirstname,
	model.TagAddr,
	model.TagDate,
}

// Extract returns the records of every article in the collection, in
// article order and, within an article, in text order. Articles must
// already carry their tags; tags are sorted by offset before grouping
// because the sequencer emits DATE tags ahead of the name tags that
// precede them in the text.
func (e *Extractor) Extract(articles []*model.Article) []*model.Record {
	var records []*model.Record
	for _, a := range articles {
		records = append(records, e.extractArticle(a)...)
	}
	return records
}

// extractArticle walks one article's tag sequence.
func (e *Extractor) extractArticle(a *model.Article) []*model.Record {
	a.SortTags()

	var records []*model.Record

	i := 0
	for i+len(canonicalRun) <= len(a.Tags) {
		if !runAt(a.Tags, i) {
			i++
			continue
		}

		records = append(records, newRecord(a.ID, a.Tags[i:i+len(canonicalRun)]))
		i += len(canonicalRun)
	}

	return records
}

// runAt reports whether a canonical run starts at tag position i.
func runAt(tags []model.Tag, i int) bool {
	for j, kind := range canonicalRun {
		if tags[i+j].Kind != kind {
			return false
		}
	}
	return true
}

// newRecord builds a record from a canonical four-tag run. The date is
// parsed here; failure leaves the sentinel date in place and the record
// is emitted regardless, because validity is decided by the validator,
// not the extractor.
func newRecord(articleID string, run []model.Tag) *model.Record {
	support := make([]model.Tag, len(run))
	copy(support, run)

	rec := &model.Record{
		ArticleID: articleID,
		Last:      run[0].Text,
		First:     run[1].Text,
		Address:   run[2].Text,
		DateRaw:   run[3].Text,
		Support:   support,
	}

	if date, err := ParseDate(rec.DateRaw); err == nil {
		rec.Date = date
	}

	return rec
}
