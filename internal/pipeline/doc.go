// Package pipeline runs the per-article tagging stages and the batch
// orchestration over an article collection.
//
// Each article passes through the stages in order: normalization, date
// matching, tag sequencing. Each stage is a Step that receives the
// article and populates its derived fields. The stages are per-article
// and share no state, so the BatchProcessor runs them across the
// collection with a bounded worker pool; record extraction and
// validation happen afterwards, once every article is tagged.
//
// Per-article failures are isolated: a failing article is recorded in
// the batch error list and the rest of the collection keeps processing.
package pipeline
