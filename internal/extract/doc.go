// Package extract implements the text-to-record extraction core.
//
// The extraction runs in five stages over each article:
//   - Normalizer: strips markup wrappers and discards the boilerplate
//     header, producing plain text
//   - DateMatcher: scans the token stream for date-shaped subsequences
//     using an ordered rule table and emits DATE tags
//   - Sequencer: splits the text between consecutive DATE tags on commas
//     into LASTNAME/FIRSTNAME/ADDR tags
//   - Extractor: groups ordered tag runs into Records and parses dates
//   - Validator: partitions records into accepted and rejected sets with
//     heuristic filters
//
// The input is irregular, error-prone OCR text with no reliable
// delimiters beyond commas and date shapes. The stages degrade
// gracefully: a span with missing fields emits no partial record, an
// unparsable date still yields a record carrying the sentinel date, and
// an article with no date-shaped text simply yields no records.
package extract
