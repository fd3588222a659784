package extract

import (
	"strings"

	"github.com/natscan/natscan/internal/model"
)

// Sequencer assigns name and address tags to the text between DATE tags.
//
// Each maximal span strictly between the end of one DATE tag and the
// start of the next (and from the text start to the first DATE tag) is
// split on commas. The pieces, left to right, take the kinds LASTNAME,
// FIRSTNAME, ADDR; commas beyond the second are treated as part of the
// address, since a comma inside an address is indistinguishable from a
// field separator. A span with fewer than three pieces simply emits no
// tag for the missing kinds.
type Sequencer struct{}

// NewSequencer creates a Sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Sequence returns the name and address tags for the spans between the
// given DATE tags, which must be ordered by start offset. When no DATE
// tags exist the whole text is treated as one span. Text after the last
// DATE tag is left untagged: without a trailing date it can never
// complete a record.
func (s *Sequencer) Sequence(text string, dates []model.Tag) []model.Tag {
	var tags []model.Tag

	if len(dates) == 0 {
		return s.sequenceSpan(text, 0, len(text))
	}

	prevEnd := 0
	for _, d := range dates {
		tags = append(tags, s.sequenceSpan(text, prevEnd, d.Start)...)
		prevEnd = d.End
	}

	return tags
}

// spanKinds is the positional kind assignment for comma-split pieces.
var spanKinds = []model.TagKind{model.TagLastname, model.TagFirstname, model.TagAddr}

// sequenceSpan tags the text[start:end] span. Kinds are assigned by piece
// position, so an empty leading piece consumes the LASTNAME slot without
// emitting a tag.
func (s *Sequencer) sequenceSpan(text string, start, end int) []model.Tag {
	var tags []model.Tag

	pieceStart := start
	for i, kind := range spanKinds {
		pieceEnd := end
		if i < len(spanKinds)-1 {
			// The final piece keeps any remaining commas.
			if c := strings.IndexByte(text[pieceStart:end], ','); c >= 0 {
				pieceEnd = pieceStart + c
			}
		}

		// The address piece runs to the span end, which sits right
		// before the next DATE tag; the field separator comma ahead of
		// the date would otherwise stick to the address.
		trimCommas := kind == model.TagAddr
		if tag, ok := trimmedTag(text, kind, pieceStart, pieceEnd, trimCommas); ok {
			tags = append(tags, tag)
		}

		if pieceEnd == end {
			break
		}
		pieceStart = pieceEnd + 1
	}

	return tags
}

// trimmedTag builds a tag for text[start:end] with surrounding whitespace
// trimmed out of both the text and the offsets. With trimCommas set,
// trailing comma runs are trimmed as well. Returns false for pieces that
// are empty after trimming.
func trimmedTag(text string, kind model.TagKind, start, end int, trimCommas bool) (model.Tag, bool) {
	for start < end && isSpaceByte(text[start]) {
		start++
	}
	for end > start && (isSpaceByte(text[end-1]) || (trimCommas && text[end-1] == ',')) {
		end--
	}

	if start >= end {
		return model.Tag{}, false
	}

	return model.Tag{
		Kind:  kind,
		Start: start,
		End:   end,
		Text:  text[start:end],
	}, true
}

// isSpaceByte reports whether b is ASCII whitespace. Offsets are byte
// based, so trimming stays byte based as well; OCR text is ASCII-heavy
// and multi-byte whitespace does not occur in practice.
func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
