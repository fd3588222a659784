package extract

import (
	"github.com/natscan/natscan/internal/model"
	"github.com/natscan/natscan/internal/tokenize"
)

// constraintKind selects how a rule constraint tests a token.
type constraintKind int

const (
	// matchShape requires an exact shape-signature match.
	matchShape constraintKind = iota

	// matchDigit requires a token consisting only of digits.
	matchDigit

	// matchSpace requires a whitespace token.
	matchSpace
)

// constraint is one token test inside a rule.
type constraint struct {
	kind  constraintKind
	shape string
}

func shapeIs(shape string) constraint {
	return constraint{kind: matchShape, shape: shape}
}

func anyDigit() constraint {
	return constraint{kind: matchDigit}
}

func anySpace() constraint {
	return constraint{kind: matchSpace}
}

// rule is an ordered sequence of 1-5 token constraints. The first rule
// matching at a scan position wins and consumes its tokens.
type rule struct {
	name        string
	constraints []constraint
}

// DateMatcher finds date-shaped token subsequences in article text.
//
// The rule table is ordered: at each position rules are tested in table
// order and the first match consumes its tokens, emits one DATE tag
// spanning them, and scanning resumes immediately after the span, so
// DATE tags never overlap. A position matching no rule advances the
// scan by one token. The table is read-only after construction and safe
// to share across workers.
type DateMatcher struct {
	rules []rule
}

// NewDateMatcher creates a DateMatcher with the default rule table.
//
// The dotted day.month.year shapes come first, from the two-digit forms
// the gazette notices use most down to the four-digit-year variants.
// The OCR frequently misreads the first separator as a comma, so the
// d,d.dd shape is accepted alongside d.d.dd. The spaced two-token rules
// and the generic digit-space-digit-space-digit fallback close the
// table; ordering them last keeps the more specific shapes in control
// whenever both would match.
func NewDateMatcher() *DateMatcher {
	return &DateMatcher{
		rules: []rule{
			{name: "d.d.dd", constraints: []constraint{shapeIs("d.d.dd")}},
			{name: "d,d.dd", constraints: []constraint{shapeIs("d,d.dd")}},
			{name: "d.dd.dd", constraints: []constraint{shapeIs("d.dd.dd")}},
			{name: "dd.d.dd", constraints: []constraint{shapeIs("dd.d.dd")}},
			{name: "dd.dd.dd", constraints: []constraint{shapeIs("dd.dd.dd")}},
			{name: "dd.d.dddd", constraints: []constraint{shapeIs("dd.d.dddd")}},
			{name: "dd.dd.dddd", constraints: []constraint{shapeIs("dd.dd.dddd")}},
			{name: "d.d.dddd", constraints: []constraint{shapeIs("d.d.dddd")}},
			{name: "d.dd.dddd", constraints: []constraint{shapeIs("d.dd.dddd")}},
			{name: "dd d.dd", constraints: []constraint{shapeIs("dd"), anySpace(), shapeIs("d.dd")}},
			{name: "dd dd.dd", constraints: []constraint{shapeIs("dd"), anySpace(), shapeIs("dd.dd")}},
			{name: "d d d", constraints: []constraint{anyDigit(), anySpace(), anyDigit(), anySpace(), anyDigit()}},
		},
	}
}

// Match scans text and returns one DATE tag per matched subsequence, in
// left-to-right order. Text with no date-shaped tokens yields no tags.
func (m *DateMatcher) Match(text string) []model.Tag {
	tokens := tokenize.Tokenize(text)

	var tags []model.Tag

	i := 0
	for i < len(tokens) {
		n := m.matchAt(tokens, i)
		if n == 0 {
			i++
			continue
		}

		start := tokens[i].Start
		end := tokens[i+n-1].End
		tags = append(tags, model.Tag{
			Kind:  model.TagDate,
			Start: start,
			End:   end,
			Text:  text[start:end],
		})

		i += n
	}

	return tags
}

// matchAt tests the rule table at token position i and returns the number
// of tokens consumed by the first matching rule, or 0 if no rule matches.
func (m *DateMatcher) matchAt(tokens []tokenize.Token, i int) int {
	for _, r := range m.rules {
		if i+len(r.constraints) > len(tokens) {
			continue
		}

		matched := true
		for j, c := range r.constraints {
			if !c.test(tokens[i+j]) {
				matched = false
				break
			}
		}

		if matched {
			return len(r.constraints)
		}
	}

	return 0
}

// test reports whether the token satisfies the constraint.
func (c constraint) test(tok tokenize.Token) bool {
	switch c.kind {
	case matchShape:
		return tok.Shape == c.shape
	case matchDigit:
		return tok.IsDigit
	case matchSpace:
		return tok.IsSpace
	default:
		return false
	}
}
