package extract

import (
	"testing"

	"github.com/natscan/natscan/internal/model"
)

// TestDateMatcherSingleMatch tests that each date form produces exactly
// one DATE tag spanning the full matched text.
func TestDateMatcherSingleMatch(t *testing.T) {
	t.Parallel()

	testCases := []string{
		"15.12.66",
		"15 12 66",
		"5.3.1966",
		"1.2.67",
		"5,3.66",
		"12.3.45",
		"1.23.45",
		"15.12.1966",
		"15 1.66",
		"15 12.66",
		"15 12 1966",
	}

	m := NewDateMatcher()

	for _, input := range testCases {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			tags := m.Match(input)
			if len(tags) != 1 {
				t.Fatalf("got %d DATE tags, expected 1: %+v", len(tags), tags)
			}

			tag := tags[0]
			if tag.Kind != model.TagDate {
				t.Errorf("kind = %v, expected DATE", tag.Kind)
			}
			if tag.Start != 0 || tag.End != len(input) || tag.Text != input {
				t.Errorf("span [%d,%d) %q does not cover %q", tag.Start, tag.End, tag.Text, input)
			}
		})
	}
}

// TestDateMatcherNegative tests inputs that must produce no DATE tags.
func TestDateMatcherNegative(t *testing.T) {
	t.Parallel()

	testCases := []string{
		"1000",
		"",
		"Smith, John, 12 Main St",
		"12 Main St",
	}

	m := NewDateMatcher()

	for _, input := range testCases {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			if tags := m.Match(input); len(tags) != 0 {
				t.Errorf("got %+v, expected no DATE tags", tags)
			}
		})
	}
}

// TestDateMatcherInContext verifies matching inside surrounding text and
// correct offsets.
func TestDateMatcherInContext(t *testing.T) {
	t.Parallel()

	text := "Smith, John, 12 Main St, 15.12.66 Jones, Mary, 4 High St, 1.2.67"

	m := NewDateMatcher()
	tags := m.Match(text)

	if len(tags) != 2 {
		t.Fatalf("got %d DATE tags, expected 2: %+v", len(tags), tags)
	}

	expected := []string{"15.12.66", "1.2.67"}
	for i, want := range expected {
		if tags[i].Text != want {
			t.Errorf("tag %d text = %q, expected %q", i, tags[i].Text, want)
		}
		if text[tags[i].Start:tags[i].End] != want {
			t.Errorf("tag %d offsets [%d,%d) do not locate %q", i, tags[i].Start, tags[i].End, want)
		}
	}
}

// TestDateMatcherNoOverlap verifies a consumed span is not rescanned.
func TestDateMatcherNoOverlap(t *testing.T) {
	t.Parallel()

	// The generic digit-space-digit-space-digit rule consumes all five
	// tokens; a second overlapping match starting at "12" must not occur.
	m := NewDateMatcher()
	tags := m.Match("15 12 66")

	if len(tags) != 1 {
		t.Fatalf("got %d DATE tags, expected 1: %+v", len(tags), tags)
	}
	if tags[0].Text != "15 12 66" {
		t.Errorf("tag spans %q, expected full text", tags[0].Text)
	}
}

// TestDateMatcherTableOrder verifies the more specific spaced rules win
// over the generic fallback at the same position.
func TestDateMatcherTableOrder(t *testing.T) {
	t.Parallel()

	m := NewDateMatcher()
	tags := m.Match("15 1.66")

	if len(tags) != 1 {
		t.Fatalf("got %d DATE tags, expected 1: %+v", len(tags), tags)
	}
	if tags[0].Text != "15 1.66" {
		t.Errorf("tag spans %q, expected %q", tags[0].Text, "15 1.66")
	}
}
