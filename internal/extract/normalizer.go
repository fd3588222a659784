package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// DefaultHeaderMarker is the word ending an article's boilerplate header.
// Naturalisation notices open with department boilerplate signed by the
// Secretary; every line up to and including the line carrying this word
// is discarded. The match is case-sensitive.
const DefaultHeaderMarker = "Secretary"

// Normalizer converts raw, markup-wrapped article text into plain text.
//
// The input carries one markup-wrapped fragment per original line.
// Normalization strips the wrappers, drops the header boilerplate, and
// joins the surviving lines with single spaces. Normalization is
// idempotent: running it again over already-normalized, header-free text
// returns the text unchanged.
type Normalizer struct {
	// headerMarker is the literal word that ends the header.
	headerMarker string
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithHeaderMarker overrides the header end marker word.
func WithHeaderMarker(marker string) NormalizerOption {
	return func(n *Normalizer) {
		n.headerMarker = marker
	}
}

// NewNormalizer creates a Normalizer with the default header marker.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		headerMarker: DefaultHeaderMarker,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Normalize returns the plain-text form of raw article text.
func (n *Normalizer) Normalize(raw string) string {
	lines := strings.Split(raw, "\n")

	plain := make([]string, 0, len(lines))
	for _, line := range lines {
		plain = append(plain, stripMarkup(line))
	}

	plain = n.dropHeader(plain)

	kept := make([]string, 0, len(plain))
	for _, line := range plain {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, " ")
}

// dropHeader discards every line up to and including the first line
// containing the header marker. If no line contains the marker, the
// input is returned unmodified: a missing marker is not an error, it
// just means there is no header to drop.
func (n *Normalizer) dropHeader(lines []string) []string {
	for i, line := range lines {
		if strings.Contains(line, n.headerMarker) {
			return lines[i+1:]
		}
	}
	return lines
}

// stripMarkup removes markup wrappers from a single line, keeping only
// text content. HTML entities are unescaped. Lines without markup pass
// through untouched.
func stripMarkup(line string) string {
	if !strings.ContainsRune(line, '<') {
		return html.UnescapeString(line)
	}

	tz := html.NewTokenizer(strings.NewReader(line))

	var b strings.Builder
	for {
		switch tz.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(tz.Text())
		}
	}
}
