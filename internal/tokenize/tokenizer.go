package tokenize

import "github.com/clipperhouse/uax29/v2/words"

// Token is one segment of the input text.
//
// Tokens are ephemeral: they exist only while the date matcher scans an
// article and are not retained afterwards. Start and End are byte offsets
// into the tokenized text.
type Token struct {
	// Text is the token content.
	Text string

	// Start is the byte offset of the token's first byte.
	Start int

	// End is the byte offset one past the token's last byte.
	End int

	// Shape is the token's shape signature (see Shape).
	Shape string

	// IsDigit is true when the token consists only of digits.
	IsDigit bool

	// IsSpace is true when the token consists only of whitespace.
	IsSpace bool
}

// Tokenize segments text into tokens using UAX #29 word boundaries.
//
// The segmentation partitions the whole input, so token offsets are
// contiguous: each token starts where the previous one ended. The result
// is deterministic for identical input.
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}

	var tokens []Token

	offset := 0
	segments := words.FromString(text)
	for segments.Next() {
		seg := segments.Value()
		tokens = append(tokens, Token{
			Text:    seg,
			Start:   offset,
			End:     offset + len(seg),
			Shape:   Shape(seg),
			IsDigit: isAllDigit(seg),
			IsSpace: isAllSpace(seg),
		})
		offset += len(seg)
	}

	return tokens
}
