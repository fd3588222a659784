package tokenize

import (
	"strings"
	"unicode"
)

// Shape returns the shape signature of s: each character is replaced by
// its class symbol. Digits map to 'd', lowercase letters to 'x',
// uppercase letters to 'X', caseless letters to 'x', and every other
// character maps to itself. No run-length compression is applied.
func Shape(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune('d')
		case unicode.IsUpper(r):
			b.WriteRune('X')
		case unicode.IsLetter(r):
			b.WriteRune('x')
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// isAllDigit reports whether s is non-empty and consists only of digits.
func isAllDigit(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isAllSpace reports whether s is non-empty and consists only of
// whitespace characters.
func isAllSpace(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
