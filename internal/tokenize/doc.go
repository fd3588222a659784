// Package tokenize adapts Unicode word segmentation into the token stream
// consumed by the date matcher.
//
// Tokens are produced by the UAX #29 word-boundary algorithm
// (github.com/clipperhouse/uax29), which partitions the entire input:
// every byte belongs to exactly one token, whitespace runs included. The
// algorithm keeps digit groups joined by '.' or ',' together as a single
// token, which is exactly the granularity the dotted date shapes need
// ("15.12.66" is one token, "15 12 66" is five).
//
// Each token carries a shape signature: a per-character class string used
// to match date-like tokens independent of their literal digits. Shape
// comparison is exact class-string equality, never a regex, so "12.3.45"
// and "1.23.45" remain distinguishable.
package tokenize
