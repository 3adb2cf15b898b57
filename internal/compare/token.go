// Package compare grades a typed transcription attempt word by word against a
// reference transcript. The comparison is a bounded approximate alignment: it
// tolerates insertions, deletions, substitutions, and re-synchronizes after
// the typist skips or adds content, while doing O(n·window) work instead of a
// full dynamic-programming alignment.
package compare

import (
	"strings"
	"unicode"
)

// Token is a single whitespace-delimited unit of text. Text keeps the surface
// form for display; Normalized is the comparison form. Position is an ordinal
// index or a source timestamp in seconds and is never consulted for matching.
type Token struct {
	Text       string
	Position   float64
	Normalized string
}

// Tokenize splits raw text on whitespace runs into tokens with ordinal
// positions. Empty or whitespace-only input yields an empty slice.
func Tokenize(raw string) []Token {
	fields := strings.Fields(raw)
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = Token{
			Text:       f,
			Position:   float64(i),
			Normalized: Normalize(f),
		}
	}
	return tokens
}

// TokenizeTimed is Tokenize with per-word timestamps attached. Words beyond
// the end of times keep a zero position.
func TokenizeTimed(raw string, times []float64) []Token {
	tokens := Tokenize(raw)
	for i := range tokens {
		if i < len(times) {
			tokens[i].Position = times[i]
		} else {
			tokens[i].Position = 0
		}
	}
	return tokens
}

// Normalize derives the comparison form of a word: letters and digits are
// kept lower-cased, combining marks and everything else (punctuation, symbols)
// are dropped. Normalize is total and idempotent.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
