// Package grapheme turns example strings into token sequences for the DFA:
// UAX #29 grapheme segmentation, case folding, shorthand class conversion and
// repetition detection.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Segment splits s into extended grapheme clusters (UAX #29), one token per
// cluster. The empty string yields an empty sequence. Input is expected to be
// valid UTF-8; the caller validates at the API boundary.
func Segment(s string) []Token {
	if s == "" {
		return nil
	}
	tokens := make([]Token, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		tokens = append(tokens, Single(gr.Str()))
	}
	return tokens
}

// Fold lowercases every cluster of every token so that labels differing only
// in case collapse onto the same DFA transition. The lowercase form is the
// canonical label that appears in the output pattern.
func Fold(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	for i, t := range tokens {
		parts := make([]string, len(t.Parts))
		for j, p := range t.Parts {
			parts[j] = strings.Map(unicode.ToLower, p)
		}
		out[i] = Token{Parts: parts, Min: t.Min, Max: t.Max}
	}
	return out
}
