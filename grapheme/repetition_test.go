package grapheme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func convert(s string, minReps, minLen int) []Token {
	return ConvertRepetitions(Segment(s), minReps, minLen)
}

func TestConvertRepetitionsSimpleRun(t *testing.T) {
	tokens := convert("b\nx\nx", 1, 1)
	require.Len(t, tokens, 2)
	require.Equal(t, []string{"b"}, tokens[0].Parts)
	require.Equal(t, []string{"\n", "x"}, tokens[1].Parts)
	require.Equal(t, 2, tokens[1].Min)
	require.Equal(t, 2, tokens[1].Max)
}

func TestConvertRepetitionsSingleClusterRun(t *testing.T) {
	tokens := convert("My ♥♥♥!", 1, 1)
	require.Len(t, tokens, 5)
	require.Equal(t, []string{"♥"}, tokens[3].Parts)
	require.Equal(t, 3, tokens[3].Min)
}

func TestConvertRepetitionsMinimumRepetitionsIsStrict(t *testing.T) {
	// three repetitions do not clear a minimum of three
	tokens := convert("aababab", 3, 1)
	require.Len(t, tokens, 7)

	tokens = convert("aabababab", 3, 1)
	require.Len(t, tokens, 2)
	require.Equal(t, []string{"a", "b"}, tokens[1].Parts)
	require.Equal(t, 4, tokens[1].Min)
}

func TestConvertRepetitionsMinimumSubstringLength(t *testing.T) {
	tokens := convert("ababab", 1, 3)
	require.Len(t, tokens, 6)

	tokens = convert("abcabcabc", 1, 3)
	require.Len(t, tokens, 1)
	require.Equal(t, []string{"a", "b", "c"}, tokens[0].Parts)
	require.Equal(t, 3, tokens[0].Min)
}

func TestConvertRepetitionsPrefersLongerSubstring(t *testing.T) {
	// both (ab){4} and (abab){2} cover the run; the longer substring wins
	tokens := convert("abababab", 1, 1)
	require.Len(t, tokens, 1)
	require.Equal(t, []string{"a", "b", "a", "b"}, tokens[0].Parts)
	require.Equal(t, 2, tokens[0].Min)
}

func TestConvertRepetitionsNoRun(t *testing.T) {
	tokens := convert("abcdef", 1, 1)
	require.Len(t, tokens, 6)
	for _, tok := range tokens {
		require.False(t, tok.Quantified())
	}
}

func TestConvertRepetitionsLeavesQuantifiedInputAlone(t *testing.T) {
	quantified := []Token{{Parts: []string{"a"}, Min: 2, Max: 2}, Single("a")}
	require.Equal(t, quantified, ConvertRepetitions(quantified, 1, 1))
}
