package grapheme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegmentASCII(t *testing.T) {
	tokens := Segment("abc")
	require.Len(t, tokens, 3)
	require.Equal(t, []string{"a"}, tokens[0].Parts)
	require.Equal(t, []string{"c"}, tokens[2].Parts)
	require.False(t, tokens[0].Quantified())
}

func TestSegmentEmpty(t *testing.T) {
	require.Empty(t, Segment(""))
}

func TestSegmentCombiningSequence(t *testing.T) {
	// e + combining acute accent is one user-perceived character
	tokens := Segment("e\u0301x")
	require.Len(t, tokens, 2)
	require.Equal(t, "e\u0301", tokens[0].Parts[0])
	require.Equal(t, "x", tokens[1].Parts[0])
}

func TestSegmentEmojiZWJ(t *testing.T) {
	// family emoji joined with zero-width joiners stays one cluster
	tokens := Segment("\U0001F468\u200D\U0001F469\u200D\U0001F466!")
	require.Len(t, tokens, 2)
	require.Equal(t, "!", tokens[1].Parts[0])
}

func TestFold(t *testing.T) {
	tokens := Fold(Segment("AbC"))
	require.Equal(t, "a", tokens[0].Parts[0])
	require.Equal(t, "b", tokens[1].Parts[0])
	require.Equal(t, "c", tokens[2].Parts[0])
}

func TestTokenKeyDistinguishesCounts(t *testing.T) {
	plain := Token{Parts: []string{"a", "b"}, Min: 1, Max: 1}
	repeated := Token{Parts: []string{"a", "b"}, Min: 2, Max: 2}
	require.NotEqual(t, plain.Key(), repeated.Key())

	// joining must not confuse cluster boundaries
	ab := Token{Parts: []string{"ab"}, Min: 1, Max: 1}
	require.NotEqual(t, plain.Key(), ab.Key())
}
