package rexgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var propertyExamples = []string{"apple", "apples", "banana", "ananas", "a1b2", ""}

func synthesize(t *testing.T, examples []string, configure func(*RegexBuilder) *RegexBuilder) string {
	t.Helper()
	pattern, err := configure(From(examples...)).Build()
	require.Nil(t, err)
	return pattern
}

func identity(b *RegexBuilder) *RegexBuilder { return b }

func TestDeterminism(t *testing.T) {
	first := synthesize(t, propertyExamples, identity)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, synthesize(t, propertyExamples, identity))
	}
}

func TestPermutationInvariance(t *testing.T) {
	expected := synthesize(t, propertyExamples, identity)
	permutations := [][]string{
		{"banana", "apple", "", "a1b2", "ananas", "apples"},
		{"", "a1b2", "ananas", "apples", "banana", "apple"},
		{"apples", "banana", "apple", "ananas", "", "a1b2"},
	}
	for _, p := range permutations {
		require.Equal(t, expected, synthesize(t, p, identity))
	}
}

func TestDuplicateInvariance(t *testing.T) {
	expected := synthesize(t, propertyExamples, identity)
	doubled := append(append([]string(nil), propertyExamples...), "banana", "apple", "apple")
	require.Equal(t, expected, synthesize(t, doubled, identity))
}

func TestAnchorLaw(t *testing.T) {
	cases := [][]string{
		{"abc", "abd", "abe"},
		{"efgh", "abcxy", "abcw"},
		{"a", "b\nx\nx", "c"},
		propertyExamples,
	}
	for _, examples := range cases {
		anchored := synthesize(t, examples, identity)
		bare := synthesize(t, examples, (*RegexBuilder).WithoutAnchors)
		require.Equal(t, "^"+bare+"$", anchored)
	}
}

func TestFlagOrdering(t *testing.T) {
	pattern := synthesize(t, []string{"ab"}, func(b *RegexBuilder) *RegexBuilder {
		return b.WithCaseInsensitiveMatching().WithVerboseMode()
	})
	require.Equal(t, "(?ix)", pattern[:5])

	pattern = synthesize(t, []string{"ab"}, (*RegexBuilder).WithCaseInsensitiveMatching)
	require.Equal(t, "(?i)", pattern[:4])
}
