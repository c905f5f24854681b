package dfa

import (
	"testing"

	"github.com/projectdiscovery/rexgen/grapheme"
	"github.com/projectdiscovery/rexgen/internal/ast"
	"github.com/stretchr/testify/require"
)

func sequences(examples ...string) [][]grapheme.Token {
	out := make([][]grapheme.Token, len(examples))
	for i, e := range examples {
		out[i] = grapheme.Segment(e)
	}
	return out
}

func TestBuildIsTrie(t *testing.T) {
	d := Build(sequences("abc", "abd"))
	// shared prefix ab plus two leaves and the start state
	require.Equal(t, 5, d.Len())
	require.True(t, d.Accepts(grapheme.Segment("abc")))
	require.True(t, d.Accepts(grapheme.Segment("abd")))
	require.False(t, d.Accepts(grapheme.Segment("ab")))
	require.False(t, d.Accepts(grapheme.Segment("abe")))
}

func TestBuildEmptySequenceMarksStartAccepting(t *testing.T) {
	d := Build(sequences("", "a"))
	require.True(t, d.Accepts(nil))
	require.True(t, d.Accepts(grapheme.Segment("a")))
}

func TestMinimizeMergesEquivalentStates(t *testing.T) {
	d := Build(sequences("abc", "abd", "abe"))
	require.Equal(t, 6, d.Len())
	d.Minimize()
	// the three leaves collapse into one accepting state
	require.Equal(t, 4, d.Len())
	for _, e := range []string{"abc", "abd", "abe"} {
		require.True(t, d.Accepts(grapheme.Segment(e)))
	}
	require.False(t, d.Accepts(grapheme.Segment("abf")))
	require.False(t, d.Accepts(grapheme.Segment("ab")))
}

func TestMinimizeMergesCommonSuffixChains(t *testing.T) {
	d := Build(sequences("abc", "zbc"))
	require.Equal(t, 7, d.Len())
	d.Minimize()
	// both b-c chains collapse onto one path
	require.Equal(t, 4, d.Len())
	require.True(t, d.Accepts(grapheme.Segment("abc")))
	require.True(t, d.Accepts(grapheme.Segment("zbc")))
	require.False(t, d.Accepts(grapheme.Segment("abz")))
}

func TestMinimizeKeepsDistinctAcceptingDepths(t *testing.T) {
	d := Build(sequences("a", "aa"))
	d.Minimize()
	require.Equal(t, 3, d.Len())
	require.True(t, d.Accepts(grapheme.Segment("a")))
	require.True(t, d.Accepts(grapheme.Segment("aa")))
	require.False(t, d.Accepts(grapheme.Segment("aaa")))
	require.False(t, d.Accepts(nil))
}

func TestMinimizePreservesLanguage(t *testing.T) {
	examples := []string{"server-1", "server-2", "db-1", "db", ""}
	d := Build(sequences(examples...))
	d.Minimize()
	for _, e := range examples {
		require.True(t, d.Accepts(grapheme.Segment(e)), e)
	}
	for _, e := range []string{"server-", "server-12", "db-", "x"} {
		require.False(t, d.Accepts(grapheme.Segment(e)), e)
	}
}

func TestRegexSingleExample(t *testing.T) {
	d := Build(sequences("ab"))
	d.Minimize()
	tree := ast.Simplify(d.Regex())
	require.Equal(t, "ab", ast.Render(tree, ast.Config{}))
}

func TestRegexSharedPrefixAndLeaves(t *testing.T) {
	d := Build(sequences("abc", "abd", "abe"))
	d.Minimize()
	tree := ast.CoalesceClasses(ast.Simplify(d.Regex()))
	require.Equal(t, "ab[c-e]", ast.Render(tree, ast.Config{}))
}

func TestRegexOptionalSuffix(t *testing.T) {
	d := Build(sequences("a", "ab"))
	d.Minimize()
	tree := ast.Simplify(d.Regex())
	require.Equal(t, "ab?", ast.Render(tree, ast.Config{}))
}

func TestRegexEmptyOnlyLanguage(t *testing.T) {
	d := Build(sequences(""))
	d.Minimize()
	tree := ast.Simplify(d.Regex())
	require.Equal(t, ast.OpEmpty, tree.Op)
}

func TestRegexQuantifiedEdgeLabel(t *testing.T) {
	seq := []grapheme.Token{
		grapheme.Single("b"),
		{Parts: []string{"\n", "x"}, Min: 2, Max: 2},
	}
	d := Build([][]grapheme.Token{seq})
	d.Minimize()
	tree := ast.Simplify(d.Regex())
	require.Equal(t, `b(?:\nx){2}`, ast.Render(tree, ast.Config{}))
}
