package grapheme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parts(tokens []Token) []string {
	var out []string
	for _, t := range tokens {
		out = append(out, t.Parts...)
	}
	return out
}

func TestConvertDigits(t *testing.T) {
	got := ConvertClasses(Segment("a1b2"), ClassOptions{Digits: true})
	require.Equal(t, []string{"a", `\d`, "b", `\d`}, parts(got))
}

func TestConvertNonDigits(t *testing.T) {
	got := ConvertClasses(Segment("a1b2"), ClassOptions{NonDigits: true})
	require.Equal(t, []string{`\D`, "1", `\D`, "2"}, parts(got))
}

func TestConvertWordsCoversDigitsAndUnderscore(t *testing.T) {
	got := ConvertClasses(Segment("a1_ !"), ClassOptions{Words: true})
	require.Equal(t, []string{`\w`, `\w`, `\w`, " ", "!"}, parts(got))
}

func TestConvertNonWords(t *testing.T) {
	got := ConvertClasses(Segment("ab 12"), ClassOptions{NonWords: true})
	require.Equal(t, []string{"a", "b", `\W`, "1", "2"}, parts(got))
}

func TestConvertWhitespace(t *testing.T) {
	got := ConvertClasses(Segment("a\t\n"), ClassOptions{Whitespace: true})
	require.Equal(t, []string{"a", `\s`, `\s`}, parts(got))
}

func TestConvertNonWhitespace(t *testing.T) {
	got := ConvertClasses(Segment("a b"), ClassOptions{NonWhitespace: true})
	require.Equal(t, []string{`\S`, " ", `\S`}, parts(got))
}

func TestDigitPrecedenceOverWord(t *testing.T) {
	got := ConvertClasses(Segment("a1"), ClassOptions{Digits: true, Words: true})
	require.Equal(t, []string{`\w`, `\d`}, parts(got))
}

func TestCategoryPrecedenceOverComplement(t *testing.T) {
	got := ConvertClasses(Segment("a1"), ClassOptions{Digits: true, NonDigits: true})
	require.Equal(t, []string{`\D`, `\d`}, parts(got))
}

func TestCombiningClusterIsNeverFolded(t *testing.T) {
	got := ConvertClasses(Segment("e\u03011"), ClassOptions{Words: true, Digits: true})
	require.Equal(t, []string{"e\u0301", `\d`}, parts(got))
}

func TestNoOptionsIsIdentity(t *testing.T) {
	tokens := Segment("a1 b")
	require.Equal(t, parts(tokens), parts(ConvertClasses(tokens, ClassOptions{})))
}

func TestIsClassEscape(t *testing.T) {
	require.True(t, IsClassEscape(`\d`))
	require.True(t, IsClassEscape(`\S`))
	require.False(t, IsClassEscape(`d`))
	require.False(t, IsClassEscape(`\n`))
}
