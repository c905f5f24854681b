package rexgen

import (
	"errors"
	"unicode/utf8"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// Validation errors. The messages are part of the public contract and must
// stay byte-identical.
var (
	ErrEmptyExamples                 = errors.New("No test cases have been provided for regular expression generation")
	ErrInvalidMinimumRepetitions     = errors.New("Quantity of minimum repetitions must be greater than zero")
	ErrInvalidMinimumSubstringLength = errors.New("Minimum substring length must be greater than zero")
)

// Generator Options
type Options struct {
	// Examples the generated expression must match
	Examples []string
	// fold [0-9] literals into \d
	ConversionOfDigits bool
	// fold non-digit literals into \D
	ConversionOfNonDigits bool
	// fold whitespace literals into \s
	ConversionOfWhitespace bool
	// fold non-whitespace literals into \S
	ConversionOfNonWhitespace bool
	// fold word literals into \w
	ConversionOfWords bool
	// fold non-word literals into \W
	ConversionOfNonWords bool
	// detect repeated substrings and emit bounded quantifiers
	ConversionOfRepetitions bool
	// quantifiers are emitted only for runs repeating strictly more often
	// than this (>= 1, default 1)
	MinimumRepetitions int
	// repeated substrings shorter than this are ignored (>= 1, default 1)
	MinimumSubstringLength int
	// render groups as (...) instead of (?:...)
	CapturingGroups bool
	// omit the leading ^ and trailing $
	WithoutAnchors bool
	// prepend (?i) and case-fold before DFA construction
	CaseInsensitiveMatching bool
	// multiline indented rendering with (?x)
	VerboseMode bool
	// escape every scalar above U+007F
	EscapeNonASCII bool
	// split supplementary scalars into UTF-16 surrogate pair escapes
	UseSurrogatePairs bool
}

// Validate checks the option bundle and fills defaults. It is the only place
// synthesis can fail: on valid input the pipeline is total.
func (o *Options) Validate() error {
	if len(o.Examples) == 0 {
		return ErrEmptyExamples
	}
	if o.MinimumRepetitions == 0 {
		o.MinimumRepetitions = 1
	}
	if o.MinimumRepetitions < 1 {
		return ErrInvalidMinimumRepetitions
	}
	if o.MinimumSubstringLength == 0 {
		o.MinimumSubstringLength = 1
	}
	if o.MinimumSubstringLength < 1 {
		return ErrInvalidMinimumSubstringLength
	}
	for _, example := range o.Examples {
		if !utf8.ValidString(example) {
			return errorutil.NewWithTag("rexgen", "test case %q is not valid UTF-8", example)
		}
	}
	return nil
}
