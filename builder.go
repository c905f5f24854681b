package rexgen

// RegexBuilder is the fluent configuration surface over Options. Invalid
// settings are remembered and reported before any synthesis work begins.
type RegexBuilder struct {
	opts Options
	err  error
}

// From starts a builder for the given examples.
func From(examples ...string) *RegexBuilder {
	b := &RegexBuilder{opts: Options{Examples: examples}}
	if len(examples) == 0 {
		b.err = ErrEmptyExamples
	}
	return b
}

// WithConversionOfDigits folds digit literals into \d.
func (b *RegexBuilder) WithConversionOfDigits() *RegexBuilder {
	b.opts.ConversionOfDigits = true
	return b
}

// WithConversionOfNonDigits folds non-digit literals into \D.
func (b *RegexBuilder) WithConversionOfNonDigits() *RegexBuilder {
	b.opts.ConversionOfNonDigits = true
	return b
}

// WithConversionOfWhitespace folds whitespace literals into \s.
func (b *RegexBuilder) WithConversionOfWhitespace() *RegexBuilder {
	b.opts.ConversionOfWhitespace = true
	return b
}

// WithConversionOfNonWhitespace folds non-whitespace literals into \S.
func (b *RegexBuilder) WithConversionOfNonWhitespace() *RegexBuilder {
	b.opts.ConversionOfNonWhitespace = true
	return b
}

// WithConversionOfWords folds word literals into \w.
func (b *RegexBuilder) WithConversionOfWords() *RegexBuilder {
	b.opts.ConversionOfWords = true
	return b
}

// WithConversionOfNonWords folds non-word literals into \W.
func (b *RegexBuilder) WithConversionOfNonWords() *RegexBuilder {
	b.opts.ConversionOfNonWords = true
	return b
}

// WithConversionOfRepetitions enables the repetition detector.
func (b *RegexBuilder) WithConversionOfRepetitions() *RegexBuilder {
	b.opts.ConversionOfRepetitions = true
	return b
}

// WithMinimumRepetitions sets how often a substring must repeat (strictly
// more than n times) before it is quantified.
func (b *RegexBuilder) WithMinimumRepetitions(n int) *RegexBuilder {
	if n < 1 {
		if b.err == nil {
			b.err = ErrInvalidMinimumRepetitions
		}
		return b
	}
	b.opts.MinimumRepetitions = n
	return b
}

// WithMinimumSubstringLength sets the shortest substring the repetition
// detector may quantify.
func (b *RegexBuilder) WithMinimumSubstringLength(n int) *RegexBuilder {
	if n < 1 {
		if b.err == nil {
			b.err = ErrInvalidMinimumSubstringLength
		}
		return b
	}
	b.opts.MinimumSubstringLength = n
	return b
}

// WithCapturingGroups renders groups as (...) instead of (?:...).
func (b *RegexBuilder) WithCapturingGroups() *RegexBuilder {
	b.opts.CapturingGroups = true
	return b
}

// WithoutAnchors omits the surrounding ^ and $.
func (b *RegexBuilder) WithoutAnchors() *RegexBuilder {
	b.opts.WithoutAnchors = true
	return b
}

// WithCaseInsensitiveMatching prepends (?i) and case-folds the examples.
func (b *RegexBuilder) WithCaseInsensitiveMatching() *RegexBuilder {
	b.opts.CaseInsensitiveMatching = true
	return b
}

// WithVerboseMode renders the pattern in multiline (?x) form.
func (b *RegexBuilder) WithVerboseMode() *RegexBuilder {
	b.opts.VerboseMode = true
	return b
}

// WithEscapingOfNonASCII escapes every scalar above U+007F, splitting
// supplementary scalars into surrogate pairs when requested.
func (b *RegexBuilder) WithEscapingOfNonASCII(useSurrogatePairs bool) *RegexBuilder {
	b.opts.EscapeNonASCII = true
	b.opts.UseSurrogatePairs = useSurrogatePairs
	return b
}

// Build validates the collected options and synthesizes the pattern.
func (b *RegexBuilder) Build() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	g, err := New(&b.opts)
	if err != nil {
		return "", err
	}
	return g.Generate(), nil
}
