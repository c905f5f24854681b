// Package rexgen synthesizes a regular expression from example strings: the
// generated pattern matches every example and, apart from user-requested
// generalizations, as little else as possible.
package rexgen

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/rexgen/grapheme"
	"github.com/projectdiscovery/rexgen/internal/ast"
	"github.com/projectdiscovery/rexgen/internal/dfa"
)

// Generator
type Generator struct {
	Options *Options
	// internal/unexported fields
	examples []string
}

// New creates and returns a new generator instance from options
func New(opts *Options) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		Options:  opts,
		examples: normalizeExamples(opts.Examples),
	}, nil
}

// Generate runs the synthesis pipeline and returns the pattern. Synthesis is
// total on validated options: for a fixed input the output is byte-identical
// across runs and platforms.
func (g *Generator) Generate() string {
	opts := g.Options
	sequences := make([][]grapheme.Token, 0, len(g.examples))
	for _, example := range g.examples {
		tokens := grapheme.Segment(example)
		if opts.CaseInsensitiveMatching {
			tokens = grapheme.Fold(tokens)
		}
		if opts.ConversionOfRepetitions {
			tokens = grapheme.ConvertRepetitions(tokens, opts.MinimumRepetitions, opts.MinimumSubstringLength)
		}
		tokens = grapheme.ConvertClasses(tokens, g.classOptions())
		sequences = append(sequences, tokens)
	}

	automaton := dfa.Build(sequences)
	before := automaton.Len()
	automaton.Minimize()
	gologger.Debug().Msgf("minimized automaton from %d to %d states for %d test cases", before, automaton.Len(), len(g.examples))

	tree := ast.Simplify(automaton.Regex())
	if opts.ConversionOfRepetitions {
		tree = ast.Simplify(g.convertTreeRepetitions(tree))
	}
	tree = ast.CoalesceClasses(tree)

	return ast.Render(tree, ast.Config{
		Anchors:         !opts.WithoutAnchors,
		Capturing:       opts.CapturingGroups,
		CaseInsensitive: opts.CaseInsensitiveMatching,
		Verbose:         opts.VerboseMode,
		EscapeNonASCII:  opts.EscapeNonASCII,
		SurrogatePairs:  opts.UseSurrogatePairs,
	})
}

func (g *Generator) classOptions() grapheme.ClassOptions {
	return grapheme.ClassOptions{
		Digits:        g.Options.ConversionOfDigits,
		NonDigits:     g.Options.ConversionOfNonDigits,
		Words:         g.Options.ConversionOfWords,
		NonWords:      g.Options.ConversionOfNonWords,
		Whitespace:    g.Options.ConversionOfWhitespace,
		NonWhitespace: g.Options.ConversionOfNonWhitespace,
	}
}

// convertTreeRepetitions applies the repetition detector to runs of literal
// children inside concatenations, catching repeats that only appear once the
// automaton has merged common structure across examples.
func (g *Generator) convertTreeRepetitions(n *ast.Node) *ast.Node {
	switch n.Op {
	case ast.OpAlt, ast.OpRepeat:
		for i, c := range n.Children {
			n.Children[i] = g.convertTreeRepetitions(c)
		}
		return n
	case ast.OpConcat:
		children := make([]*ast.Node, 0, len(n.Children))
		var run []*ast.Node
		flush := func() {
			if len(run) == 0 {
				return
			}
			children = append(children, g.rewriteLiteralRun(run)...)
			run = nil
		}
		for _, c := range n.Children {
			c = g.convertTreeRepetitions(c)
			if c.Op == ast.OpLiteral {
				run = append(run, c)
				continue
			}
			flush()
			children = append(children, c)
		}
		flush()
		return ast.Concat(children...)
	}
	return n
}

func (g *Generator) rewriteLiteralRun(run []*ast.Node) []*ast.Node {
	if len(run) < 2 {
		return run
	}
	tokens := make([]grapheme.Token, len(run))
	for i, c := range run {
		tokens[i] = grapheme.Single(c.Lit)
	}
	converted := grapheme.ConvertRepetitions(tokens, g.Options.MinimumRepetitions, g.Options.MinimumSubstringLength)
	if len(converted) == len(tokens) {
		return run
	}
	out := make([]*ast.Node, len(converted))
	for i, tok := range converted {
		out[i] = ast.FromToken(tok)
	}
	return out
}
