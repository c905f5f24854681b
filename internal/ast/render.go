package ast

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Config controls rendering of the expression tree.
type Config struct {
	Anchors         bool
	Capturing       bool
	CaseInsensitive bool
	Verbose         bool
	EscapeNonASCII  bool
	SurrogatePairs  bool
}

// Render serializes the tree to pattern text under the given configuration.
func Render(n *Node, cfg Config) string {
	if cfg.Verbose {
		return renderVerbose(n, cfg)
	}
	var sb strings.Builder
	if cfg.CaseInsensitive {
		sb.WriteString("(?i)")
	}
	if cfg.Anchors {
		sb.WriteByte('^')
	}
	sb.WriteString(render(n, cfg))
	if cfg.Anchors {
		sb.WriteByte('$')
	}
	return sb.String()
}

func render(n *Node, cfg Config) string {
	switch n.Op {
	case OpEmpty:
		return ""
	case OpLiteral:
		return escapeCluster(n.Lit, cfg, false)
	case OpClass:
		return n.Lit
	case OpCharSet:
		return renderCharSet(n, cfg)
	case OpConcat:
		var sb strings.Builder
		for _, c := range n.Children {
			sb.WriteString(render(c, cfg))
		}
		return sb.String()
	case OpAlt:
		return group(strings.Join(sortedBranches(n, cfg), "|"), cfg)
	case OpRepeat:
		child := n.Children[0]
		body := render(child, cfg)
		if quantifierNeedsGroup(child, cfg) {
			body = group(body, cfg)
		}
		return body + quantifier(n.Min, n.Max)
	}
	return ""
}

// sortedBranches renders alternation branches in the deterministic output
// order: longer rendering first, ties lexicographic.
func sortedBranches(n *Node, cfg Config) []string {
	branches := make([]string, len(n.Children))
	for i, c := range n.Children {
		branches[i] = render(c, cfg)
	}
	sort.SliceStable(branches, func(i, j int) bool {
		if len(branches[i]) != len(branches[j]) {
			return len(branches[i]) > len(branches[j])
		}
		return branches[i] < branches[j]
	})
	return branches
}

// quantifierNeedsGroup reports whether a quantified operand must be wrapped.
// Single-scalar literals and bracket expressions are atoms already, and an
// alternation renders its own group; multi-scalar clusters, scalars escaped
// as surrogate pairs, shorthand escapes and other compound nodes are grouped.
func quantifierNeedsGroup(n *Node, cfg Config) bool {
	switch n.Op {
	case OpCharSet, OpAlt:
		return false
	case OpLiteral:
		r, size := utf8.DecodeRuneInString(n.Lit)
		if size != len(n.Lit) {
			return true
		}
		return cfg.EscapeNonASCII && cfg.SurrogatePairs && r > 0xFFFF
	}
	return true
}

func group(body string, cfg Config) string {
	if cfg.Capturing {
		return "(" + body + ")"
	}
	return "(?:" + body + ")"
}

func quantifier(min, max int) string {
	switch {
	case min == 0 && max == 1:
		return "?"
	case min == 0 && max == Unbounded:
		return "*"
	case min == 1 && max == Unbounded:
		return "+"
	case max == Unbounded:
		return fmt.Sprintf("{%d,}", min)
	case min == max:
		return fmt.Sprintf("{%d}", min)
	}
	return fmt.Sprintf("{%d,%d}", min, max)
}

func renderCharSet(n *Node, cfg Config) string {
	var sb strings.Builder
	sb.WriteByte('[')
	if n.Negated {
		sb.WriteByte('^')
	}
	for _, r := range n.Ranges {
		switch {
		case r.Lo == r.Hi:
			sb.WriteString(escapeCluster(string(r.Lo), cfg, true))
		case r.Hi == r.Lo+1:
			sb.WriteString(escapeCluster(string(r.Lo), cfg, true))
			sb.WriteString(escapeCluster(string(r.Hi), cfg, true))
		default:
			sb.WriteString(escapeCluster(string(r.Lo), cfg, true))
			sb.WriteByte('-')
			sb.WriteString(escapeCluster(string(r.Hi), cfg, true))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// Verbose mode emits the pattern across multiple lines: two spaces of indent
// per nesting level, every alternative on its own line with a lone `|`
// between alternatives, and group delimiters on their own lines.

func renderVerbose(n *Node, cfg Config) string {
	flags := "(?x)"
	if cfg.CaseInsensitive {
		flags = "(?ix)"
	}
	lines := []string{flags}
	depth := 0
	if cfg.Anchors {
		lines = append(lines, "^")
		depth = 1
	}
	if n.Op != OpEmpty {
		lines = append(lines, verboseLines(n, depth, cfg)...)
	}
	if cfg.Anchors {
		lines = append(lines, "$")
	}
	return strings.Join(lines, "\n")
}

// containsAlt reports whether the subtree forces a multi-line block.
func containsAlt(n *Node) bool {
	if n.Op == OpAlt {
		return true
	}
	for _, c := range n.Children {
		if containsAlt(c) {
			return true
		}
	}
	return false
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func verboseLines(n *Node, depth int, cfg Config) []string {
	if !containsAlt(n) {
		return []string{indent(depth) + render(n, cfg)}
	}
	switch n.Op {
	case OpAlt:
		lines := []string{indent(depth) + groupOpen(cfg)}
		order := sortedChildren(n, cfg)
		for i, c := range order {
			if i > 0 {
				lines = append(lines, indent(depth+1)+"|")
			}
			lines = append(lines, verboseLines(c, depth+1, cfg)...)
		}
		return append(lines, indent(depth)+")")
	case OpConcat:
		var lines []string
		var run []string
		flush := func() {
			if len(run) > 0 {
				lines = append(lines, indent(depth)+strings.Join(run, ""))
				run = nil
			}
		}
		for _, c := range n.Children {
			if containsAlt(c) {
				flush()
				lines = append(lines, verboseLines(c, depth, cfg)...)
			} else {
				run = append(run, render(c, cfg))
			}
		}
		flush()
		return lines
	case OpRepeat:
		child := n.Children[0]
		if child.Op == OpAlt {
			lines := verboseLines(child, depth, cfg)
			lines[len(lines)-1] += quantifier(n.Min, n.Max)
			return lines
		}
		lines := []string{indent(depth) + groupOpen(cfg)}
		lines = append(lines, verboseLines(child, depth+1, cfg)...)
		return append(lines, indent(depth)+")"+quantifier(n.Min, n.Max))
	}
	return []string{indent(depth) + render(n, cfg)}
}

// sortedChildren orders alternation branches like sortedBranches but keeps
// the nodes for block rendering.
func sortedChildren(n *Node, cfg Config) []*Node {
	order := append([]*Node(nil), n.Children...)
	sort.SliceStable(order, func(i, j int) bool {
		a, b := render(order[i], cfg), render(order[j], cfg)
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	return order
}

func groupOpen(cfg Config) string {
	if cfg.Capturing {
		return "("
	}
	return "(?:"
}
