// Package ast models the synthesized regular expression as a tree of tagged
// nodes and renders it to pattern text.
package ast

import (
	"sort"
	"strconv"
	"strings"

	"github.com/projectdiscovery/rexgen/grapheme"
)

// Op discriminates the node variants. The set is closed; folder and renderer
// switch over it exhaustively.
type Op uint8

const (
	OpEmpty   Op = iota // matches the empty string
	OpLiteral           // one grapheme cluster
	OpClass             // shorthand class escape (\d \D \w \W \s \S)
	OpCharSet           // bracket expression over scalar ranges
	OpConcat            // ordered sequence, at least two children
	OpAlt               // alternation, at least two children
	OpRepeat            // quantified child
)

// Unbounded marks a repetition without an upper limit.
const Unbounded = -1

// RuneRange is a closed scalar range inside a bracket expression.
type RuneRange struct {
	Lo, Hi rune
}

// Node is one expression tree node. Which fields are meaningful depends on
// Op. Children are owned by exactly one parent; labels that end up on more
// than one edge during state elimination are cloned first.
type Node struct {
	Op       Op
	Lit      string      // OpLiteral cluster or OpClass escape
	Ranges   []RuneRange // OpCharSet
	Negated  bool        // OpCharSet
	Min, Max int         // OpRepeat bounds, Max may be Unbounded
	Children []*Node
}

// Empty returns a node matching ε.
func Empty() *Node {
	return &Node{Op: OpEmpty}
}

// Literal returns a node matching one grapheme cluster.
func Literal(cluster string) *Node {
	return &Node{Op: OpLiteral, Lit: cluster}
}

// Class returns a shorthand class node for an escape such as `\d`.
func Class(escape string) *Node {
	return &Node{Op: OpClass, Lit: escape}
}

// CharSet returns a bracket expression node.
func CharSet(ranges []RuneRange, negated bool) *Node {
	return &Node{Op: OpCharSet, Ranges: ranges, Negated: negated}
}

// Concat builds a sequence node. ε children are elided, nested sequences are
// flattened, and degenerate sequences collapse to their only child.
func Concat(children ...*Node) *Node {
	flat := make([]*Node, 0, len(children))
	for _, c := range children {
		switch {
		case c == nil || c.Op == OpEmpty:
		case c.Op == OpConcat:
			flat = append(flat, c.Children...)
		default:
			flat = append(flat, c)
		}
	}
	switch len(flat) {
	case 0:
		return Empty()
	case 1:
		return flat[0]
	}
	return &Node{Op: OpConcat, Children: flat}
}

// Alt builds an alternation node. Nested alternations are flattened and
// structurally equal branches deduplicated, keeping the first occurrence.
func Alt(children ...*Node) *Node {
	flat := make([]*Node, 0, len(children))
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.Op == OpAlt {
			flat = append(flat, c.Children...)
		} else {
			flat = append(flat, c)
		}
	}
	seen := make(map[string]struct{}, len(flat))
	uniq := flat[:0]
	for _, c := range flat {
		k := c.identity()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		uniq = append(uniq, c)
	}
	switch len(uniq) {
	case 0:
		return Empty()
	case 1:
		return uniq[0]
	}
	return &Node{Op: OpAlt, Children: uniq}
}

// Repeat builds a quantified node. Repeating ε stays ε, and the trivial
// {1,1} quantifier is dropped.
func Repeat(child *Node, min, max int) *Node {
	if child == nil || child.Op == OpEmpty {
		return Empty()
	}
	if min == 1 && max == 1 {
		return child
	}
	return &Node{Op: OpRepeat, Min: min, Max: max, Children: []*Node{child}}
}

// Star is the Kleene closure used for self-loop labels during state
// elimination.
func Star(child *Node) *Node {
	return Repeat(child, 0, Unbounded)
}

// Optional wraps a node in a {0,1} quantifier.
func Optional(child *Node) *Node {
	return Repeat(child, 0, 1)
}

// FromToken converts a DFA edge label into its expression subtree.
func FromToken(t grapheme.Token) *Node {
	units := make([]*Node, len(t.Parts))
	for i, p := range t.Parts {
		if grapheme.IsClassEscape(p) {
			units[i] = Class(p)
		} else {
			units[i] = Literal(p)
		}
	}
	seq := Concat(units...)
	if !t.Quantified() {
		return seq
	}
	return Repeat(seq, t.Min, t.Max)
}

// Clone deep-copies the subtree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	cp := *n
	if n.Ranges != nil {
		cp.Ranges = append([]RuneRange(nil), n.Ranges...)
	}
	if n.Children != nil {
		cp.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			cp.Children[i] = c.Clone()
		}
	}
	return &cp
}

// identity returns a structural key used to deduplicate alternation branches.
func (n *Node) identity() string {
	var sb strings.Builder
	n.writeIdentity(&sb)
	return sb.String()
}

func (n *Node) writeIdentity(sb *strings.Builder) {
	sb.WriteByte(byte('0' + n.Op))
	switch n.Op {
	case OpLiteral, OpClass:
		sb.WriteString(n.Lit)
	case OpCharSet:
		if n.Negated {
			sb.WriteByte('^')
		}
		ranges := append([]RuneRange(nil), n.Ranges...)
		sort.Slice(ranges, func(i, j int) bool { return ranges[i].Lo < ranges[j].Lo })
		for _, r := range ranges {
			sb.WriteRune(r.Lo)
			sb.WriteByte('-')
			sb.WriteRune(r.Hi)
		}
	case OpRepeat:
		sb.WriteString(strconv.Itoa(n.Min))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(n.Max))
	}
	sb.WriteByte('(')
	for _, c := range n.Children {
		c.writeIdentity(sb)
	}
	sb.WriteByte(')')
}
