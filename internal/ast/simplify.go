package ast

import (
	"sort"
	"unicode/utf8"
)

// Simplify normalizes a tree after state elimination: sequences and
// alternations are flattened, an ε branch turns its alternation into a {0,1}
// quantifier, and nested fixed-count quantifiers are multiplied out.
func Simplify(n *Node) *Node {
	switch n.Op {
	case OpConcat:
		children := make([]*Node, len(n.Children))
		for i, c := range n.Children {
			children[i] = Simplify(c)
		}
		return Concat(children...)
	case OpAlt:
		children := make([]*Node, 0, len(n.Children))
		optional := false
		for _, c := range n.Children {
			c = Simplify(c)
			if c.Op == OpEmpty {
				optional = true
				continue
			}
			children = append(children, c)
		}
		alt := Alt(children...)
		if optional {
			return Optional(alt)
		}
		return alt
	case OpRepeat:
		child := Simplify(n.Children[0])
		if child.Op == OpRepeat && child.Min == child.Max && n.Min == n.Max && child.Max != Unbounded {
			return Repeat(child.Children[0], n.Min*child.Min, n.Max*child.Max)
		}
		if child.Op == OpRepeat && child.Min == 0 && child.Max == 1 && n.Min == 0 && n.Max == 1 {
			return child
		}
		return Repeat(child, n.Min, n.Max)
	default:
		return n
	}
}

// CoalesceClasses rewrites alternations of single-scalar literals into
// bracket expressions, coalescing adjacent scalars into ranges: {c,d,e}
// becomes [c-e]. Branches that are already non-negated bracket expressions
// join the merge. Other branches are kept as they are.
func CoalesceClasses(n *Node) *Node {
	switch n.Op {
	case OpConcat, OpRepeat:
		for i, c := range n.Children {
			n.Children[i] = CoalesceClasses(c)
		}
		return n
	case OpAlt:
		for i, c := range n.Children {
			n.Children[i] = CoalesceClasses(c)
		}
		var scalars []rune
		var ranges []RuneRange
		rest := make([]*Node, 0, len(n.Children))
		mergeable := 0
		for _, c := range n.Children {
			switch {
			case c.Op == OpLiteral && utf8.RuneCountInString(c.Lit) == 1:
				r, _ := utf8.DecodeRuneInString(c.Lit)
				scalars = append(scalars, r)
				mergeable++
			case c.Op == OpCharSet && !c.Negated:
				ranges = append(ranges, c.Ranges...)
				mergeable++
			default:
				rest = append(rest, c)
			}
		}
		if mergeable < 2 {
			return n
		}
		set := CharSet(coalesceRanges(scalars, ranges), false)
		if len(rest) == 0 {
			return set
		}
		return Alt(append(rest, set)...)
	default:
		return n
	}
}

// coalesceRanges merges scalars and ranges into a minimal sorted range set.
func coalesceRanges(scalars []rune, ranges []RuneRange) []RuneRange {
	all := append([]RuneRange(nil), ranges...)
	for _, r := range scalars {
		all = append(all, RuneRange{Lo: r, Hi: r})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Lo != all[j].Lo {
			return all[i].Lo < all[j].Lo
		}
		return all[i].Hi < all[j].Hi
	})
	merged := all[:0]
	for _, r := range all {
		if len(merged) > 0 && r.Lo <= merged[len(merged)-1].Hi+1 {
			if r.Hi > merged[len(merged)-1].Hi {
				merged[len(merged)-1].Hi = r.Hi
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
