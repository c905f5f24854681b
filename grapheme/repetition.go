package grapheme

import "sort"

type runCandidate struct {
	start  int
	length int
	count  int
}

// ConvertRepetitions rewrites runs of repeated adjacent substrings as
// quantified tokens. A run qualifies when the repeated substring spans at
// least minLength clusters and repeats strictly more than minRepetitions
// times. Competing candidates are ranked by longer substring, then longer
// run, then earlier offset, and selected greedily without overlap, so the
// rewrite is deterministic.
//
// The sequence must consist of plain single-cluster tokens; anything already
// quantified is returned unchanged.
func ConvertRepetitions(tokens []Token, minRepetitions, minLength int) []Token {
	n := len(tokens)
	if n < 2 {
		return tokens
	}
	parts := make([]string, n)
	for i, t := range tokens {
		if t.Quantified() || len(t.Parts) != 1 {
			return tokens
		}
		parts[i] = t.Parts[0]
	}

	sa := newSuffixArray(parts)
	var candidates []runCandidate
	for i := 0; i < n; i++ {
		for l := minLength; i+2*l <= n; l++ {
			ext := sa.commonExtension(i, i+l)
			count := ext/l + 1
			if count > minRepetitions && count >= 2 {
				candidates = append(candidates, runCandidate{start: i, length: l, count: count})
			}
		}
	}
	if len(candidates) == 0 {
		return tokens
	}

	sort.Slice(candidates, func(a, b int) bool {
		ca, cb := candidates[a], candidates[b]
		if ca.length != cb.length {
			return ca.length > cb.length
		}
		if ca.count != cb.count {
			return ca.count > cb.count
		}
		return ca.start < cb.start
	})

	used := make([]bool, n)
	selected := make(map[int]runCandidate)
	for _, c := range candidates {
		end := c.start + c.length*c.count
		free := true
		for p := c.start; p < end; p++ {
			if used[p] {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		for p := c.start; p < end; p++ {
			used[p] = true
		}
		selected[c.start] = c
	}

	out := make([]Token, 0, n)
	for i := 0; i < n; {
		if c, ok := selected[i]; ok {
			run := append([]string(nil), parts[i:i+c.length]...)
			out = append(out, Token{Parts: run, Min: c.count, Max: c.count})
			i += c.length * c.count
		} else {
			out = append(out, tokens[i])
			i++
		}
	}
	return out
}
