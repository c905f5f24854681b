// Package dfa builds the minimal deterministic automaton accepting exactly
// the example token sequences and converts it into an expression tree.
package dfa

import (
	"sort"

	"github.com/projectdiscovery/rexgen/grapheme"
)

type transition struct {
	label grapheme.Token
	to    int
}

type state struct {
	id      int
	accept  bool
	next    map[string]transition
	symbols []string // insertion-ordered transition keys
}

// DFA with dense state ids. State 0 is the start state; ids follow trie
// insertion order, which later fixes every tie-break in the pipeline.
type DFA struct {
	states []*state
}

func (d *DFA) newState() *state {
	s := &state{id: len(d.states), next: make(map[string]transition)}
	d.states = append(d.states, s)
	return s
}

// Len returns the number of states.
func (d *DFA) Len() int {
	return len(d.states)
}

// Accepts reports whether the automaton accepts the given token sequence.
func (d *DFA) Accepts(seq []grapheme.Token) bool {
	cur := 0
	for _, tok := range seq {
		tr, ok := d.states[cur].next[tok.Key()]
		if !ok {
			return false
		}
		cur = tr.to
	}
	return d.states[cur].accept
}

// Build constructs a trie over the token sequences. The trie is already
// deterministic; an empty sequence marks the start state accepting.
func Build(sequences [][]grapheme.Token) *DFA {
	d := &DFA{}
	d.newState()
	for _, seq := range sequences {
		cur := d.states[0]
		for _, tok := range seq {
			key := tok.Key()
			if tr, ok := cur.next[key]; ok {
				cur = d.states[tr.to]
				continue
			}
			next := d.newState()
			cur.next[key] = transition{label: tok, to: next.id}
			cur.symbols = append(cur.symbols, key)
			cur = next
		}
		cur.accept = true
	}
	return d
}

// alphabet returns the sorted set of transition keys with their labels.
func (d *DFA) alphabet() ([]string, map[string]grapheme.Token) {
	labels := make(map[string]grapheme.Token)
	for _, s := range d.states {
		for key, tr := range s.next {
			labels[key] = tr.label
		}
	}
	keys := make([]string, 0, len(labels))
	for key := range labels {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, labels
}
