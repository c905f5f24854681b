package dfa

import (
	"sort"

	"github.com/projectdiscovery/rexgen/internal/ast"
)

// gnfa is the generalized automaton used during state elimination: a fresh
// start and final state around the DFA, with expression-labeled edges merged
// per (from, to) pair.
type gnfa struct {
	start, final int
	edges        []map[int]*ast.Node
}

func (g *gnfa) add(from, to int, label *ast.Node) {
	if existing, ok := g.edges[from][to]; ok {
		g.edges[from][to] = ast.Alt(existing, label)
		return
	}
	g.edges[from][to] = label
}

// Regex reduces the automaton to a single expression by state elimination.
// States are eliminated in ascending order of in-degree × out-degree
// (self-loops excluded), ties broken by state id.
func (d *DFA) Regex() *ast.Node {
	n := len(d.states)
	g := &gnfa{
		start: n,
		final: n + 1,
		edges: make([]map[int]*ast.Node, n+2),
	}
	for i := range g.edges {
		g.edges[i] = make(map[int]*ast.Node)
	}
	for _, s := range d.states {
		for _, key := range s.symbols {
			tr := s.next[key]
			g.add(s.id, tr.to, ast.FromToken(tr.label))
		}
	}
	g.add(g.start, 0, ast.Empty())
	for _, s := range d.states {
		if s.accept {
			g.add(s.id, g.final, ast.Empty())
		}
	}

	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}
	for len(remaining) > 0 {
		q := g.pick(remaining)
		g.eliminate(q)
		next := remaining[:0]
		for _, id := range remaining {
			if id != q {
				next = append(next, id)
			}
		}
		remaining = next
	}

	if result, ok := g.edges[g.start][g.final]; ok {
		return result
	}
	return ast.Empty()
}

// pick returns the cheapest state to eliminate next.
func (g *gnfa) pick(remaining []int) int {
	best, bestCost := -1, -1
	for _, q := range remaining {
		in, out := 0, 0
		for to := range g.edges[q] {
			if to != q {
				out++
			}
		}
		for from := range g.edges {
			if from == q {
				continue
			}
			if _, ok := g.edges[from][q]; ok {
				in++
			}
		}
		cost := in * out
		if best == -1 || cost < bestCost || (cost == bestCost && q < best) {
			best, bestCost = q, cost
		}
	}
	return best
}

// eliminate removes q, rewriting every p → q → r path as p → r labeled
// A·L*·B where L is q's self-loop. Labels reaching more than one new edge
// are cloned so the final expression stays a tree.
func (g *gnfa) eliminate(q int) {
	loop := ast.Empty()
	if self, ok := g.edges[q][q]; ok {
		loop = ast.Star(self)
	}

	var preds []int
	for from := range g.edges {
		if from == q {
			continue
		}
		if _, ok := g.edges[from][q]; ok {
			preds = append(preds, from)
		}
	}
	sort.Ints(preds)
	var succs []int
	for to := range g.edges[q] {
		if to != q {
			succs = append(succs, to)
		}
	}
	sort.Ints(succs)

	for _, p := range preds {
		in := g.edges[p][q]
		for _, r := range succs {
			out := g.edges[q][r]
			g.add(p, r, ast.Concat(in.Clone(), loop.Clone(), out.Clone()))
		}
		delete(g.edges[p], q)
	}
	g.edges[q] = make(map[int]*ast.Node)
}
