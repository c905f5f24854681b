package dfa

import "sort"

// Minimize refines the state partition until no two states are
// Myhill-Nerode equivalent, then rebuilds the automaton with dense ids.
// Classes are renumbered by their smallest original state id so that the
// minimized automaton inherits the trie's deterministic ordering. The
// transition function may be partial; a missing transition distinguishes a
// state from one that moves into the processed block, which the
// preimage-based split below handles without materializing a sink.
func (d *DFA) Minimize() {
	n := len(d.states)
	if n <= 1 {
		return
	}
	symbols, _ := d.alphabet()

	// inverse transition index, built once: preimage[sym][to] = sources
	preimage := make(map[string][][]int, len(symbols))
	for _, sym := range symbols {
		preimage[sym] = make([][]int, n)
	}
	for _, s := range d.states {
		for key, tr := range s.next {
			preimage[key][tr.to] = append(preimage[key][tr.to], s.id)
		}
	}

	classOf := make([]int, n)
	var blocks [][]int
	var accepting, rejecting []int
	for _, s := range d.states {
		if s.accept {
			accepting = append(accepting, s.id)
		} else {
			rejecting = append(rejecting, s.id)
		}
	}
	addBlock := func(members []int) int {
		id := len(blocks)
		blocks = append(blocks, members)
		for _, q := range members {
			classOf[q] = id
		}
		return id
	}
	var worklist []int
	if len(accepting) > 0 {
		worklist = append(worklist, addBlock(accepting))
	}
	if len(rejecting) > 0 {
		worklist = append(worklist, addBlock(rejecting))
	}

	inSplitter := make([]bool, n)
	for len(worklist) > 0 {
		splitter := worklist[0]
		worklist = worklist[1:]
		splitterMembers := append([]int(nil), blocks[splitter]...)

		for _, sym := range symbols {
			for i := range inSplitter {
				inSplitter[i] = false
			}
			var touched []int
			for _, q := range splitterMembers {
				for _, p := range preimage[sym][q] {
					if !inSplitter[p] {
						inSplitter[p] = true
						touched = append(touched, p)
					}
				}
			}
			if len(touched) == 0 {
				continue
			}
			affected := make(map[int]struct{})
			for _, p := range touched {
				affected[classOf[p]] = struct{}{}
			}
			ids := make([]int, 0, len(affected))
			for id := range affected {
				ids = append(ids, id)
			}
			sort.Ints(ids)
			for _, id := range ids {
				var inside, outside []int
				for _, q := range blocks[id] {
					if inSplitter[q] {
						inside = append(inside, q)
					} else {
						outside = append(outside, q)
					}
				}
				if len(inside) == 0 || len(outside) == 0 {
					continue
				}
				blocks[id] = inside
				newID := addBlock(outside)
				worklist = append(worklist, id, newID)
			}
		}
	}

	d.rebuild(classOf, blocks)
}

// rebuild renumbers equivalence classes by smallest member id and rewires
// transitions through the class representatives.
func (d *DFA) rebuild(classOf []int, blocks [][]int) {
	type classInfo struct {
		id  int
		rep int
	}
	infos := make([]classInfo, 0, len(blocks))
	for id, members := range blocks {
		rep := members[0]
		for _, q := range members {
			if q < rep {
				rep = q
			}
		}
		infos = append(infos, classInfo{id: id, rep: rep})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].rep < infos[j].rep })

	dense := make([]int, len(blocks))
	for newID, info := range infos {
		dense[info.id] = newID
	}

	states := make([]*state, len(infos))
	for newID, info := range infos {
		old := d.states[info.rep]
		s := &state{id: newID, accept: old.accept, next: make(map[string]transition, len(old.next))}
		for _, key := range old.symbols {
			tr := old.next[key]
			s.next[key] = transition{label: tr.label, to: dense[classOf[tr.to]]}
			s.symbols = append(s.symbols, key)
		}
		states[newID] = s
	}
	d.states = states
}
