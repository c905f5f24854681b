package grapheme

import "sort"

// suffixArray indexes a sequence of grapheme clusters for fast
// longest-common-extension queries. Built once per example with prefix
// doubling, Kasai LCP and a sparse-table RMQ, so commonExtension is O(1).
type suffixArray struct {
	n      int
	sa     []int
	inv    []int
	lcp    []int   // lcp[i] = longest common prefix of suffixes sa[i-1], sa[i]
	sparse [][]int // RMQ table over lcp
	log2   []int
}

func newSuffixArray(parts []string) *suffixArray {
	n := len(parts)
	s := &suffixArray{n: n}
	if n == 0 {
		return s
	}
	s.sa = make([]int, n)
	rank := make([]int, n)

	// initial ranks from the sorted distinct clusters
	sorted := append([]string(nil), parts...)
	sort.Strings(sorted)
	index := make(map[string]int, n)
	next := 0
	for i, p := range sorted {
		if i == 0 || p != sorted[i-1] {
			index[p] = next
			next++
		}
	}
	for i := range parts {
		rank[i] = index[parts[i]]
		s.sa[i] = i
	}

	tmp := make([]int, n)
	for k := 1; n > 1; k *= 2 {
		less := func(a, b int) bool {
			if rank[a] != rank[b] {
				return rank[a] < rank[b]
			}
			ra, rb := -1, -1
			if a+k < n {
				ra = rank[a+k]
			}
			if b+k < n {
				rb = rank[b+k]
			}
			return ra < rb
		}
		sort.Slice(s.sa, func(i, j int) bool { return less(s.sa[i], s.sa[j]) })
		tmp[s.sa[0]] = 0
		for i := 1; i < n; i++ {
			tmp[s.sa[i]] = tmp[s.sa[i-1]]
			if less(s.sa[i-1], s.sa[i]) {
				tmp[s.sa[i]]++
			}
		}
		copy(rank, tmp)
		if rank[s.sa[n-1]] == n-1 {
			break
		}
	}
	s.inv = rank

	// Kasai
	s.lcp = make([]int, n)
	h := 0
	for i := 0; i < n; i++ {
		if s.inv[i] == 0 {
			h = 0
			continue
		}
		j := s.sa[s.inv[i]-1]
		for i+h < n && j+h < n && parts[i+h] == parts[j+h] {
			h++
		}
		s.lcp[s.inv[i]] = h
		if h > 0 {
			h--
		}
	}

	s.buildRMQ()
	return s
}

func (s *suffixArray) buildRMQ() {
	n := s.n
	s.log2 = make([]int, n+1)
	for i := 2; i <= n; i++ {
		s.log2[i] = s.log2[i/2] + 1
	}
	levels := s.log2[n] + 1
	s.sparse = make([][]int, levels)
	s.sparse[0] = append([]int(nil), s.lcp...)
	for j := 1; j < levels; j++ {
		width := 1 << j
		if n-width+1 <= 0 {
			break
		}
		row := make([]int, n-width+1)
		prev := s.sparse[j-1]
		for i := range row {
			row[i] = min(prev[i], prev[i+width/2])
		}
		s.sparse[j] = row
	}
}

// rangeMin returns the minimum of lcp[lo..hi] inclusive.
func (s *suffixArray) rangeMin(lo, hi int) int {
	j := s.log2[hi-lo+1]
	return min(s.sparse[j][lo], s.sparse[j][hi-(1<<j)+1])
}

// commonExtension returns the length of the longest common prefix of the
// suffixes starting at i and j.
func (s *suffixArray) commonExtension(i, j int) int {
	if i == j {
		return s.n - i
	}
	ri, rj := s.inv[i], s.inv[j]
	if ri > rj {
		ri, rj = rj, ri
	}
	return s.rangeMin(ri+1, rj)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
