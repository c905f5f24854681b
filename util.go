package rexgen

import (
	"sort"

	sliceutil "github.com/projectdiscovery/utils/slice"
)

// normalizeExamples collapses duplicates and fixes the processing order so
// that synthesis is invariant under permutation and repetition of the input.
func normalizeExamples(examples []string) []string {
	out := sliceutil.Dedupe(append([]string(nil), examples...))
	sort.Strings(out)
	return out
}
