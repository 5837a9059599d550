// Package pressure — two-agent combiner.
//
// One search over the shorter budget fills a dense 2^k table mapping each
// exact visited set to the best pressure any schedule ending with that set
// achieves. Two agents walking disjoint valve sets release additive
// pressure, so the two-agent optimum is the best sum over disjoint mask
// pairs — found here by a sorted scan with early termination.

package pressure

import "sort"

// maskValue pairs a visited set with the best pressure recorded for it.
type maskValue struct {
	mask  uint16
	value int
}

// byValueDesc orders entries by descending value, mask ascending on ties,
// keeping the scan deterministic.
type byValueDesc []maskValue

func (b byValueDesc) Len() int { return len(b) }
func (b byValueDesc) Less(i, j int) bool {
	if b[i].value == b[j].value {
		return b[i].mask < b[j].mask
	}

	return b[i].value > b[j].value
}
func (b byValueDesc) Swap(i, j int) { b[i], b[j] = b[j], b[i] }

// bestDisjointPair returns the best combined pressure two agents can release
// over disjoint valve sets, given the filled per-mask table.
//
// A lone mask is a valid partition too (the helper opens nothing), so the
// scan is seeded with the single best value. Because entries are sorted by
// descending value, the outer loop stops once 2×value[i] cannot beat the
// best candidate, and the inner loop stops once value[i]+value[j] cannot.
//
// Complexity: O(m log m + p) where m is the number of positive entries and
// p the pairs actually inspected before the cutoffs fire.
func bestDisjointPair(table []int) int {
	entries := make([]maskValue, 0, len(table))
	var mask int
	for mask = range table {
		if table[mask] > 0 {
			entries = append(entries, maskValue{mask: uint16(mask), value: table[mask]})
		}
	}
	if len(entries) == 0 {
		return 0
	}
	sort.Sort(byValueDesc(entries))

	best := entries[0].value // helper-does-nothing partition
	var i, j int
	for i = 0; i < len(entries); i++ {
		if 2*entries[i].value <= best {
			break // no pair from here on can improve
		}
		for j = i + 1; j < len(entries); j++ {
			if entries[i].value+entries[j].value <= best {
				break // sorted: later j only get worse
			}
			if entries[i].mask&entries[j].mask != 0 {
				continue // agents must open disjoint sets
			}
			best = entries[i].value + entries[j].value
			break // first disjoint partner is the best partner for this i
		}
	}

	return best
}
