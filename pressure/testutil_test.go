package pressure_test

import (
	"testing"

	"github.com/emwalker/valvenet/pressure"
)

// Shared fixtures and small helpers for the pressure test suite.

// exampleRecords returns the canonical 10-valve AA..JJ network. Known optima:
// 1651 pressure over 30 minutes for one agent, 1707 over 26 for two.
func exampleRecords() []pressure.Record {
	return []pressure.Record{
		{Name: "AA", Flow: 0, Neighbors: []string{"DD", "II", "BB"}},
		{Name: "BB", Flow: 13, Neighbors: []string{"CC", "AA"}},
		{Name: "CC", Flow: 2, Neighbors: []string{"DD", "BB"}},
		{Name: "DD", Flow: 20, Neighbors: []string{"CC", "AA", "EE"}},
		{Name: "EE", Flow: 3, Neighbors: []string{"FF", "DD"}},
		{Name: "FF", Flow: 0, Neighbors: []string{"EE", "GG"}},
		{Name: "GG", Flow: 0, Neighbors: []string{"FF", "HH"}},
		{Name: "HH", Flow: 22, Neighbors: []string{"GG"}},
		{Name: "II", Flow: 0, Neighbors: []string{"AA", "JJ"}},
		{Name: "JJ", Flow: 21, Neighbors: []string{"II"}},
	}
}

// lineRecords builds a path network AA—V1—V2—…—Vn with the given flows.
// AA has flow 0; flows[i] belongs to Vi+1.
func lineRecords(flows ...int) []pressure.Record {
	names := make([]string, len(flows)+1)
	names[0] = "AA"
	for i := range flows {
		names[i+1] = string(rune('B'+i)) + string(rune('B'+i))
	}
	records := make([]pressure.Record, 0, len(names))
	for i, name := range names {
		var neighbors []string
		if i > 0 {
			neighbors = append(neighbors, names[i-1])
		}
		if i < len(names)-1 {
			neighbors = append(neighbors, names[i+1])
		}
		flow := 0
		if i > 0 {
			flow = flows[i-1]
		}
		records = append(records, pressure.Record{Name: name, Flow: flow, Neighbors: neighbors})
	}

	return records
}

// bruteBest exhaustively searches from s with no pruning. Reference optimum
// for soundness and exactness checks on small networks only.
func bruteBest(n *pressure.ReducedNetwork, s pressure.State) int {
	best := s.Released
	for _, c := range n.Successors(s) {
		if v := bruteBest(n, c); v > best {
			best = v
		}
	}

	return best
}

// Repeat runs fn count times as subtests, for determinism checks.
func Repeat(t *testing.T, count int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < count; i++ {
		t.Run("", fn)
	}
}
