// Package pressure_test validates the branch-and-bound search.
// Focus:
//  1. Canonical optima on the 10-valve AA..JJ example network.
//  2. Properties: zero budget, budget monotonicity, helper dominance.
//  3. Exactness vs. brute force on small synthetic networks.
//  4. Bound soundness along sampled search states.
//  5. Determinism under repeated runs.
package pressure_test

import (
	"testing"

	"github.com/emwalker/valvenet/pressure"
)

// ---------------------------------------------
// 1) Canonical optima on the example network.
// ---------------------------------------------

func TestMaxPressure_Example30(t *testing.T) {
	got, err := pressure.MaxPressure(exampleRecords(), 30, pressure.DefaultOptions())
	if err != nil {
		t.Fatalf("MaxPressure failed: %v", err)
	}
	if got != 1651 {
		t.Fatalf("MaxPressure(example, 30) = %d, want 1651", got)
	}
}

func TestMaxPressureWithHelper_Example26(t *testing.T) {
	got, err := pressure.MaxPressureWithHelper(exampleRecords(), 26, pressure.DefaultOptions())
	if err != nil {
		t.Fatalf("MaxPressureWithHelper failed: %v", err)
	}
	if got != 1707 {
		t.Fatalf("MaxPressureWithHelper(example, 26) = %d, want 1707", got)
	}
}

// ---------------------------------------------
// 2) Properties.
// ---------------------------------------------

func TestMaxPressure_ZeroBudget(t *testing.T) {
	for _, records := range [][]pressure.Record{nil, exampleRecords(), lineRecords(5, 9)} {
		got, err := pressure.MaxPressure(records, 0, pressure.DefaultOptions())
		if err != nil {
			t.Fatalf("MaxPressure failed: %v", err)
		}
		if got != 0 {
			t.Fatalf("MaxPressure(_, 0) = %d, want 0", got)
		}
	}
}

func TestMaxPressure_MonotoneInBudget(t *testing.T) {
	prev := 0
	for minutes := 0; minutes <= 30; minutes++ {
		got, err := pressure.MaxPressure(exampleRecords(), minutes, pressure.DefaultOptions())
		if err != nil {
			t.Fatalf("MaxPressure(%d) failed: %v", minutes, err)
		}
		if got < prev {
			t.Fatalf("optimum dropped from %d to %d when budget grew to %d", prev, got, minutes)
		}
		prev = got
	}
}

func TestMaxPressureWithHelper_DominatesSingleAgent(t *testing.T) {
	for _, minutes := range []int{0, 5, 10, 26} {
		single, err := pressure.MaxPressure(exampleRecords(), minutes, pressure.DefaultOptions())
		if err != nil {
			t.Fatalf("MaxPressure failed: %v", err)
		}
		pair, err := pressure.MaxPressureWithHelper(exampleRecords(), minutes, pressure.DefaultOptions())
		if err != nil {
			t.Fatalf("MaxPressureWithHelper failed: %v", err)
		}
		// Helper-does-nothing is a valid disjoint partition.
		if pair < single {
			t.Fatalf("two agents released %d over %d minutes, one agent %d", pair, minutes, single)
		}
	}
}

func TestMaxPressure_PassThroughRemovalIsNeutral(t *testing.T) {
	// Splicing a zero-flow valve out of a corridor leaves a shorter corridor;
	// the longer one must simply cost one extra minute of travel, never a
	// different structure. Compare against the hand-computed optimum.
	records := lineRecords(0, 10) // AA—BB(0)—CC(10): CC opens at minute 3
	got, err := pressure.MaxPressure(records, 10, pressure.DefaultOptions())
	if err != nil {
		t.Fatalf("MaxPressure failed: %v", err)
	}
	if want := 10 * (10 - 3); got != want {
		t.Fatalf("corridor optimum = %d, want %d", got, want)
	}
}

func TestMaxPressure_BadOptions(t *testing.T) {
	for _, opts := range []pressure.Options{
		{},                                  // zero value: no start valve
		{StartValve: "AA", PruneFactor: -1}, // factor below range
		{StartValve: "AA", PruneFactor: 2},  // factor above range
		{StartValve: "AA", ExactPairing: -1},
	} {
		if _, err := pressure.MaxPressure(exampleRecords(), 30, opts); err == nil {
			t.Fatalf("options %+v accepted, want ErrBadOptions", opts)
		}
	}
}

// ---------------------------------------------
// 3) Exactness vs. brute force.
// ---------------------------------------------

func TestMaxPressure_MatchesBruteForce_SmallNetworks(t *testing.T) {
	cases := [][]pressure.Record{
		lineRecords(7),
		lineRecords(3, 11),
		lineRecords(9, 1, 14),
		lineRecords(2, 2, 2, 30),
		exampleRecords(),
	}
	for _, records := range cases {
		net, err := pressure.NewReducedNetwork(records, "AA")
		if err != nil {
			t.Fatalf("NewReducedNetwork failed: %v", err)
		}
		for _, minutes := range []int{1, 4, 9, 17} {
			want := bruteBest(net, pressure.State{Position: net.Start(), Remaining: minutes})
			got, err := pressure.MaxPressure(records, minutes, pressure.DefaultOptions())
			if err != nil {
				t.Fatalf("MaxPressure failed: %v", err)
			}
			if got != want {
				t.Fatalf("pruned search found %d over %d minutes, brute force %d (k=%d)",
					got, minutes, want, net.Len())
			}
		}
	}
}

// ---------------------------------------------
// 4) Bound soundness.
// ---------------------------------------------

// walkStates collects every state of the unpruned search tree, depth-first.
func walkStates(n *pressure.ReducedNetwork, s pressure.State, out *[]pressure.State) {
	*out = append(*out, s)
	for _, c := range n.Successors(s) {
		walkStates(n, c, out)
	}
}

func TestBound_NeverUnderestimates(t *testing.T) {
	cases := [][]pressure.Record{
		lineRecords(3, 11),
		lineRecords(9, 1, 14),
		lineRecords(2, 2, 2, 30),
		lineRecords(5, 8, 13, 4, 6),
	}
	for _, records := range cases {
		net, err := pressure.NewReducedNetwork(records, "AA")
		if err != nil {
			t.Fatalf("NewReducedNetwork failed: %v", err)
		}
		var states []pressure.State
		walkStates(net, pressure.State{Position: net.Start(), Remaining: 13}, &states)
		for _, s := range states {
			if bound, want := net.Bound(s), bruteBest(net, s); bound < want {
				t.Fatalf("bound %d underestimates true optimum %d at %+v", bound, want, s)
			}
		}
	}
}

// ---------------------------------------------
// 5) Determinism.
// ---------------------------------------------

func TestMaxPressure_Determinism_Repeat4(t *testing.T) {
	records := exampleRecords()
	first := -1
	Repeat(t, 4, func(t *testing.T) {
		got, err := pressure.MaxPressure(records, 30, pressure.DefaultOptions())
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		if first == -1 {
			first = got
			return
		}
		if got != first {
			t.Fatalf("nondeterministic result: first %d, this run %d", first, got)
		}
	})
}

func TestMaxPressureWithHelper_Determinism_Repeat4(t *testing.T) {
	records := exampleRecords()
	first := -1
	Repeat(t, 4, func(t *testing.T) {
		got, err := pressure.MaxPressureWithHelper(records, 26, pressure.DefaultOptions())
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		if first == -1 {
			first = got
			return
		}
		if got != first {
			t.Fatalf("nondeterministic result: first %d, this run %d", first, got)
		}
	})
}
