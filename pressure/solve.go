// Package pressure - canonical entry points.
//
// MaxPressure and MaxPressureWithHelper are the two operations this package
// exposes: single-agent and two-agent optimal pressure release. Both are
// deterministic and side-effect free; repeated calls on the same records and
// budget return identical results.

package pressure

// strictFactor is the single-agent pruning threshold: discard a subtree as
// soon as its bound cannot exceed the incumbent.
const strictFactor = 1.0

// MaxPressure returns the maximum total pressure a single agent can release
// from the network described by records within the given time budget.
//
// Contracts:
//   - records may be empty: an empty network is valid and yields 0;
//   - minutes ≤ 0 yields 0 for every network;
//   - configuration errors (see types.go) surface here, before any search.
//
// Complexity: O(V³) precompute + exponential-in-k search tamed by pruning.
func MaxPressure(records []Record, minutes int, opts Options) (int, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}
	net, err := NewReducedNetwork(records, opts.StartValve)
	if err != nil {
		return 0, err
	}
	if minutes <= 0 {
		return 0, nil
	}

	return newEngine(net, strictFactor, nil).run(minutes), nil
}

// MaxPressureWithHelper returns the maximum combined pressure two agents,
// each walking the network independently over the same time budget, can
// release by opening disjoint valve sets.
//
// The per-mask table is filled by a single search using a looser pruning
// threshold than MaxPressure (Options.PruneFactor): a mask that is
// sub-optimal on its own may still pair well with a complementary mask.
// For networks smaller than Options.ExactPairing the table pass disables
// pruning entirely, so the optimal pairing can never be lost to the
// empirically tuned factor.
//
// Contracts: as MaxPressure; additionally the result is always ≥ the
// single-agent optimum for the same budget (helper-does-nothing is a valid
// partition).
func MaxPressureWithHelper(records []Record, minutes int, opts Options) (int, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}
	net, err := NewReducedNetwork(records, opts.StartValve)
	if err != nil {
		return 0, err
	}
	if minutes <= 0 {
		return 0, nil
	}

	factor := opts.PruneFactor
	if net.k < opts.ExactPairing {
		factor = 0 // exhaustive table fill on small networks
	}
	table := make([]int, 1<<net.k)
	newEngine(net, factor, table).run(minutes)

	return bestDisjointPair(table), nil
}
