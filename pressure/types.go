package pressure

import "errors"

// MaxValves is the widest reduced network the bitmask search state supports.
// A ReducedNetwork with more interesting valves cannot be constructed.
const MaxValves = 16

// Sentinel errors for network construction and option validation.
// Construction errors are configuration errors: they are detected once, at
// NewReducedNetwork, and abort the whole computation. Once a ReducedNetwork
// exists the search cannot fail.
var (
	// ErrTooManyValves is returned when the interesting-valve count exceeds
	// MaxValves and no bitmask can index the search state.
	ErrTooManyValves = errors.New("pressure: interesting valve count exceeds mask width")

	// ErrStartNotFound is returned when the configured start valve is absent
	// from the input records.
	ErrStartNotFound = errors.New("pressure: start valve not present in records")

	// ErrUnknownNeighbor is returned when a tunnel references a valve name
	// that no record defines.
	ErrUnknownNeighbor = errors.New("pressure: tunnel references unknown valve")

	// ErrDuplicateValve is returned when two records share a name.
	ErrDuplicateValve = errors.New("pressure: duplicate valve name")

	// ErrNegativeFlow is returned when a record carries a negative flow rate.
	ErrNegativeFlow = errors.New("pressure: negative flow rate")

	// ErrBadOptions is returned when an Options field is out of range.
	ErrBadOptions = errors.New("pressure: invalid options")
)

// Record describes one valve as supplied by the upstream parser:
// a name, a non-negative flow rate, and the names of directly tunneled
// neighbors. Records are never mutated by this package.
type Record struct {
	Name      string
	Flow      int
	Neighbors []string
}

// Options holds the solver policy knobs. The zero value is not usable;
// start from DefaultOptions and override selectively.
type Options struct {
	// StartValve names the valve both agents start from. It is kept in the
	// reduced network even when its flow rate is zero.
	StartValve string

	// PruneFactor is the loose-prune threshold used while filling the
	// per-mask table for the two-agent search: a subtree is discarded only
	// when its bound ≤ PruneFactor × incumbent. Individually sub-optimal
	// masks may still pair well with a complementary mask, so this pass
	// must not prune as aggressively as the single-agent search (which
	// always uses the strict threshold bound ≤ incumbent). Must lie in
	// [0,1]; 0 disables pruning for the table pass entirely.
	PruneFactor float64

	// ExactPairing disables table-pass pruning outright for networks with
	// fewer interesting valves than this, guaranteeing the optimal pairing
	// on small networks where PruneFactor is an empirical tuning value
	// rather than a correctness bound.
	ExactPairing int
}

// DefaultOptions returns the canonical solver policy:
//   - start at valve "AA"
//   - loose-prune factor 0.75 for the pair-table pass
//   - exact (prune-free) pairing below 12 interesting valves
func DefaultOptions() Options {
	return Options{
		StartValve:   "AA",
		PruneFactor:  0.75,
		ExactPairing: 12,
	}
}

// validate checks internal consistency of Options.
//
// Complexity: O(1).
func (o Options) validate() error {
	if o.StartValve == "" {
		return ErrBadOptions
	}
	if o.PruneFactor < 0 || o.PruneFactor > 1 {
		return ErrBadOptions
	}
	if o.ExactPairing < 0 {
		return ErrBadOptions
	}

	return nil
}
