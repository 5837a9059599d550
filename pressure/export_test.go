package pressure

// Test bridge exposing private kernels to pressure_test without widening the
// production API.

var (
	// BestDisjointPairTestOnly forwards to the private combiner.
	BestDisjointPairTestOnly = bestDisjointPair

	// SatAddTestOnly forwards to the saturating step-count addition.
	SatAddTestOnly = satAdd
)

// UnreachedTestOnly mirrors the internal no-path sentinel.
const UnreachedTestOnly = unreached

// RunSearchTestOnly runs one engine pass with an explicit prune factor and
// optional per-mask table, returning the incumbent.
func RunSearchTestOnly(n *ReducedNetwork, factor float64, table []int, minutes int) int {
	return newEngine(n, factor, table).run(minutes)
}
