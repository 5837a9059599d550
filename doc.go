// Package valvenet solves the pressure-release planning problem on valve
// networks: given valves connected by one-minute tunnels, each with a flow
// rate, find the opening schedule that releases the most pressure within a
// fixed time budget.
//
// What's inside?
//
//	A small, deterministic library built around an exact branch-and-bound
//	search:
//		• pressure/    — the solver core: Floyd–Warshall distance precompute,
//		  network reduction, a sound upper bound, depth-first branch-and-bound,
//		  and a two-agent combiner over complementary valve subsets
//		• parse/       — a participle grammar turning textual valve descriptions
//		  ("Valve AA has flow rate=0; tunnels lead to valves DD, II, BB")
//		  into solver records
//		• cmd/valvenet — a thin CLI wrapping the two entry points
//
// Why valvenet?
//
//   - Exact answers — branch-and-bound with a sound upper bound, not a heuristic
//   - Deterministic — identical inputs always produce identical results
//   - Bounded state — bitmask-indexed search sized for ≤16 interesting valves
//
// Quick start:
//
//	records, err := parse.Records(input)
//	if err != nil { ... }
//	best, err := pressure.MaxPressure(records, 30, pressure.DefaultOptions())
//	pair, err := pressure.MaxPressureWithHelper(records, 26, pressure.DefaultOptions())
//
// See pressure/doc.go for the search design and its invariants.
package valvenet
