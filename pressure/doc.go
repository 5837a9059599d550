// Package pressure computes the maximum total pressure a fixed time budget
// allows a valve network to release, for one agent or for two agents working
// disjoint valve sets in parallel.
//
// Pipeline:
//
//  1. Distance precompute — Floyd–Warshall over the full valve graph
//     (every tunnel costs one minute), O(V³), run once.
//  2. Reduction — zero-flow valves are discarded (except the start valve),
//     leaving k ≤ 16 interesting valves renumbered 0..k-1 with a k×k
//     distance sub-matrix. The discarded valves survive implicitly as
//     pass-through steps inside the distances.
//  3. Search — depth-first branch-and-bound over States
//     {position, remaining minutes, visited bitmask, pressure released}.
//     Opening valve t from position p costs dist(p,t)+1 minutes and then
//     releases flow(t) × remaining pressure. Subtrees whose upper bound
//     cannot beat the incumbent are pruned; surviving children are visited
//     in descending-bound order so the incumbent tightens early.
//  4. Two agents — one search over the shorter budget fills a dense
//     2^k table of the best pressure per exact visited set, using a looser
//     pruning threshold; the combiner then scans the table for the best
//     disjoint pair of masks.
//
// Invariants:
//   - remaining minutes strictly decrease along any transition and never go
//     below zero, so the search always terminates;
//   - the visited bitmask only gains bits; released pressure never decreases;
//   - Bound never underestimates the true optimum reachable from a State
//     (soundness of pruning);
//   - identical inputs produce identical results: branching order is fully
//     deterministic (bound descending, valve index tiebreak).
//
// The package performs no I/O and no logging; all errors are strict
// sentinels from types.go, detected once at ReducedNetwork construction.
package pressure
