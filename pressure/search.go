// Package pressure — branch, bound, and the depth-first search engine.
//
// Rationale (succinct):
//  1. State is a value type: every transition produces a fresh State, nothing
//     is mutated in place, so the only mutable search artifacts are the
//     incumbent and the optional per-mask table, both confined to the engine.
//  2. Branching is deterministic: children are generated in valve-index order,
//     then visited in descending-bound order (index tiebreak). Promising
//     subtrees tighten the incumbent early, which strengthens later pruning.
//  3. The bound relaxes topology: unopened valves taken by descending flow,
//     each charged the cheapest conceivable time cost. It never underestimates
//     the true optimum reachable from a state, so pruning is sound.
//  4. Pruning threshold is a policy knob: the single-agent search discards a
//     child when bound ≤ incumbent; the pair-table pass uses
//     bound ≤ factor × incumbent with factor < 1, keeping individually
//     sub-optimal masks alive for the combiner.
//
// Complexity:
//   - Worst case exponential in k (exact search); practical speed comes from
//     pruning. Per node: O(k) branching + O(k) bound + O(k log k) child sort.
//   - Memory: O(k²) scratch (one child buffer per recursion level).

package pressure

import "sort"

// State is one node of the depth-first search: where the agent stands, how
// many minutes remain, which valves are open, and how much pressure the
// schedule so far will release in total. States are produced fresh per
// transition and never mutated.
type State struct {
	Position  int    // index of the current valve
	Remaining int    // minutes left, ≥ 0
	Visited   uint16 // bit i set ⇒ interesting valve i is open
	Released  int    // total pressure the opened valves will release
}

// Successors returns all legal follow-up states of s: for every unopened
// positive-flow valve t reachable in time, travel there and open it.
// Pure function; s and the network are left untouched.
func (n *ReducedNetwork) Successors(s State) []State {
	return n.appendSuccessors(s, nil)
}

// appendSuccessors is the allocation-free core of Successors: children are
// appended to dst in ascending valve-index order.
//
// A move to valve t costs dist(position,t)+1 minutes (travel plus one minute
// to open) and is legal only when strictly positive time remains afterwards,
// so remaining minutes strictly decrease along every edge of the search tree.
//
// Complexity: O(k).
func (n *ReducedNetwork) appendSuccessors(s State, dst []State) []State {
	var t, cost, left int
	for t = 0; t < n.k; t++ {
		if s.Visited&(1<<t) != 0 || n.flow[t] == 0 {
			continue // already open, or not worth opening (start valve)
		}
		cost = satAdd(n.dist[s.Position*n.k+t], 1)
		if s.Remaining <= cost {
			continue // unreachable, or opens with no time left to release
		}
		left = s.Remaining - cost
		dst = append(dst, State{
			Position:  t,
			Remaining: left,
			Visited:   s.Visited | 1<<t,
			Released:  s.Released + n.flow[t]*left,
		})
	}

	return dst
}

// Bound returns an optimistic ceiling on the total pressure reachable from s.
//
// The relaxation ignores topology: unopened valves are taken by descending
// flow, the valve under the agent (if unopened) after 1 minute, every other
// valve 2 minutes after its predecessor — the cheapest time cost any real
// schedule could achieve (travel ≥ 1 tunnel + 1 minute to open). Assigning
// the highest flows to the earliest slots makes the sum an upper bound on
// any completion, which is the soundness requirement for pruning:
//
//	Bound(s) ≥ true optimum reachable from s.
//
// Complexity: O(k).
func (n *ReducedNetwork) Bound(s State) int {
	total := s.Released

	// The valve underfoot opens after a single minute; charging it a travel
	// slot as well would undercount and break soundness.
	if s.Visited&(1<<s.Position) == 0 && n.flow[s.Position] > 0 && s.Remaining > 1 {
		total += n.flow[s.Position] * (s.Remaining - 1)
	}

	left := s.Remaining
	for _, v := range n.byFlow {
		if left <= 2 {
			break // no slot can release anything further
		}
		if v == s.Position || s.Visited&(1<<v) != 0 || n.flow[v] == 0 {
			continue
		}
		left -= 2
		total += n.flow[v] * left
	}

	return total
}

// scored pairs a child state with its bound for ordering and pruning.
type scored struct {
	state State
	bound int
}

// byBoundDesc orders children by descending bound, valve index ascending on
// ties. Sibling positions are distinct, so the order is total and the search
// fully deterministic.
type byBoundDesc []scored

func (b byBoundDesc) Len() int { return len(b) }
func (b byBoundDesc) Less(i, j int) bool {
	if b[i].bound == b[j].bound {
		return b[i].state.Position < b[j].state.Position
	}

	return b[i].bound > b[j].bound
}
func (b byBoundDesc) Swap(i, j int) { b[i], b[j] = b[j], b[i] }

// engine holds all search data and policies. A dedicated struct (instead of
// closures) keeps dependencies explicit and hot-path state predictable.
type engine struct {
	net    *ReducedNetwork
	factor float64 // prune when bound ≤ factor × incumbent; 1 = strict, 0 = off

	best  int   // incumbent: best released pressure seen so far
	table []int // optional dense best-per-mask table (two-agent search)

	states [][]State  // per-depth child scratch
	kids   [][]scored // per-depth scored scratch
}

// newEngine prepares scratch buffers for the worst-case depth (one level per
// interesting valve plus the root).
func newEngine(n *ReducedNetwork, factor float64, table []int) *engine {
	e := &engine{net: n, factor: factor, table: table}
	e.states = make([][]State, n.k+1)
	e.kids = make([][]scored, n.k+1)
	for d := 0; d <= n.k; d++ {
		e.states[d] = make([]State, 0, n.k)
		e.kids[d] = make([]scored, 0, n.k)
	}

	return e
}

// prunable reports whether a subtree with the given bound cannot contribute
// under the current policy. With factor 1 this is the strict rule
// bound ≤ incumbent; smaller factors keep weaker subtrees alive.
func (e *engine) prunable(bound int) bool {
	return float64(bound) <= e.factor*float64(e.best)
}

// visit performs the core search: record the state, branch, prune, recurse.
func (e *engine) visit(s State, depth int) {
	// Every state is a complete schedule in itself; record it at entry.
	if s.Released > e.best {
		e.best = s.Released
	}
	if e.table != nil && s.Released > e.table[s.Visited] {
		e.table[s.Visited] = s.Released
	}

	// Branch, then bound each child and drop what cannot contribute.
	children := e.net.appendSuccessors(s, e.states[depth][:0])
	kids := e.kids[depth][:0]
	var (
		c State
		b int
	)
	for _, c = range children {
		b = e.net.Bound(c)
		if e.prunable(b) {
			continue
		}
		kids = append(kids, scored{state: c, bound: b})
	}

	// Most promising first, re-checking against the incumbent tightened by
	// earlier siblings. Terminal states simply produce no children.
	sort.Sort(byBoundDesc(kids))
	for i := range kids {
		if e.prunable(kids[i].bound) {
			continue
		}
		e.visit(kids[i].state, depth+1)
	}
}

// run searches from the start valve with the given time budget and returns
// the best released pressure. When table is non-nil it is filled with the
// best pressure per exact visited set.
func (e *engine) run(minutes int) int {
	e.visit(State{Position: e.net.start, Remaining: minutes}, 0)

	return e.best
}
