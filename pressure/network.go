// Package pressure — network reduction.
//
// NewReducedNetwork turns raw valve records into the compact, immutable
// search input: interesting valves only (positive flow, plus the start
// valve), renumbered 0..k-1, with a k×k distance sub-matrix and a
// descending-flow order used by the bound function.

package pressure

import "sort"

// ReducedNetwork is the immutable search input. All fields are read-only
// after construction; the search never mutates shared data.
type ReducedNetwork struct {
	k     int      // interesting valve count, k ≤ MaxValves
	start int      // index of the start valve in 0..k-1
	flow  []int    // flow[i] = flow rate of interesting valve i
	dist  []int    // k×k flat sub-matrix of minimum step counts
	names []string // names[i] = original valve name, for diagnostics

	// byFlow lists valve indices sorted by descending flow (index ascending
	// on ties). Consumed only by Bound.
	byFlow []int
}

// NewReducedNetwork validates records, computes all-pairs distances over the
// full graph, and keeps only the interesting valves.
//
// Contract:
//   - every neighbor name must be defined by some record (ErrUnknownNeighbor);
//   - names must be unique (ErrDuplicateValve) and flows non-negative
//     (ErrNegativeFlow);
//   - startName must be present (ErrStartNotFound);
//   - the interesting count must fit the mask width (ErrTooManyValves).
//
// Complexity: O(V³) dominated by the distance closure.
func NewReducedNetwork(records []Record, startName string) (*ReducedNetwork, error) {
	// Stage 1: name table and record validation.
	index := make(map[string]int, len(records))
	var (
		i   int
		rec Record
	)
	for i, rec = range records {
		if _, dup := index[rec.Name]; dup {
			return nil, ErrDuplicateValve
		}
		if rec.Flow < 0 {
			return nil, ErrNegativeFlow
		}
		index[rec.Name] = i
	}
	start, ok := index[startName]
	if !ok {
		return nil, ErrStartNotFound
	}

	// Stage 2: adjacency over the full graph.
	adj := make([][]int, len(records))
	var (
		name string
		j    int
	)
	for i, rec = range records {
		row := make([]int, 0, len(rec.Neighbors))
		for _, name = range rec.Neighbors {
			j, ok = index[name]
			if !ok {
				return nil, ErrUnknownNeighbor
			}
			row = append(row, j)
		}
		adj[i] = row
	}

	// Stage 3: all-pairs step counts, then the interesting sub-matrix.
	steps := newStepMatrix(adj)
	steps.floydWarshall()

	// Interesting valves in record order: positive flow, plus the start.
	keep := make([]int, 0, len(records))
	for i, rec = range records {
		if rec.Flow > 0 || i == start {
			keep = append(keep, i)
		}
	}
	if len(keep) > MaxValves {
		return nil, ErrTooManyValves
	}

	n := &ReducedNetwork{
		k:     len(keep),
		flow:  make([]int, len(keep)),
		dist:  make([]int, len(keep)*len(keep)),
		names: make([]string, len(keep)),
	}
	for i, j = range keep {
		if j == start {
			n.start = i
		}
		n.flow[i] = records[j].Flow
		n.names[i] = records[j].Name
	}
	var a, b int
	for a = 0; a < n.k; a++ {
		for b = 0; b < n.k; b++ {
			n.dist[a*n.k+b] = steps.at(keep[a], keep[b])
		}
	}

	// Stage 4: descending-flow order for the bound function.
	n.byFlow = make([]int, n.k)
	for i = 0; i < n.k; i++ {
		n.byFlow[i] = i
	}
	sort.Sort(byFlowDesc{n})

	return n, nil
}

// byFlowDesc sorts n.byFlow by descending flow with an ascending index
// tiebreak, keeping the order fully deterministic.
type byFlowDesc struct{ n *ReducedNetwork }

func (s byFlowDesc) Len() int { return len(s.n.byFlow) }
func (s byFlowDesc) Less(i, j int) bool {
	vi, vj := s.n.byFlow[i], s.n.byFlow[j]
	if s.n.flow[vi] == s.n.flow[vj] {
		return vi < vj
	}

	return s.n.flow[vi] > s.n.flow[vj]
}
func (s byFlowDesc) Swap(i, j int) {
	s.n.byFlow[i], s.n.byFlow[j] = s.n.byFlow[j], s.n.byFlow[i]
}

// Len returns the interesting valve count k.
func (n *ReducedNetwork) Len() int { return n.k }

// Start returns the index of the start valve.
func (n *ReducedNetwork) Start() int { return n.start }

// Flow returns the flow rate of interesting valve i.
func (n *ReducedNetwork) Flow(i int) int { return n.flow[i] }

// Name returns the original name of interesting valve i.
func (n *ReducedNetwork) Name(i int) string { return n.names[i] }

// Distance returns the minimum tunnel step count between interesting valves
// i and j, routed through the full graph (pass-through valves included).
func (n *ReducedNetwork) Distance(i, j int) int { return n.dist[i*n.k+j] }
