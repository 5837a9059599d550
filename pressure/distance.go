// Package pressure — all-pairs tunnel distances.
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) over the full valve graph with a
//     deterministic loop order, specialized to unit edge weights.
//   - Runs once per network; the result is read-only during search.
//
// Contract:
//   - Square flat buffer; unreached means "no path"; diagonal is 0.

package pressure

import "math"

// unreached marks a valve pair with no known path. It is chosen so that a
// saturating add of two sentinels still fits an int.
const unreached = math.MaxInt / 4

// satAdd adds two step counts, saturating at unreached so that sentinel
// values never overflow during relaxation.
func satAdd(a, b int) int {
	if a >= unreached || b >= unreached {
		return unreached
	}

	return a + b
}

// stepMatrix holds minimum tunnel step counts between all valve pairs in a
// flat row-major buffer, mirroring the dense hot-path layout of the search
// engine. Immutable once floydWarshall has run.
type stepMatrix struct {
	n int
	d []int
}

// newStepMatrix initializes the matrix from adjacency:
// 0 on the diagonal, 1 where a tunnel exists, unreached otherwise.
// adj[i] lists the neighbor indices of valve i.
//
// Complexity: O(V² + E).
func newStepMatrix(adj [][]int) *stepMatrix {
	n := len(adj)
	m := &stepMatrix{n: n, d: make([]int, n*n)}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				m.d[i*n+j] = 0 // distance to self
			} else {
				m.d[i*n+j] = unreached
			}
		}
	}
	for i = 0; i < n; i++ {
		for _, j = range adj[i] {
			if i != j {
				m.d[i*n+j] = 1 // one-minute tunnel
			}
		}
	}

	return m
}

// at returns the current step count i→j.
func (m *stepMatrix) at(i, j int) int { return m.d[i*m.n+j] }

// floydWarshall closes the matrix under shortest paths in place.
//
// Loop order is fixed (k → i → j) for deterministic accumulation; the
// relaxation uses satAdd so unreached pairs never overflow.
//
// Complexity: Time O(V³), extra space O(1).
func (m *stepMatrix) floydWarshall() {
	n := m.n

	// Predeclare loop counters and temporaries; no allocations in the hot loops.
	var (
		k, i, j      int // loop indices
		baseK, baseI int // row base offsets in the flat buffer
		ik, kj, cand int // d[i,k], d[k,j], candidate via k
	)

	data := m.d

	for k = 0; k < n; k++ { // outer: intermediate valve k
		baseK = k * n

		for i = 0; i < n; i++ { // middle: source valve i
			ik = data[i*n+k]
			if ik >= unreached { // i cannot reach k
				continue
			}
			baseI = i * n

			for j = 0; j < n; j++ { // inner: destination valve j
				kj = data[baseK+j]
				if kj >= unreached { // k cannot reach j
					continue
				}
				cand = satAdd(ik, kj)
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}
