package flow

import (
	"fmt"
	"math"

	"github.com/gammazero/deque"
)

// initPotentials runs a queue-based Bellman-Ford (SPFA) from the super-source
// over arcs with residual capacity above tol and returns the distances as
// vertex potentials. Vertices the source cannot reach get potential 0; they
// stay unreachable for the rest of the solve, so their value is never read
// through a reduced cost.
//
// A vertex relaxed more than |V| times proves a negative cycle.
//
// Complexity: O(V·E) worst case, O(E) typical for the nonnegative costs the
// transportation builders produce.
func initPotentials(r *residual, tol float64) ([]float64, error) {
	nv := len(r.adj)
	dist := make([]float64, nv)
	for v := range dist {
		dist[v] = math.Inf(1)
	}
	inQueue := make([]bool, nv)
	relaxed := make([]int, nv)

	var q deque.Deque[int]
	dist[r.source] = 0
	q.PushBack(r.source)
	inQueue[r.source] = true

	for q.Len() > 0 {
		u := q.PopFront()
		inQueue[u] = false
		for _, id := range r.adj[u] {
			a := r.arcs[id]
			if a.cap <= tol {
				continue
			}
			if nd := dist[u] + a.cost; nd < dist[a.to] {
				dist[a.to] = nd
				relaxed[a.to]++
				if relaxed[a.to] > nv {
					return nil, fmt.Errorf("%w: vertex %d relaxed %d times", ErrNegativeCycle, a.to, relaxed[a.to])
				}
				if !inQueue[a.to] {
					q.PushBack(a.to)
					inQueue[a.to] = true
				}
			}
		}
	}

	for v, d := range dist {
		if math.IsInf(d, 1) {
			dist[v] = 0
		}
	}

	return dist, nil
}
