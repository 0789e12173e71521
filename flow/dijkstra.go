package flow

import (
	"math"

	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"
)

// pathFinder holds the reusable state of the shortest-path searches run
// once per augmentation. Buffers are allocated once per solve, except the
// heap: yagh has no reset, so search starts each run with a new one.
type pathFinder struct {
	r       *residual
	tol     float64
	pi      []float64 // vertex potentials
	dist    []float64 // reduced distances of the last search
	prevArc []int     // arc used to reach v in the last search, -1 if none
	heap    *yagh.IntMap[float64]
	settled *sparsesets.Set
}

func newPathFinder(r *residual, pi []float64, tol float64) *pathFinder {
	nv := len(r.adj)
	return &pathFinder{
		r:       r,
		tol:     tol,
		pi:      pi,
		dist:    make([]float64, nv),
		prevArc: make([]int, nv),
		settled: sparsesets.New(nv),
	}
}

// search runs Dijkstra from the super-source over reduced costs
// c'(u,v) = c(u,v) + π(u) − π(v) and reports whether the super-sink was
// reached. The search is not cut at the sink: every reachable vertex gets a
// final distance so the potential update keeps all reduced costs ≥ 0.
//
// Ties keep the first predecessor found; arcs are scanned in insertion order.
func (pf *pathFinder) search() bool {
	r := pf.r
	for v := range pf.dist {
		pf.dist[v] = math.Inf(1)
		pf.prevArc[v] = -1
	}
	pf.settled.Clear()
	pf.heap = yagh.New[float64](len(pf.dist))

	pf.dist[r.source] = 0
	pf.heap.Put(r.source, 0)

	for pf.heap.Size() > 0 {
		entry := pf.heap.Pop()
		u, d := entry.Elem, entry.Cost
		pf.settled.Insert(u)

		for _, id := range r.adj[u] {
			a := r.arcs[id]
			if a.cap <= pf.tol || pf.settled.Contains(a.to) {
				continue
			}
			reduced := a.cost + pf.pi[u] - pf.pi[a.to]
			if reduced < 0 {
				// Round-off on potentials; exact arithmetic gives 0 here.
				reduced = 0
			}
			if nd := d + reduced; nd < pf.dist[a.to] {
				pf.dist[a.to] = nd
				pf.prevArc[a.to] = id
				pf.heap.Put(a.to, nd)
			}
		}
	}

	return pf.settled.Contains(r.sink)
}

// updatePotentials adds the last search's distances to the potentials of
// every settled vertex.
func (pf *pathFinder) updatePotentials() {
	for v, d := range pf.dist {
		if pf.settled.Contains(v) {
			pf.pi[v] += d
		}
	}
}

// path returns the arc ids from the super-source to the super-sink, in
// order, following prevArc back from the sink.
func (pf *pathFinder) path() []int {
	var ids []int
	for v := pf.r.sink; v != pf.r.source; {
		id := pf.prevArc[v]
		ids = append(ids, id)
		v = pf.r.arcs[id^1].to
	}
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	return ids
}
