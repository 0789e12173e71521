package flow

import (
	"fmt"
	"math"
)

// arc is one direction of a residual pair. Arcs are stored in pairs so the
// partner of arc id is always id^1.
type arc struct {
	to   int
	cap  float64
	cost float64
}

// residual is the augmented network: the original vertices 0..n-1 plus the
// super-source (n) and super-sink (n+1).
type residual struct {
	arcs   []arc
	adj    [][]int // per vertex, arc ids in insertion order
	source int
	sink   int
	supply float64 // Σ positive supplies, i.e. capacity out of the super-source
}

// addArc appends the pair u→v (cap, cost) and v→u (0, -cost) and returns
// the id of the forward arc.
func (r *residual) addArc(u, v int, capUV, cost float64) int {
	id := len(r.arcs)
	r.arcs = append(r.arcs, arc{to: v, cap: capUV, cost: cost}, arc{to: u, cap: 0, cost: -cost})
	r.adj[u] = append(r.adj[u], id)
	r.adj[v] = append(r.adj[v], id+1)

	return id
}

// push moves amount along arc id and returns it to the partner arc.
func (r *residual) push(id int, amount float64) {
	r.arcs[id].cap -= amount
	r.arcs[id^1].cap += amount
}

// validate checks the structural contract of p before any allocation.
func validate(p Problem) error {
	if p.NumVertices < 0 {
		return fmt.Errorf("%w: vertex count %d", ErrBadProblem, p.NumVertices)
	}
	if len(p.Supplies) != p.NumVertices {
		return fmt.Errorf("%w: %d supplies for %d vertices", ErrBadProblem, len(p.Supplies), p.NumVertices)
	}
	m := p.NumEdges()
	if len(p.Left) != m || len(p.Right) != m {
		return fmt.Errorf("%w: endpoint slices %d/%d for %d costs", ErrBadProblem, len(p.Left), len(p.Right), m)
	}
	if p.Capacity <= 0 || math.IsNaN(p.Capacity) || math.IsInf(p.Capacity, 0) {
		return fmt.Errorf("%w: got %g", ErrBadCapacity, p.Capacity)
	}
	for v, b := range p.Supplies {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("%w: supply[%d]=%g", ErrBadCost, v, b)
		}
	}
	for i := 0; i < m; i++ {
		u, v := p.Left[i], p.Right[i]
		if u < 0 || u >= p.NumVertices || v < 0 || v >= p.NumVertices {
			return fmt.Errorf("%w: edge %d (%d→%d) with %d vertices", ErrBadProblem, i, u, v, p.NumVertices)
		}
		if c := p.Costs[i]; math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: cost[%d]=%g", ErrBadCost, i, c)
		}
	}

	return nil
}

// buildResidual constructs the augmented network for p.
//
// Arc layout (deterministic):
//  1. original edge i → arcs 2i (forward, cap U) and 2i+1 (reverse, cap 0);
//  2. super-source → every source v, cap b_v, in vertex order;
//  3. every sink v → super-sink, cap -b_v, in vertex order.
//
// Sources and sinks whose |b_v| does not exceed tol get no arc.
func buildResidual(p Problem, tol float64) *residual {
	n := p.NumVertices
	r := &residual{
		arcs:   make([]arc, 0, 2*(p.NumEdges()+n)),
		adj:    make([][]int, n+2),
		source: n,
		sink:   n + 1,
	}
	for i := 0; i < p.NumEdges(); i++ {
		r.addArc(p.Left[i], p.Right[i], p.Capacity, p.Costs[i])
	}
	for v, b := range p.Supplies {
		if b > tol {
			r.addArc(r.source, v, b, 0)
			r.supply += b
		}
	}
	for v, b := range p.Supplies {
		if b < -tol {
			r.addArc(v, r.sink, -b, 0)
		}
	}

	return r
}

// unrouted returns the supply still waiting on super-source arcs, ignoring
// arcs whose residual does not exceed tol.
func (r *residual) unrouted(tol float64) float64 {
	var total float64
	for _, id := range r.adj[r.source] {
		if c := r.arcs[id].cap; c > tol {
			total += c
		}
	}

	return total
}

// positiveSupply returns Σ max(b, 0).
func positiveSupply(supplies []float64) float64 {
	var total float64
	for _, b := range supplies {
		if b > 0 {
			total += b
		}
	}

	return total
}

// tolerance scales eps by the routed mass so saturation does not depend on
// the unit of the supplies. An instance without sources falls back to eps.
func tolerance(eps, supply float64) float64 {
	if supply > 0 {
		return eps * supply
	}
	return eps
}
