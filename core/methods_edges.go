// File: methods_edges.go
// Role: Ground metric, edge construction and the edge catalog.
// Determinism:
//   - Edges() returns edges in insertion order; the solver visits them in
//     the same order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "math"

// Manhattan returns |a.X−b.X| + |a.Y−b.Y| as the ground cost between two
// coordinates. With Y fixed at 0 it is the 1-D distance |a.X−b.X|.
func Manhattan(a, b Coord) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// NewEdge builds an edge whose cost is the Manhattan distance between the
// endpoint coordinates. Flow starts at zero.
func NewEdge(left, right Vertex) Edge {
	return Edge{
		Left:  left,
		Right: right,
		Cost:  Manhattan(left.Coord, right.Coord),
	}
}

// AddEdge appends an edge left → right with the given cost and initial
// flow. Parallel edges are legal and act as independent routes.
//
// Errors:
//   - ErrIndexOutOfRange if either endpoint index is outside 0..n-1.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(left, right Vertex, cost, flow float64) error {
	if err := g.checkIndex("left", left.Index); err != nil {
		return err
	}
	if err := g.checkIndex("right", right.Index); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.edges = append(g.edges, Edge{Left: left, Right: right, Cost: cost, Flow: flow})

	return nil
}

// Edges returns a copy of the edges in insertion order, with flows as of the
// last Solve.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Edge(nil), g.edges...)
}
