// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructor and read-only getters.
// Policy:
//   - No algorithms here; solving lives in solve.go.
//   - Getters return copies so callers cannot mutate graph state.

package core

import (
	"fmt"
	"math"

	"github.com/katalvlaran/emd/flow"
)

// New creates a Graph with vertexCount vertices at Coord{0, 0}, the given
// capacity ceiling and a copy of supplies.
//
// Errors:
//   - ErrConfiguration if capacity ≤ 0, capacity is not finite, or vertexCount < 0.
//   - ErrSupplyLength if len(supplies) != vertexCount.
//
// Complexity: O(V).
func New(vertexCount int, capacity float64, supplies []float64, opts ...Option) (*Graph, error) {
	if capacity <= 0 || math.IsNaN(capacity) || math.IsInf(capacity, 0) {
		return nil, fmt.Errorf("%w: need a positive max capacity, got %g", ErrConfiguration, capacity)
	}
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: vertex count %d", ErrConfiguration, vertexCount)
	}
	if len(supplies) != vertexCount {
		return nil, fmt.Errorf("%w: %d supplies for %d vertices", ErrSupplyLength, len(supplies), vertexCount)
	}

	g := &Graph{
		vertices:   make([]Vertex, vertexCount),
		capacity:   capacity,
		supplies:   append([]float64(nil), supplies...),
		solverOpts: flow.DefaultOptions(),
	}
	for i := range g.vertices {
		g.vertices[i] = Vertex{Index: i}
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Capacity returns the per-edge capacity ceiling.
func (g *Graph) Capacity() float64 { return g.capacity }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges added so far.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Supplies returns a copy of the unbalanced supply vector.
func (g *Graph) Supplies() []float64 {
	return append([]float64(nil), g.supplies...)
}
