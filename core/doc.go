// Package core provides the transportation graph that the Wasserstein
// builders fill and solve.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are created once by New with compact indices 0..n-1; a
//     Coord per vertex carries the original position of its mass and only
//     feeds edge costs (NewEdge, Manhattan).
//   - Edges are appended with AddEdge, validated against the vertex range,
//     and may be parallel.
//   - One capacity ceiling bounds the flow of every edge.
//   - One signed supply per vertex: positive = source, negative = sink.
//
// Solving:
//
//	g, err := core.New(4, 1, []float64{0.5, 0.5, -1, 0})
//	...
//	_ = g.AddEdge(left, right, core.Manhattan(left.Coord, right.Coord), 0)
//	cost, err := g.Solve()
//
// Solve runs BalanceSupplies on a copy of the supplies (a named, separately
// tested numerical nudge), delegates to flow.MinCostFlow and writes the
// optimal flows back into the edges.
//
// Errors:
//
//	ErrConfiguration   - capacity ≤ 0 / not finite, or negative vertex count.
//	ErrSupplyLength    - len(supplies) != vertex count.
//	ErrIndexOutOfRange - vertex index outside 0..n-1.
//	ErrNegativeFlow    - sanity check on the solver's output.
//
// Concurrency: a Graph is guarded by a sync.RWMutex, but it is built and
// solved by one caller; independent graphs may be solved in parallel.
package core
