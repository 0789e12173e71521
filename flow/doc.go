// Package flow implements an exact min-cost flow solver for supply/demand
// transportation instances given in compact array form.
//
// The solver is successive shortest augmenting paths with vertex potentials:
//
//   - Method: super-source S feeds every source, every sink drains into a
//     super-sink T; one Bellman-Ford pass seeds potentials, then Dijkstra on
//     reduced costs finds each augmenting path.
//   - Time:   O(F · (E + V) log V), F = number of augmentations.
//   - Memory: O(V + E) for the residual arcs, potentials and search buffers.
//
// # Supply semantics
//
// Supplies[v] > 0 must be emitted in full; Supplies[v] < 0 may absorb up to
// its magnitude. A problem whose positive supply exceeds what the sinks can
// reach fails with ErrInfeasibleFlow.
//
// # Determinism
//
// Arcs are scanned in the order edges were given, super-source arcs and
// super-sink arcs in vertex order, and a predecessor is only replaced by a
// strictly shorter path. Identical inputs therefore produce bit-identical
// flows and costs.
//
// # API
//
//	res, err := flow.MinCostFlow(flow.Problem{
//	    NumVertices: 4,
//	    Capacity:    1,
//	    Supplies:    []float64{0.5, 0.5, -1, 0},
//	    Left:        []int{0, 0, 1, 1},
//	    Right:       []int{2, 3, 2, 3},
//	    Costs:       []float64{0, 1, 1, 0},
//	}, flow.DefaultOptions())
//
// # Errors
//
//	ErrBadProblem        - slice lengths disagree or an endpoint is out of range.
//	ErrBadCapacity       - capacity ≤ 0 or not finite.
//	ErrBadCost           - NaN/Inf cost or supply.
//	ErrNegativeCycle     - negative-cost cycle reachable from the sources.
//	ErrInfeasibleFlow    - supply remains but no augmenting path exists.
//	ErrAugmentationLimit - Options.MaxAugmentations exhausted.
package flow
