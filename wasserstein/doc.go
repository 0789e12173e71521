// Package wasserstein computes the discrete Wasserstein-1 (earth mover's)
// distance between two non-negative mass distributions on a 1-D grid.
//
// Each input is a sequence of masses; the position of a mass is its index.
// The distance is the minimum total mass × |position difference| needed to
// turn left into right, obtained by solving a min-cost flow on the
// complete bipartite transportation graph between the two supports.
//
// Two builders share one contract:
//
//	Dense  - one vertex per input position (zeros included).
//	Sparse - one vertex per non-zero mass; coordinates keep their original
//	         index so costs are unchanged while the graph shrinks.
//
// DensePlan and SparsePlan also return the transport plan: every move of
// mass between coordinates with positive flow, in edge order.
//
// Example:
//
//	d, err := wasserstein.Dense([]float64{1, 0, 0}, []float64{0, 0, 1})
//	// d == 2: one unit moved two positions.
//
// Mass semantics:
//   - Inputs of different length are allowed.
//   - Both inputs empty (or all zero) yield 0 without solving.
//   - Every left mass must be routed; right masses may be left partially
//     unfilled when the left total is smaller.
//   - An all-zero left against a non-zero right is a configuration error
//     (the per-edge capacity is the left total).
//
// Errors:
//   - ErrInvalidMass      - negative, NaN or infinite mass.
//   - core / flow errors  - wrapped with the builder name, errors.Is works.
//   - *FatalInvariantError - zero cost for distributions that differ.
//     This signals a solver or construction bug and callers should treat
//     it as program-ending.
//
// Determinism: identical inputs return bit-identical distances and plans.
package wasserstein
