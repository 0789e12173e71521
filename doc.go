// Package emd computes the discrete Wasserstein-1 (earth mover's) distance
// between two non-negative mass distributions by solving a min-cost flow on
// a bipartite transportation graph.
//
// Layout:
//
//	wasserstein/ - Dense and Sparse distance builders, transport plans
//	core/        - Vertex, Edge and Graph model, supply balancing, Solve
//	flow/        - successive shortest path min-cost flow solver
//	cmd/emd/     - command line front end
//
// Data flows one way:
//
//	wasserstein → core → flow → core → wasserstein → caller
//
// Quick example:
//
//	d, err := wasserstein.Dense([]float64{1, 0, 0}, []float64{0, 0, 1})
//	// d == 2
//
//	go get github.com/katalvlaran/emd
package emd
