// SPDX-License-Identifier: MIT
//
// File: transport.go
// Role: Dense and sparse construction of the bipartite transportation graph.
//
// Layout:
//   - vertices 0..|L|-1 are the left support (supply = mass),
//     vertices |L|..|L|+|R|-1 the right support (supply = −mass);
//   - every vertex carries its original index as Coord{X: index};
//   - edges L_i → R_j for i asc, then j asc, cost = |x_i − x_j|;
//   - edge capacity = Σ left.
//
// Determinism: edge emission order is fixed, so the solver's tie-break
// (first discovery in insertion order) fixes the plan as well.

package wasserstein

import (
	"fmt"
	"math"

	"github.com/katalvlaran/emd/core"
)

const (
	methodDense  = "Dense"
	methodSparse = "Sparse"
)

// Dense returns the Wasserstein-1 distance between left and right using one
// vertex per input position.
//
// Complexity: O(|L|·|R|) edges, solved in O(F·E log V).
func Dense(left, right []float64, opts ...Option) (float64, error) {
	plan, err := transport(methodDense, left, right, opts)
	if err != nil {
		return 0, err
	}
	return plan.Cost, nil
}

// Sparse returns the same distance as Dense but only builds vertices for
// non-zero masses.
func Sparse(left, right []float64, opts ...Option) (float64, error) {
	plan, err := transport(methodSparse, left, right, opts)
	if err != nil {
		return 0, err
	}
	return plan.Cost, nil
}

// DensePlan is Dense returning the full transport plan.
func DensePlan(left, right []float64, opts ...Option) (*Plan, error) {
	return transport(methodDense, left, right, opts)
}

// SparsePlan is Sparse returning the full transport plan.
func SparsePlan(left, right []float64, opts ...Option) (*Plan, error) {
	return transport(methodSparse, left, right, opts)
}

// point is a mass at its original coordinate.
type point struct {
	coord int
	mass  float64
}

// support lists masses with their coordinates; sparse drops exact zeros.
func support(masses []float64, sparse bool) []point {
	pts := make([]point, 0, len(masses))
	for i, m := range masses {
		if sparse && m == 0 {
			continue
		}
		pts = append(pts, point{coord: i, mass: m})
	}
	return pts
}

// transport validates, builds, solves and checks one instance.
//
// Steps:
//  1. Reject invalid masses; short-circuit all-zero inputs to 0.
//  2. Collect left/right supports (sparse or dense).
//  3. core.New with supplies and capacity Σ left; set coordinates.
//  4. Emit the complete bipartite edge set.
//  5. Solve, then check zero cost against input equality.
//  6. Collect moves with positive flow.
func transport(method string, left, right []float64, opts []Option) (*Plan, error) {
	cfg := newConfig(opts)

	if err := checkMasses("left", left); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if err := checkMasses("right", right); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if allZero(left) && allZero(right) {
		return &Plan{Moves: []Move{}}, nil
	}

	ls := support(left, method == methodSparse)
	rs := support(right, method == methodSparse)
	n := len(ls) + len(rs)

	supplies := make([]float64, n)
	for i, p := range ls {
		supplies[i] = p.mass
	}
	for j, p := range rs {
		supplies[len(ls)+j] = -p.mass
	}

	g, err := core.New(n, total(left), supplies, core.WithSolverOptions(cfg.solver))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	for i, p := range ls {
		if err = g.SetCoord(i, core.Coord{X: p.coord}); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}
	for j, p := range rs {
		if err = g.SetCoord(len(ls)+j, core.Coord{X: p.coord}); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}

	vs := g.Vertices()
	for i := range ls {
		for j := range rs {
			e := core.NewEdge(vs[i], vs[len(ls)+j])
			if err = g.AddEdge(e.Left, e.Right, e.Cost, e.Flow); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d→%d): %w", method, i, len(ls)+j, err)
			}
		}
	}

	cost, err := g.Solve()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if cost == 0 && !equalMasses(left, right) {
		return nil, &FatalInvariantError{
			Left:  append([]float64(nil), left...),
			Right: append([]float64(nil), right...),
		}
	}

	plan := &Plan{Cost: cost, Moves: []Move{}}
	for _, e := range g.Edges() {
		if e.Flow > 0 {
			plan.Moves = append(plan.Moves, Move{From: e.Left.Coord.X, To: e.Right.Coord.X, Mass: e.Flow})
		}
	}

	if l := cfg.solver.Logger; l != nil {
		l.Debug("wasserstein: solved",
			"method", method,
			"vertices", n,
			"edges", g.EdgeCount(),
			"cost", cost,
			"moves", len(plan.Moves))
	}

	return plan, nil
}

// checkMasses rejects negative and non-finite entries.
func checkMasses(side string, masses []float64) error {
	for i, m := range masses {
		if math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
			return fmt.Errorf("%w: %s[%d] = %g", ErrInvalidMass, side, i, m)
		}
	}
	return nil
}

func allZero(masses []float64) bool {
	for _, m := range masses {
		if m != 0 {
			return false
		}
	}
	return true
}

func total(masses []float64) float64 {
	var s float64
	for _, m := range masses {
		s += m
	}
	return s
}

// equalMasses compares the common prefix of a and b within MachineEpsilon.
func equalMasses(a, b []float64) bool {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if math.Abs(a[i]-b[i]) > core.MachineEpsilon {
			return false
		}
	}
	return true
}
