// SPDX-License-Identifier: MIT
//
// File: balance.go
// Role: Numerical supply balancing applied to a copy of the supplies right
// before solving.
//
// The solver needs total supply ≤ 0 (every source must be served, sinks
// may stay partially empty). BalanceSupplies forces the total strictly
// negative by adjusting vertex 0 only:
//
//	s := Σ supplies
//	s >  MachineEpsilon   → supplies[0] -= s + SupplyTolerance
//	s ≥ -SupplyTolerance  → supplies[0] += -SupplyTolerance − |s|
//	otherwise             → unchanged
//
// Heuristic: concentrating the correction on vertex 0 can turn it into a
// sink it cannot serve when it has no incoming edges (e.g. a left vertex of
// a bipartite graph whose mass is smaller than the excess). Such instances
// fail later with flow.ErrInfeasibleFlow instead of being silently solved.

package core

// MachineEpsilon is the float64 machine epsilon, 2^-52.
const MachineEpsilon = 2.220446049250313e-16

// SupplyTolerance is the margin by which balanced supplies are pushed below zero.
const SupplyTolerance = 1e-15

// BalanceSupplies returns a nudged copy of supplies whose sum is strictly
// negative. The input is never modified; an empty input yields an empty
// result.
//
// Complexity: O(V).
func BalanceSupplies(supplies []float64) []float64 {
	out := make([]float64, len(supplies))
	copy(out, supplies)
	if len(out) == 0 {
		return out
	}

	var s float64
	for _, b := range out {
		s += b
	}

	switch {
	case s > MachineEpsilon:
		out[0] -= s + SupplyTolerance
	case s >= -SupplyTolerance:
		abs := s
		if abs < 0 {
			abs = -abs
		}
		out[0] += -SupplyTolerance - abs
	}

	return out
}
