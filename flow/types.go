// SPDX-License-Identifier: MIT
// Package: emd/flow
//
// types.go - problem/result types, options and sentinel errors for the
// min-cost flow solver.
//
// Error policy:
//   • Only sentinel variables are exposed; context is attached with %w.
//   • Callers branch with errors.Is, never on message strings.
//   • Out-of-range option values fall back to defaults (see normalize);
//     the solver never panics.

package flow

import (
	"errors"
	"log/slog"
)

// Sentinel errors returned by MinCostFlow.
var (
	// ErrBadProblem indicates a structurally invalid Problem: negative vertex
	// count, slice lengths that disagree, or an edge endpoint out of range.
	ErrBadProblem = errors.New("flow: malformed problem")

	// ErrBadCapacity indicates a non-positive or non-finite capacity ceiling.
	ErrBadCapacity = errors.New("flow: capacity must be positive and finite")

	// ErrBadCost indicates a NaN or infinite edge cost or vertex supply.
	ErrBadCost = errors.New("flow: cost or supply is not finite")

	// ErrNegativeCycle indicates a negative-cost cycle reachable from the
	// super-source; potentials cannot be initialized.
	ErrNegativeCycle = errors.New("flow: negative-cost cycle in residual network")

	// ErrInfeasibleFlow indicates that supply remains but no augmenting path
	// to the super-sink exists.
	ErrInfeasibleFlow = errors.New("flow: supplies cannot be routed")

	// ErrAugmentationLimit indicates that Options.MaxAugmentations was reached
	// before all supply was routed.
	ErrAugmentationLimit = errors.New("flow: augmentation limit reached")
)

// Problem is the compact, array-based form of a transportation instance.
//
// Supplies[v] > 0 marks a source, Supplies[v] < 0 a sink. Edge i runs
// Left[i] → Right[i] with unit cost Costs[i] and capacity ceiling Capacity.
type Problem struct {
	NumVertices int
	Capacity    float64
	Supplies    []float64
	Left        []int
	Right       []int
	Costs       []float64
}

// NumEdges returns the number of original edges in p.
func (p Problem) NumEdges() int { return len(p.Costs) }

// Result holds the optimal flow. Flows is indexed like Problem.Costs.
type Result struct {
	TotalCost     float64
	Flows         []float64
	Augmentations int
}

// Options configures MinCostFlow.
//   - Epsilon: residual capacities ≤ Epsilon·Σ supply count as saturated
//     (≤ 0 means DefaultEpsilon).
//   - MaxAugmentations: stop with ErrAugmentationLimit after N paths
//     (0 or negative = no limit).
//   - Logger: receives one Debug record per augmentation; nil disables logging.
type Options struct {
	Epsilon          float64
	MaxAugmentations int
	Logger           *slog.Logger
}

// DefaultEpsilon is the relative saturation tolerance used by DefaultOptions.
const DefaultEpsilon = 1e-12

// DefaultOptions returns production-safe defaults:
//
//	Epsilon:          1e-12
//	MaxAugmentations: 0 (unlimited)
//	Logger:           slog.Default()
func DefaultOptions() Options {
	return Options{
		Epsilon:          DefaultEpsilon,
		MaxAugmentations: 0,
		Logger:           slog.Default(),
	}
}

// normalize fills zero values with defaults.
func (o *Options) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.MaxAugmentations < 0 {
		o.MaxAugmentations = 0
	}
}
