// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Options, sentinel errors and result types of the distance builders.

package wasserstein

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/emd/flow"
)

var (
	// ErrInvalidMass indicates a negative, NaN or infinite input mass.
	ErrInvalidMass = errors.New("wasserstein: invalid mass")

	// ErrFatalInvariant is matched by *FatalInvariantError.
	ErrFatalInvariant = errors.New("wasserstein: fatal invariant violation")
)

// FatalInvariantError reports a zero transport cost for inputs that are not
// element-wise equal. It is not recoverable: a caller receiving it should
// stop the program rather than retry.
type FatalInvariantError struct {
	Left, Right []float64
}

func (e *FatalInvariantError) Error() string {
	return fmt.Sprintf("wasserstein: zero cost for unequal distributions: left=%v right=%v", e.Left, e.Right)
}

// Is reports whether target is ErrFatalInvariant.
func (e *FatalInvariantError) Is(target error) bool { return target == ErrFatalInvariant }

// Move is a quantity of mass transported from one coordinate to another.
type Move struct {
	From int     `json:"from"`
	To   int     `json:"to"`
	Mass float64 `json:"mass"`
}

// Plan is an optimal transport plan and its cost.
type Plan struct {
	Cost  float64 `json:"cost"`
	Moves []Move  `json:"moves"`
}

// Option customizes a single distance computation.
type Option func(*config)

type config struct {
	solver flow.Options
}

func newConfig(opts []Option) config {
	cfg := config{solver: flow.DefaultOptions()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithEpsilon sets the solver's relative saturation tolerance.
// Panics unless eps is finite and > 0.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic("wasserstein: WithEpsilon requires a finite eps > 0")
	}
	return func(c *config) { c.solver.Epsilon = eps }
}

// WithMaxAugmentations caps the number of augmenting paths; 0 means no cap.
// Panics on a negative limit.
func WithMaxAugmentations(n int) Option {
	if n < 0 {
		panic("wasserstein: WithMaxAugmentations(negative)")
	}
	return func(c *config) { c.solver.MaxAugmentations = n }
}

// WithLogger routes solver and builder debug logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("wasserstein: WithLogger(nil)")
	}
	return func(c *config) { c.solver.Logger = l }
}
