// File: types.go
// Role: Coord, Vertex, Edge, Graph, Option and the sentinel errors.

package core

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/emd/flow"
)

// Sentinel errors for core graph operations.
var (
	// ErrConfiguration indicates an invalid graph configuration, such as a
	// capacity ceiling ≤ 0.
	ErrConfiguration = errors.New("core: invalid configuration")

	// ErrSupplyLength indicates len(supplies) != vertex count.
	ErrSupplyLength = errors.New("core: supplies do not match vertex count")

	// ErrIndexOutOfRange indicates a vertex index outside the graph.
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNegativeFlow indicates the solver produced a negative flow. It is an
	// assertion on solver correctness, not a recoverable condition.
	ErrNegativeFlow = errors.New("core: negative flow")
)

// NegativeFlowError reports the first edge carrying a negative flow.
type NegativeFlowError struct {
	Edge        int
	Left, Right int
	Flow        float64
}

func (e *NegativeFlowError) Error() string {
	return fmt.Sprintf("core: found negative flow %g on edge %d (%d → %d)", e.Flow, e.Edge, e.Left, e.Right)
}

// Is makes errors.Is(err, ErrNegativeFlow) hold for *NegativeFlowError.
func (e *NegativeFlowError) Is(target error) bool { return target == ErrNegativeFlow }

// Coord is the spatial position of a vertex's mass. Only edge costs read it;
// adjacency is expressed through vertex indices.
type Coord struct {
	X, Y int
}

// Vertex is a compact graph index plus the coordinate of its mass.
type Vertex struct {
	// Index is the position in the graph's vertex array (0..n-1).
	Index int

	// Coord is the original position in the input distribution.
	Coord Coord
}

// Edge connects two vertices with a fixed ground cost. Flow is zero until
// the graph is solved.
type Edge struct {
	Left, Right Vertex
	Cost        float64
	Flow        float64
}

// Option configures a Graph at construction.
type Option func(*Graph)

// WithSolverOptions replaces the solver options used by Solve.
func WithSolverOptions(opts flow.Options) Option {
	return func(g *Graph) { g.solverOpts = opts }
}

// WithLogger sets the logger handed to the solver. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("core: WithLogger(nil)")
	}
	return func(g *Graph) { g.solverOpts.Logger = l }
}

// Graph is a balanced transportation problem.
//
// mu guards edges and the flow write-back; vertices, capacity and supplies
// are fixed after New except for SetCoord, which also takes mu.
type Graph struct {
	mu sync.RWMutex

	vertices []Vertex
	edges    []Edge
	capacity float64
	supplies []float64

	solverOpts flow.Options
}
