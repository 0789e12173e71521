package core

import (
	"fmt"

	"github.com/katalvlaran/emd/flow"
)

// Solve balances a copy of the supplies, runs the min-cost flow solver on
// the graph's compact arrays and writes each optimal edge flow back into
// the edge list. It returns the total transport cost.
//
// Steps:
//  1. BalanceSupplies on a copy (the stored supplies stay untouched).
//  2. Flatten edges into Left/Right/Costs arrays in insertion order.
//  3. flow.MinCostFlow with the graph's solver options.
//  4. Reject any negative flow with *NegativeFlowError.
//  5. Store flows on the edges.
//
// Errors:
//   - solver errors wrapped as "core: solve: ...", matchable with errors.Is
//     against the flow sentinels (e.g. flow.ErrInfeasibleFlow).
//   - *NegativeFlowError (errors.Is(err, ErrNegativeFlow)).
//
// Complexity: O(V + E) around the solver call.
func (g *Graph) Solve() (float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := flow.Problem{
		NumVertices: len(g.vertices),
		Capacity:    g.capacity,
		Supplies:    BalanceSupplies(g.supplies),
		Left:        make([]int, len(g.edges)),
		Right:       make([]int, len(g.edges)),
		Costs:       make([]float64, len(g.edges)),
	}
	for i, e := range g.edges {
		p.Left[i] = e.Left.Index
		p.Right[i] = e.Right.Index
		p.Costs[i] = e.Cost
	}

	res, err := flow.MinCostFlow(p, g.solverOpts)
	if err != nil {
		return 0, fmt.Errorf("core: solve: %w", err)
	}

	for i, f := range res.Flows {
		if f < 0 {
			return 0, &NegativeFlowError{Edge: i, Left: p.Left[i], Right: p.Right[i], Flow: f}
		}
	}
	for i, f := range res.Flows {
		g.edges[i].Flow = f
	}

	return res.TotalCost, nil
}
