package flow

import (
	"fmt"
	"math"
)

// MinCostFlow routes every positive supply of p to the sinks at minimum
// total cost using successive shortest augmenting paths with potentials.
//
// Semantics: each source v emits exactly Supplies[v]; each sink absorbs at
// most -Supplies[v]. Instances whose total supply is ≤ 0 are therefore
// feasible whenever the sinks are reachable; the transportation graphs in
// this module are nudged into that regime before solving.
//
// Steps:
//  1. Validate p and normalize opts.
//  2. Build the residual network with a super-source S and super-sink T.
//  3. Seed potentials with one Bellman-Ford pass from S.
//  4. Repeat: Dijkstra on reduced costs; if T is unreachable while supply
//     remains → ErrInfeasibleFlow; update potentials; push the bottleneck
//     along the path; accumulate path cost × amount.
//  5. Stop once no arc out of S keeps more than the tolerance.
//  6. Report the net flow of edge i as the residual of its reverse arc.
//
// Complexity:
//
//	Time:   O(F · (E + V) log V), F = number of augmentations.
//	Memory: O(V + E).
func MinCostFlow(p Problem, opts Options) (Result, error) {
	// 1) Validate and normalize
	if err := validate(p); err != nil {
		return Result{}, err
	}
	opts.normalize()
	tol := tolerance(opts.Epsilon, positiveSupply(p.Supplies))

	// 2) Residual network
	r := buildResidual(p, tol)

	// 3) Initial potentials
	pi, err := initPotentials(r, tol)
	if err != nil {
		return Result{}, err
	}
	pf := newPathFinder(r, pi, tol)

	// 4) Augment
	var res Result
	for remaining := r.unrouted(tol); remaining > 0; remaining = r.unrouted(tol) {
		if opts.MaxAugmentations > 0 && res.Augmentations >= opts.MaxAugmentations {
			return Result{}, fmt.Errorf("%w: %d paths, %g supply unrouted", ErrAugmentationLimit, res.Augmentations, remaining)
		}
		if !pf.search() {
			return Result{}, fmt.Errorf("%w: %g of %g supply unrouted", ErrInfeasibleFlow, remaining, r.supply)
		}
		pf.updatePotentials()

		ids := pf.path()
		amount := math.Inf(1)
		var pathCost float64
		for _, id := range ids {
			amount = math.Min(amount, r.arcs[id].cap)
			pathCost += r.arcs[id].cost
		}
		for _, id := range ids {
			r.push(id, amount)
		}

		res.TotalCost += pathCost * amount
		res.Augmentations++
		if opts.Logger != nil {
			opts.Logger.Debug("flow: augmented",
				"path", len(ids), "amount", amount, "cost", pathCost, "remaining", remaining-amount)
		}
	}

	// 6) Net flow per original edge
	res.Flows = make([]float64, p.NumEdges())
	for i := range res.Flows {
		res.Flows[i] = r.arcs[2*i+1].cap
	}

	return res, nil
}
