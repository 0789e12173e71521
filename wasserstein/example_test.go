package wasserstein_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/emd/wasserstein"
)

// ExampleDense moves one unit of mass two positions.
func ExampleDense() {
	d, err := wasserstein.Dense([]float64{1, 0, 0}, []float64{0, 0, 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.6f\n", d)
	// Output:
	// 2.000000
}

// ExampleSparse only builds vertices for the two non-zero masses.
func ExampleSparse() {
	left := make([]float64, 100)
	right := make([]float64, 100)
	left[10], right[90] = 1, 1

	d, _ := wasserstein.Sparse(left, right)
	fmt.Printf("%.6f\n", d)
	// Output:
	// 80.000000
}

// ExampleDensePlan prints where each part of the mass goes.
//
//	left  = [0.5 0.5]
//	right = [1.0 0.0]
func ExampleDensePlan() {
	plan, err := wasserstein.DensePlan([]float64{0.5, 0.5}, []float64{1, 0})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("cost=%.6f\n", plan.Cost)
	for _, m := range plan.Moves {
		fmt.Printf("%d → %d: %.6f\n", m.From, m.To, m.Mass)
	}
	// Output:
	// cost=0.500000
	// 0 → 0: 0.500000
	// 1 → 0: 0.500000
}

// ExampleFatalInvariantError shows the error a zero-cost plan for
// different inputs produces.
func ExampleFatalInvariantError() {
	_, err := wasserstein.Dense([]float64{2, 0}, []float64{1, 0})
	fmt.Println(errors.Is(err, wasserstein.ErrFatalInvariant))
	fmt.Println(err)
	// Output:
	// true
	// wasserstein: zero cost for unequal distributions: left=[2 0] right=[1 0]
}
