package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/emd/core"
)

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

func TestBalanceSupplies(t *testing.T) {
	cases := []struct {
		name     string
		supplies []float64
		check    func(t *testing.T, in, out []float64)
	}{
		{
			name:     "PositiveExcess",
			supplies: []float64{3, -1},
			check: func(t *testing.T, in, out []float64) {
				assert.InDelta(t, 1.0, out[0], 1e-14)
				assert.Equal(t, in[1], out[1])
				assert.Less(t, sum(out), 0.0)
			},
		},
		{
			name:     "ExactlyBalanced",
			supplies: []float64{1, -1},
			check: func(t *testing.T, in, out []float64) {
				assert.Less(t, out[0], in[0])
				assert.Less(t, sum(out), 0.0)
				assert.GreaterOrEqual(t, sum(out), -2*core.SupplyTolerance)
			},
		},
		{
			name:     "SlightlyNegative",
			supplies: []float64{-5e-16},
			check: func(t *testing.T, _, out []float64) {
				assert.InDelta(t, -2e-15, out[0], 1e-29)
			},
		},
		{
			name:     "PositiveBelowEpsilon",
			supplies: []float64{1e-16},
			check: func(t *testing.T, _, out []float64) {
				assert.InDelta(t, -core.SupplyTolerance, out[0], 1e-29)
			},
		},
		{
			name:     "ClearlyNegative",
			supplies: []float64{1, -2},
			check: func(t *testing.T, in, out []float64) {
				if diff := cmp.Diff(in, out); diff != "" {
					t.Errorf("negative totals must pass through (-in +out):\n%s", diff)
				}
			},
		},
		{
			name:     "ZeroFirstVertex",
			supplies: []float64{0, 1, -1},
			check: func(t *testing.T, _, out []float64) {
				assert.Less(t, out[0], 0.0, "vertex 0 becomes a tiny sink")
				assert.Equal(t, []float64{1, -1}, out[1:])
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := append([]float64(nil), tc.supplies...)
			out := core.BalanceSupplies(tc.supplies)
			assert.Equal(t, in, tc.supplies, "input must not be mutated")
			assert.Len(t, out, len(in))
			tc.check(t, in, out)
		})
	}
}

func TestBalanceSupplies_Empty(t *testing.T) {
	out := core.BalanceSupplies(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
