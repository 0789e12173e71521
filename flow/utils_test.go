package flow

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// splitProblem is the four-vertex instance [0.5 0.5] → [1 0] on coordinates 0,1.
func splitProblem() Problem {
	return Problem{
		NumVertices: 4,
		Capacity:    1,
		Supplies:    []float64{0.5, 0.5, -1, 0},
		Left:        []int{0, 0, 1, 1},
		Right:       []int{2, 3, 2, 3},
		Costs:       []float64{0, 1, 1, 0},
	}
}

func TestBuildResidual_Layout(t *testing.T) {
	r := buildResidual(splitProblem(), 1e-12)

	assert.Equal(t, 4, r.source)
	assert.Equal(t, 5, r.sink)
	assert.Equal(t, 1.0, r.supply)
	// 4 edges + 2 source arcs + 1 sink arc, each as a pair.
	require.Len(t, r.arcs, 14)

	wantAdj := [][]int{
		{0, 2, 9},  // L0: edges 0,1 + reverse of S→L0
		{4, 6, 11}, // L1: edges 2,3 + reverse of S→L1
		{1, 5, 12}, // R0: reverses of edges 0,2 + arc to T
		{3, 7},     // R1: reverses of edges 1,3; zero supply, no sink arc
		{8, 10},    // S
		{13},       // T
	}
	if diff := cmp.Diff(wantAdj, r.adj); diff != "" {
		t.Errorf("adjacency mismatch (-want +got):\n%s", diff)
	}
	for i := 0; i < 4; i++ {
		assert.Equal(t, 1.0, r.arcs[2*i].cap, "forward arc of edge %d", i)
		assert.Equal(t, 0.0, r.arcs[2*i+1].cap, "reverse arc of edge %d", i)
		assert.Equal(t, -r.arcs[2*i].cost, r.arcs[2*i+1].cost)
	}
}

func TestResidual_PushAndUnrouted(t *testing.T) {
	r := buildResidual(splitProblem(), 1e-12)
	assert.Equal(t, 1.0, r.unrouted(1e-12))

	r.push(8, 0.5) // S→L0
	assert.Equal(t, 0.0, r.arcs[8].cap)
	assert.Equal(t, 0.5, r.arcs[9].cap)
	assert.Equal(t, 0.5, r.unrouted(1e-12))
}

func TestInitPotentials(t *testing.T) {
	p := Problem{
		NumVertices: 3,
		Capacity:    1,
		Supplies:    []float64{1, 0, -1},
		Left:        []int{0, 0, 1},
		Right:       []int{2, 1, 2},
		Costs:       []float64{1, -2, 0},
	}
	r := buildResidual(p, 1e-12)
	pi, err := initPotentials(r, 1e-12)
	require.NoError(t, err)
	// vertices 0,1,2 then S, T
	assert.Equal(t, []float64{0, -2, -2, 0, -2}, pi)
}

func TestInitPotentials_Unreachable(t *testing.T) {
	p := Problem{
		NumVertices: 3,
		Capacity:    1,
		Supplies:    []float64{1, 0, -1},
		Left:        []int{0},
		Right:       []int{2},
		Costs:       []float64{4},
	}
	r := buildResidual(p, 1e-12)
	pi, err := initPotentials(r, 1e-12)
	require.NoError(t, err)
	assert.Equal(t, 0.0, pi[1], "isolated vertex keeps potential 0")
	assert.Equal(t, 4.0, pi[2])
}

func TestPathFinder_SearchAndPath(t *testing.T) {
	r := buildResidual(splitProblem(), 1e-12)
	pi, err := initPotentials(r, 1e-12)
	require.NoError(t, err)
	pf := newPathFinder(r, pi, 1e-12)

	require.True(t, pf.search())
	assert.Equal(t, 0.0, pf.dist[r.sink])
	assert.Equal(t, []int{8, 0, 12}, pf.path(), "S→L0→R0→T")

	pf.updatePotentials()
	for _, id := range pf.path() {
		r.push(id, 0.5)
	}

	require.True(t, pf.search())
	assert.Equal(t, []int{10, 4, 12}, pf.path(), "S→L1→R0→T")
	assert.False(t, math.IsInf(pf.dist[r.sink], 1))
}

func TestPathFinder_NoPath(t *testing.T) {
	p := Problem{NumVertices: 2, Capacity: 1, Supplies: []float64{1, -1}}
	r := buildResidual(p, 1e-12)
	pi, err := initPotentials(r, 1e-12)
	require.NoError(t, err)
	pf := newPathFinder(r, pi, 1e-12)
	assert.False(t, pf.search())
}

func TestOptionsNormalize(t *testing.T) {
	o := Options{Epsilon: -1, MaxAugmentations: -3}
	o.normalize()
	assert.Equal(t, DefaultEpsilon, o.Epsilon)
	assert.Equal(t, 0, o.MaxAugmentations)
}

func TestTolerance(t *testing.T) {
	assert.Equal(t, 2e-12, tolerance(1e-12, 2))
	assert.InEpsilon(t, 1e-25, tolerance(1e-12, 1e-13), 1e-9)
	assert.Equal(t, 1e-12, tolerance(1e-12, 0), "no sources")
}

func TestPathFinder_RepeatedSearches(t *testing.T) {
	// Two sources share one sink; every search after the first must start
	// from an empty heap.
	p := Problem{
		NumVertices: 3,
		Capacity:    2,
		Supplies:    []float64{1, 1, -2},
		Left:        []int{0, 1},
		Right:       []int{2, 2},
		Costs:       []float64{0, 1},
	}
	r := buildResidual(p, 1e-12)
	pi, err := initPotentials(r, 1e-12)
	require.NoError(t, err)
	pf := newPathFinder(r, pi, 1e-12)

	for i := 0; i < 2; i++ {
		require.True(t, pf.search(), "search %d", i)
		pf.updatePotentials()
		ids := pf.path()
		amount := math.Inf(1)
		for _, id := range ids {
			amount = math.Min(amount, r.arcs[id].cap)
		}
		for _, id := range ids {
			r.push(id, amount)
		}
	}
	assert.Equal(t, 0.0, r.unrouted(1e-12))
	assert.False(t, pf.search(), "nothing left to route")
}
