package ga_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gatsp/city"
	"github.com/katalvlaran/gatsp/ga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoOpt_UncrossesSquare(t *testing.T) {
	m := city.NewMatrix(squareCities())
	crossed := ga.Route{0, 2, 1, 3}
	require.InDelta(t, 20+20*math.Sqrt2, ga.RouteLength(m, crossed), epsTiny)

	got, l, err := ga.TwoOpt(m, crossed, 0)
	require.NoError(t, err)
	assert.InDelta(t, squareOptimum, l, epsTiny)
	assert.Equal(t, 0, got[0])
	assert.Equal(t, ga.Route{0, 2, 1, 3}, crossed, "input must not be modified")
}

// TestTwoOpt_LocalOptimum: no single reversal improves the result.
func TestTwoOpt_LocalOptimum(t *testing.T) {
	const n = 30
	m := city.NewMatrix(randomCities(n, 17))
	start := ga.RandomRoute(n, ga.NewRand(seedDet))

	got, l, err := ga.TwoOpt(m, start, 0)
	require.NoError(t, err)
	requirePermutation(t, got, n)
	assert.Equal(t, start[0], got[0])
	assert.LessOrEqual(t, l, ga.RouteLength(m, start))
	assert.Equal(t, ga.RouteLength(m, got), l)

	for i := 1; i <= n-2; i++ {
		for k := i + 1; k <= n-1; k++ {
			cand := got.Clone()
			for lo, hi := i, k; lo < hi; lo, hi = lo+1, hi-1 {
				cand[lo], cand[hi] = cand[hi], cand[lo]
			}
			require.GreaterOrEqual(t, ga.RouteLength(m, cand), l-1e-9, "move (%d,%d) still improves", i, k)
		}
	}
}

func TestTwoOpt_MaxMoves(t *testing.T) {
	const n = 25
	m := city.NewMatrix(circleCities(n))
	start := ga.RandomRoute(n, ga.NewRand(3))
	before := ga.RouteLength(m, start)

	one, l1, err := ga.TwoOpt(m, start, 1)
	require.NoError(t, err)
	assert.Less(t, l1, before)
	diff := 0
	for i := range one {
		if one[i] != start[i] {
			diff++
		}
	}
	assert.Positive(t, diff)

	_, full, err := ga.TwoOpt(m, start, 0)
	require.NoError(t, err)
	assert.LessOrEqual(t, full, l1)
}

func TestTwoOpt_Precondition(t *testing.T) {
	m := city.NewMatrix(squareCities())
	_, _, err := ga.TwoOpt(m, ga.Route{0, 1, 1, 3}, 0)
	require.ErrorIs(t, err, ga.ErrOperatorPrecondition)
	_, _, err = ga.TwoOpt(m, ga.Route{0, 1, 2}, 0)
	require.ErrorIs(t, err, ga.ErrOperatorPrecondition)
}
