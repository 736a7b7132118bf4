package ga_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gatsp/city"
	"github.com/katalvlaran/gatsp/ga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRouteLength_Square checks the closing edge is included.
func TestRouteLength_Square(t *testing.T) {
	m := city.NewMatrix(squareCities())
	assert.Equal(t, squareOptimum, ga.RouteLength(m, ga.Route{0, 1, 2, 3}))
	// Crossing diagonals: 10 + 10√2 + 10 + 10√2.
	assert.InDelta(t, 20+20*math.Sqrt2, ga.RouteLength(m, ga.Route{0, 2, 1, 3}), epsTiny)
}

// TestRouteLength_CyclicInvariance: rotations and reversal keep the length.
func TestRouteLength_CyclicInvariance(t *testing.T) {
	const n = 17
	m := city.NewMatrix(randomCities(n, 11))
	r := ga.RandomRoute(n, ga.NewRand(seedDet))
	base := ga.RouteLength(m, r)

	for start := 0; start < n; start++ {
		rot, err := ga.RotateToStart(r, r[start])
		require.NoError(t, err)
		assert.InDelta(t, base, ga.RouteLength(m, rot), 1e-9, "rotation %d", start)
		assert.InDelta(t, base, ga.RouteLength(m, rot.Reversed()), 1e-9, "reversed rotation %d", start)
	}
}

func TestFitness(t *testing.T) {
	assert.Equal(t, 0.025, ga.Fitness(40))
	assert.True(t, math.IsInf(ga.Fitness(0), 1))
}

// TestEvaluator_StrictImprovementAndHistory covers best-ever bookkeeping.
func TestEvaluator_StrictImprovementAndHistory(t *testing.T) {
	m := city.NewMatrix(squareCities())
	ev := ga.NewEvaluator(m)

	best, d := ev.Best()
	assert.Nil(t, best)
	assert.True(t, math.IsInf(d, 1))

	crossed := ga.Route{0, 2, 1, 3}
	optimal := ga.Route{0, 1, 2, 3}
	optimalRotated := ga.Route{1, 2, 3, 0}

	res := ev.Evaluate([]ga.Route{crossed, optimal, optimalRotated})
	require.True(t, res.Improved)
	require.Len(t, res.Fitness, 3)
	assert.Equal(t, ga.Fitness(squareOptimum), res.Fitness[1])
	assert.InDelta(t, 20+20*math.Sqrt2, res.WorstDistance, epsTiny)
	assert.InDelta(t, (20+20*math.Sqrt2+80)/3, res.MeanDistance, epsTiny)

	// Ties keep the first-found best.
	best, d = ev.Best()
	assert.Equal(t, optimal, best)
	assert.Equal(t, squareOptimum, d)

	// The record is a copy: mutating the population does not change it.
	optimal[0], optimal[1] = optimal[1], optimal[0]
	best, _ = ev.Best()
	assert.Equal(t, ga.Route{0, 1, 2, 3}, best)

	// A pass without improvement still appends to the history.
	res = ev.Evaluate([]ga.Route{crossed})
	assert.False(t, res.Improved)
	assert.Equal(t, []float64{squareOptimum, squareOptimum}, ev.History())

	ev.Reset()
	assert.Empty(t, ev.History())
	assert.True(t, math.IsInf(ev.BestDistance(), 1))
}

// TestEvaluator_CoincidentCities: zero-length tours yield +Inf fitness, no panic.
func TestEvaluator_CoincidentCities(t *testing.T) {
	cs := []city.City{city.New(1, 1, ""), city.New(1, 1, ""), city.New(1, 1, "")}
	ev := ga.NewEvaluator(city.NewMatrix(cs))
	res := ev.Evaluate([]ga.Route{{0, 1, 2}, {2, 1, 0}})
	assert.True(t, math.IsInf(res.Fitness[0], 1))
	assert.True(t, math.IsInf(res.Fitness[1], 1))
	assert.Equal(t, 0.0, ev.BestDistance())
}
