// Package ga_test provides lightweight helpers shared across *_test.go files
// in this package.
package ga_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gatsp/city"
	"github.com/katalvlaran/gatsp/ga"
	"github.com/stretchr/testify/require"
)

const (
	// epsTiny is the tolerance used for tour length comparisons.
	epsTiny = 1e-6

	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(42)

	// squareOptimum is the optimal closed tour on squareCities.
	squareOptimum = 40.0
)

// squareCities returns the corners of a 10×10 square; the optimal tour is its perimeter.
func squareCities() []city.City {
	return []city.City{
		city.New(0, 0, "A"),
		city.New(0, 10, "B"),
		city.New(10, 10, "C"),
		city.New(10, 0, "D"),
	}
}

// circleCities places n cities on a circle of radius 50 with a small ripple
// that breaks symmetry ties.
func circleCities(n int) []city.City {
	out := make([]city.City, n)
	var (
		i  int
		th float64
		r  float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 50 + 0.5*float64(i%3)
		out[i] = city.New(r*math.Cos(th), r*math.Sin(th), city.DefaultLabel(i))
	}
	return out
}

// randomCities returns a reproducible random instance of n cities.
func randomCities(n int, seed int64) []city.City {
	return city.Random(n, rand.New(rand.NewSource(seed)))
}

// identity returns the route 0..n-1.
func identity(n int) ga.Route {
	r := make(ga.Route, n)
	for i := range r {
		r[i] = i
	}
	return r
}

// requirePermutation fails the test unless r is a permutation of {0..n-1}.
func requirePermutation(t *testing.T, r ga.Route, n int) {
	t.Helper()
	require.NoError(t, ga.ValidatePermutation(r, n), "route %v", r)
}

// testOptions returns a small, fast configuration with the given seed.
func testOptions(seed int64) ga.Options {
	opts := ga.DefaultOptions()
	opts.PopulationSize = 30
	opts.EliteSize = 4
	opts.TournamentSize = 3
	opts.MutationRate = 0.05
	opts.Seed = seed
	return opts
}

// mustEngine builds an engine or fails the test.
func mustEngine(t *testing.T, cities []city.City, opts ga.Options) *ga.Engine {
	t.Helper()
	e, err := ga.NewEngine(cities, opts)
	require.NoError(t, err)
	return e
}
