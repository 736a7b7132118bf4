// Package city - constructors, distance and validation.
package city

import (
	"fmt"
	"math"
	"math/rand"
)

// randomSpan is the side of the square used by Random: coordinates fall in [0, randomSpan).
const randomSpan = 100.0

// New returns a City at (x, y) with the given label.
func New(x, y float64, label string) City {
	return City{X: x, Y: y, Label: label}
}

// String renders the city as "Label(x,y)", or "(x,y)" when unlabeled.
func (c City) String() string {
	return fmt.Sprintf("%s(%g,%g)", c.Label, c.X, c.Y)
}

// Distance returns the Euclidean distance between a and b.
//
// Complexity: O(1).
func Distance(a, b City) float64 {
	var dx, dy float64
	dx = a.X - b.X
	dy = a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Validate checks that cities describes a usable instance:
// at least MinCities entries, all coordinates finite.
// Coincident coordinates are legal.
//
// Complexity: O(n).
func Validate(cities []City) error {
	if len(cities) < MinCities {
		return fmt.Errorf("%w: got %d", ErrTooFewCities, len(cities))
	}

	var i int
	for i = range cities {
		if !finite(cities[i].X) || !finite(cities[i].Y) {
			return fmt.Errorf("%w: city %d (%q)", ErrInvalidCoordinate, i, cities[i].Label)
		}
	}

	return nil
}

// Random returns n cities drawn uniformly from [0,100)², labeled City-1..City-n.
// The same rng state always yields the same instance.
//
// Complexity: O(n).
func Random(n int, rng *rand.Rand) []City {
	if n <= 0 {
		return nil
	}
	out := make([]City, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = City{
			X:     rng.Float64() * randomSpan,
			Y:     rng.Float64() * randomSpan,
			Label: DefaultLabel(i),
		}
	}

	return out
}

// DefaultLabel is the label given to the i-th (0-based) generated or imported city.
func DefaultLabel(i int) string {
	return fmt.Sprintf("City-%d", i+1)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
