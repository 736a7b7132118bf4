// Package ga - mutation operators.
//
// All operators perturb the route in place and keep it a permutation.
// The probability semantics differ on purpose:
//   - Swap:      rate applies independently to every position (0..n swaps per call).
//   - Insertion: rate applies once per route (at most one move per call).
//   - Inversion: rate applies once per route (at most one reversal per call).
//
// Errors: ErrOperatorPrecondition when len(r) < 2 or rate ∉ [0,1].
package ga

import "math/rand"

// Swap visits every position i and, with probability rate, exchanges it with
// a uniformly drawn position j ∈ [0, n); j == i leaves the route unchanged.
//
// Complexity: O(n).
func Swap(r Route, rate float64, rng *rand.Rand) error {
	if err := validateMutable(r, rate); err != nil {
		return err
	}

	var (
		n    = len(r)
		i, j int
	)
	for i = 0; i < n; i++ {
		if rng.Float64() < rate {
			j = rng.Intn(n)
			if j != i {
				r[i], r[j] = r[j], r[i]
			}
		}
	}

	return nil
}

// Insertion, with probability rate, removes the city at a random position i
// and reinserts it at a distinct random position j, shifting the cities in
// between by one.
//
// Complexity: O(n).
func Insertion(r Route, rate float64, rng *rand.Rand) error {
	if err := validateMutable(r, rate); err != nil {
		return err
	}
	if !(rng.Float64() < rate) {
		return nil
	}

	var i, j = distinctPair(len(r), rng)
	var moved = r[i]
	if i < j {
		// Shift r[i+1..j] one step left.
		copy(r[i:j], r[i+1:j+1])
	} else {
		// Shift r[j..i-1] one step right.
		copy(r[j+1:i+1], r[j:i])
	}
	r[j] = moved

	return nil
}

// Inversion, with probability rate, reverses r[lo..hi] inclusive for two
// distinct random positions lo < hi.
//
// Complexity: O(n).
func Inversion(r Route, rate float64, rng *rand.Rand) error {
	if err := validateMutable(r, rate); err != nil {
		return err
	}
	if !(rng.Float64() < rate) {
		return nil
	}

	var lo, hi = distinctPair(len(r), rng)
	if lo > hi {
		lo, hi = hi, lo
	}
	reverseSpan(r, lo, hi)

	return nil
}
