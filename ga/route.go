// Package ga - route utilities shared by the engine and operators.
//
// A Route is an open permutation of city indices {0..n-1}; the closing edge
// from the last city back to the first is implied. Provided helpers:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - Clone: independent copy (the engine never aliases routes across generations).
//   - RandomRoute: uniform random permutation.
//   - RotateToStart: cyclic shift so the route starts at a given city.
//   - Reversed: the same cycle walked in the opposite direction.
//   - EqualModuloRotation: equality of two cycles under rotation.
//
// Design:
//   - No logging, no panics on caller input; only wrapped sentinels from types.go.
//   - O(n) time for every helper.
package ga

import (
	"fmt"
	"math/rand"
	"slices"
)

// Route is an ordered permutation of city indices visited as a closed cycle.
type Route []int

// Clone returns an independent copy of r. A nil route clones to nil.
func (r Route) Clone() Route {
	if r == nil {
		return nil
	}
	out := make(Route, len(r))
	copy(out, r)
	return out
}

// Reversed returns a new route visiting the same cycle in the opposite direction.
//
// Complexity: O(n).
func (r Route) Reversed() Route {
	out := r.Clone()
	slices.Reverse(out)
	return out
}

// ValidatePermutation checks that r is a permutation of {0..n-1}.
// Violations are reported as ErrOperatorPrecondition.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(r Route, n int) error {
	if len(r) != n || n <= 0 {
		return fmt.Errorf("%w: route length %d, want %d", ErrOperatorPrecondition, len(r), n)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = r[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: city %d out of range at position %d", ErrOperatorPrecondition, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: city %d repeated at position %d", ErrOperatorPrecondition, v, i)
		}
		seen[v] = true
	}

	return nil
}

// RandomRoute returns a uniformly random permutation of {0..n-1}.
//
// Complexity: O(n).
func RandomRoute(n int, rng *rand.Rand) Route {
	out := make(Route, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = i
	}
	shuffleInPlace(out, rng)

	return out
}

// RotateToStart returns a copy of r shifted cyclically so that out[0] == start.
// The cycle, and therefore its length, is unchanged.
//
// Complexity: O(n).
func RotateToStart(r Route, start int) (Route, error) {
	var pivot = slices.Index(r, start)
	if pivot < 0 {
		return nil, fmt.Errorf("%w: city %d not in route", ErrOperatorPrecondition, start)
	}

	var (
		n   = len(r)
		out = make(Route, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = r[(pivot+i)%n]
	}

	return out, nil
}

// EqualModuloRotation reports whether a and b describe the same directed cycle,
// i.e. b is a rotation of a. Direction matters; compare with b.Reversed() for
// undirected equality.
//
// Complexity: O(n).
func EqualModuloRotation(a, b Route) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	var pivot = slices.Index(b, a[0])
	if pivot < 0 {
		return false
	}

	var (
		n = len(a)
		i int
	)
	for i = 0; i < n; i++ {
		if a[i] != b[(pivot+i)%n] {
			return false
		}
	}

	return true
}

// reverseSpan reverses r[i..k] inclusive in place.
//
// Complexity: O(k-i).
func reverseSpan(r Route, i, k int) {
	for i < k {
		r[i], r[k] = r[k], r[i]
		i++
		k--
	}
}
