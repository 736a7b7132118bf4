// Package ga - RNG utilities shared by the engine and its operators.
//
// This file centralizes deterministic random generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Performance: no hidden allocations in hot paths; O(1) helpers, O(k) partial shuffles.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Engine owns its own stream.
//   - Use DeriveSeed to give parallel runs independent, reproducible streams.
package ga

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// NewRand returns the deterministic generator an Engine would use for seed.
// Exposed so that drivers and tests can call the exported operators with the
// same seeding policy.
func NewRand(seed int64) *rand.Rand { return rngFromSeed(seed) }

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
// Benchmark drivers use it to give every run an independent, reproducible stream.
//
// Constants are the canonical SplitMix64 multipliers/finalizer.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, rng *rand.Rand) {
	var (
		i, j int
		n    = len(a)
	)
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// sampleDistinct draws k distinct indices from [0,n) uniformly without
// replacement, in draw order. scratch is reused when it has capacity ≥ n.
// The result aliases scratch.
//
// Preconditions: 0 ≤ k ≤ n.
//
// Complexity: O(n) to reset the scratch, O(k) draws.
func sampleDistinct(n, k int, rng *rand.Rand, scratch []int) []int {
	if cap(scratch) < n {
		scratch = make([]int, n)
	}
	scratch = scratch[:n]

	var i, j int
	for i = 0; i < n; i++ {
		scratch[i] = i
	}
	// Partial forward Fisher–Yates: position i receives a uniform pick from the rest.
	for i = 0; i < k; i++ {
		j = i + rng.Intn(n-i)
		scratch[i], scratch[j] = scratch[j], scratch[i]
	}

	return scratch[:k]
}

// distinctPair draws two distinct indices from [0,n) in draw order.
//
// Preconditions: n ≥ 2.
//
// Complexity: O(1).
func distinctPair(n int, rng *rand.Rand) (int, int) {
	var a, b int
	a = rng.Intn(n)
	b = rng.Intn(n - 1)
	if b >= a {
		b++
	}
	return a, b
}
