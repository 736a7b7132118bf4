// Package ga - 2-opt local search for polishing a finished route.
//
// TwoOpt performs deterministic first-improvement 2-opt on the closed tour
// described by a Route (the edge from the last city back to the first is
// implicit). For cut positions 1 ≤ i < k ≤ n-1, with a=r[i-1], b=r[i],
// c=r[k], d=r[(k+1) mod n], reversing r[i..k] changes the length by
//
//	Δ = w(a,c) + w(b,d) - w(a,b) - w(c,d).
//
// Design:
//   - Deterministic scan order; no RNG.
//   - r[0] never moves, so the polished route keeps its starting city.
//   - A move is applied only when Δ < -twoOptEps, so the search terminates.
//   - The returned length is recomputed from scratch (round1e9), not accumulated.
//
// Complexity:
//   - One pass: O(n²) candidate checks; each accepted move costs O(n).
package ga

import (
	"fmt"

	"github.com/katalvlaran/gatsp/city"
)

// twoOptEps is the minimum improvement for a move to be accepted.
const twoOptEps = 1e-12

// TwoOpt returns a copy of r improved by 2-opt moves until none shortens the
// tour or maxMoves moves have been applied (maxMoves ≤ 0 means no limit),
// together with its length. r is not modified.
//
// Errors: ErrOperatorPrecondition if r is not a permutation of the matrix's cities.
func TwoOpt(dist *city.Matrix, r Route, maxMoves int) (Route, float64, error) {
	var n = dist.N()
	if err := ValidatePermutation(r, n); err != nil {
		return nil, 0, fmt.Errorf("two-opt: %w", err)
	}
	cur := r.Clone()

	var (
		accepted   int
		improved   = true
		i, k       int
		a, b, c, d int
		delta      float64
	)
	for improved {
		improved = false
	scan:
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				a, b, c, d = cur[i-1], cur[i], cur[k], cur[(k+1)%n]
				delta = dist.At(a, c) + dist.At(b, d) - dist.At(a, b) - dist.At(c, d)
				if delta >= -twoOptEps {
					continue
				}
				reverseSpan(cur, i, k)
				accepted++
				improved = true
				break scan
			}
		}
		if maxMoves > 0 && accepted >= maxMoves {
			break
		}
	}

	return cur, RouteLength(dist, cur), nil
}
