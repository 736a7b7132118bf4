// Package ga - crossover operators.
//
// Both operators take two parents of equal length n ≥ 2 that are permutations
// of {0..n-1} and return a freshly allocated child that is again a permutation.
// Parents are never modified.
//
//   - Ordered (OX): child[start..end] = parent1[start..end]; the remaining slots
//     are filled in circular order from end+1 with parent2's cities, also scanned
//     circularly from end+1, skipping those already placed.
//   - Cycle (CX): the position cycle through 0 takes parent1's cities, every
//     other position takes parent2's.
//
// Complexity: O(n) time and O(n) space for both.
package ga

import (
	"fmt"
	"math/rand"
)

// emptySlot marks an unfilled child position.
const emptySlot = -1

// Ordered performs ordered crossover with two distinct cut points drawn
// uniformly from [0, n) and sorted so that start < end.
func Ordered(p1, p2 Route, rng *rand.Rand) (Route, error) {
	if err := validateParents(p1, p2); err != nil {
		return nil, err
	}
	var start, end = distinctPair(len(p1), rng)
	if start > end {
		start, end = end, start
	}

	return OrderedWithCuts(p1, p2, start, end)
}

// OrderedWithCuts performs ordered crossover with explicit inclusive cut points.
//
// Contract: 0 ≤ start ≤ end < n.
func OrderedWithCuts(p1, p2 Route, start, end int) (Route, error) {
	if err := validateParents(p1, p2); err != nil {
		return nil, err
	}
	var n = len(p1)
	if start < 0 || end >= n || start > end {
		return nil, fmt.Errorf("%w: cut points [%d, %d] outside [0, %d)", ErrOperatorPrecondition, start, end, n)
	}

	child := make(Route, n)
	placed := make([]bool, n)

	var i, c int
	for i = range child {
		child[i] = emptySlot
	}
	// Stage 1: inherit the segment from parent1.
	for i = start; i <= end; i++ {
		c = p1[i]
		if c < 0 || c >= n || placed[c] {
			return nil, fmt.Errorf("%w: parent1 is not a permutation", ErrOperatorPrecondition)
		}
		child[i] = c
		placed[c] = true
	}

	// Stage 2: circular scan of parent2 from end+1, circular fill from end+1.
	var (
		remaining = n - (end - start + 1)
		fill      = (end + 1) % n
		scan      = (end + 1) % n
		steps     int
	)
	for remaining > 0 {
		if steps == n {
			// A full lap without filling every slot means parent2 lacks cities.
			return nil, fmt.Errorf("%w: parent2 is not a permutation of parent1", ErrOperatorPrecondition)
		}
		c = p2[scan]
		if c >= 0 && c < n && !placed[c] {
			child[fill] = c
			placed[c] = true
			fill = (fill + 1) % n
			remaining--
		}
		scan = (scan + 1) % n
		steps++
	}

	return child, nil
}

// Cycle performs cycle crossover. It is deterministic: the cycle is always
// traced from position 0.
func Cycle(p1, p2 Route) (Route, error) {
	if err := validateParents(p1, p2); err != nil {
		return nil, err
	}
	var n = len(p1)

	// Position lookup: value → index in parent1.
	pos1 := make([]int, n)
	var i, c int
	for i = range pos1 {
		pos1[i] = emptySlot
	}
	for i, c = range p1 {
		if c < 0 || c >= n || pos1[c] != emptySlot {
			return nil, fmt.Errorf("%w: parent1 is not a permutation", ErrOperatorPrecondition)
		}
		pos1[c] = i
	}

	child := make(Route, n)
	for i = range child {
		child[i] = emptySlot
	}

	// Trace the cycle through position 0.
	var pos, steps int
	for {
		child[pos] = p1[pos]
		c = p2[pos]
		if c < 0 || c >= n {
			return nil, fmt.Errorf("%w: parent2 is not a permutation of parent1", ErrOperatorPrecondition)
		}
		pos = pos1[c]
		steps++
		if pos == 0 {
			break
		}
		if steps > n {
			return nil, fmt.Errorf("%w: cycle trace did not close", ErrOperatorPrecondition)
		}
	}

	// Every position outside the cycle comes from parent2.
	for i = range child {
		if child[i] == emptySlot {
			child[i] = p2[i]
		}
	}

	return child, nil
}
