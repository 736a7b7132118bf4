// Package ga - selection operators.
//
//   - EliteIndices: deterministic top-k by fitness, stable on ties.
//   - Tournament: best of k distinct uniform draws, ties to the earliest draw.
//   - ParentPool: elites first, then independent tournaments until full.
package ga

import (
	"cmp"
	"fmt"
	"math/rand"
	"slices"
)

// EliteIndices returns the indices of the min(eliteSize, len(fitness)) fittest
// routes, best first. Equal fitness keeps the lower original index first.
// A non-positive eliteSize yields an empty slice.
//
// Complexity: O(P log P).
func EliteIndices(fitness FitnessRecord, eliteSize int) []int {
	var k = min(max(eliteSize, 0), len(fitness))

	order := make([]int, len(fitness))
	var i int
	for i = range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		// Descending fitness.
		return cmp.Compare(fitness[b], fitness[a])
	})

	return order[:k]
}

// Tournament draws size distinct indices uniformly at random and returns the
// one with the highest fitness; on ties the earliest drawn index wins.
//
// Errors: ErrOperatorPrecondition when size ∉ [1, len(fitness)].
//
// Complexity: O(P) for the draw buffer, O(k) comparisons.
func Tournament(fitness FitnessRecord, size int, rng *rand.Rand) (int, error) {
	return tournament(fitness, size, rng, nil)
}

func tournament(fitness FitnessRecord, size int, rng *rand.Rand, scratch []int) (int, error) {
	if size < 1 || size > len(fitness) {
		return -1, fmt.Errorf("%w: tournament size %d outside [1, %d]", ErrOperatorPrecondition, size, len(fitness))
	}
	draws := sampleDistinct(len(fitness), size, rng, scratch)

	var (
		best = draws[0]
		idx  int
	)
	for _, idx = range draws[1:] {
		if fitness[idx] > fitness[best] {
			best = idx
		}
	}

	return best, nil
}

// ParentPool builds the selection pool for the next generation: the elite
// indices first, then one tournament winner per remaining slot until the pool
// holds populationSize indices. Draws within a tournament are without
// replacement; different tournaments are independent.
//
// Complexity: O(P log P + P·(P + k)).
func ParentPool(fitness FitnessRecord, eliteSize, tournamentSize, populationSize int, rng *rand.Rand) ([]int, error) {
	pool := make([]int, 0, populationSize)
	pool = append(pool, EliteIndices(fitness, min(eliteSize, populationSize))...)

	var (
		scratch = make([]int, len(fitness))
		idx     int
		err     error
	)
	for len(pool) < populationSize {
		idx, err = tournament(fitness, tournamentSize, rng, scratch)
		if err != nil {
			return nil, err
		}
		pool = append(pool, idx)
	}

	return pool, nil
}
