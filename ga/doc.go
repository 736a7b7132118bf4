// Package ga evolves Travelling Salesman tours with a genetic algorithm.
//
// A population of routes (permutations of city indices) is repeatedly
// evaluated, selected, recombined and mutated. Each call to
// Engine.RunGeneration performs one full generation:
//
//	evaluate → elitism + tournament parent pool → elite copies + bred children → advance
//
// Operators:
//
//   - Selection: EliteIndices (deterministic top-k, stable on ties) and
//     Tournament (best of k distinct uniform draws).
//   - Crossover: Ordered (OX) and Cycle (CX); both return a fresh, valid
//     permutation and never modify their parents.
//   - Mutation: Swap (per-gene probability), Insertion and Inversion
//     (per-route probability); all in place and permutation-preserving.
//
// Stopping:
//
//	The engine never stops on its own. RunGeneration reports ShouldStop when
//	Options.UseStoppingCriterion is set and the relative improvement over the
//	last GenerationsWithoutImprovement best distances falls below
//	ImprovementThreshold (see StagnationStrategy). The driver decides.
//
// Determinism:
//
//	All randomness comes from one *rand.Rand owned by the Engine and seeded
//	from Options.Seed. Identical cities, options and seed reproduce identical
//	histories and best routes on every platform.
//
// Concurrency:
//
//	An Engine is not safe for concurrent use. Drivers that run generations on
//	a background goroutine must hand the Engine to that goroutine exclusively.
//
// Complexity per generation (P = population, N = cities, k = tournament size):
//   - Evaluation: O(P·N).
//   - Parent pool: O(P log P + P·k).
//   - Breeding: O(P·N).
package ga
