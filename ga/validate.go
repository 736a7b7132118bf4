// Package ga - validation shared by Initialize and the exported operators.
//
// This file contains small, side-effect free checks that:
//  1. Validate Options (sizes, rates, operator enums, stopping parameters).
//  2. Validate the city list (count, finite coordinates).
//  3. Validate operator inputs (equal-length parents, minimum length).
//
// Design principles:
//   - Eager and exhaustive: Initialize runs every check before touching state.
//   - No logging, no panics on caller input; only wrapped sentinels from types.go.
package ga

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gatsp/city"
)

// minOperatorLen is the shortest route on which crossover and mutation are defined.
const minOperatorLen = 2

// validateAll verifies the city list and options together.
// Input problems map to ErrDegenerateInput, parameter problems to ErrConfiguration.
//
// Complexity: O(n).
func validateAll(cities []city.City, opts Options) error {
	// Stage 1: options in isolation.
	if err := validateOptions(opts); err != nil {
		return err
	}

	// Stage 2: the instance itself.
	if err := city.Validate(cities); err != nil {
		return fmt.Errorf("%w: %w", ErrDegenerateInput, err)
	}

	return nil
}

// validateOptions checks the internal consistency of opts.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.PopulationSize < 2 {
		return fmt.Errorf("%w: population size %d < 2", ErrConfiguration, opts.PopulationSize)
	}
	if opts.EliteSize < 0 {
		return fmt.Errorf("%w: elite size %d < 0", ErrConfiguration, opts.EliteSize)
	}
	if opts.EliteSize > opts.PopulationSize {
		return fmt.Errorf("%w: elite size %d exceeds population size %d",
			ErrConfiguration, opts.EliteSize, opts.PopulationSize)
	}
	if opts.TournamentSize < 1 || opts.TournamentSize > opts.PopulationSize {
		return fmt.Errorf("%w: tournament size %d outside [1, %d]",
			ErrConfiguration, opts.TournamentSize, opts.PopulationSize)
	}
	// NaN fails both comparisons, so test the accepted range positively.
	if !(opts.MutationRate >= 0 && opts.MutationRate <= 1) {
		return fmt.Errorf("%w: mutation rate %v outside [0, 1]", ErrConfiguration, opts.MutationRate)
	}
	if !(opts.ImprovementThreshold > 0) || math.IsInf(opts.ImprovementThreshold, 0) {
		return fmt.Errorf("%w: improvement threshold %v must be positive and finite",
			ErrConfiguration, opts.ImprovementThreshold)
	}
	if opts.GenerationsWithoutImprovement < 1 {
		return fmt.Errorf("%w: stagnation window %d < 1", ErrConfiguration, opts.GenerationsWithoutImprovement)
	}

	if _, ok := crossoverNames[opts.Crossover]; !ok {
		return fmt.Errorf("%w: %w: crossover %d", ErrConfiguration, ErrUnknownOperator, int(opts.Crossover))
	}
	if _, ok := mutationNames[opts.Mutation]; !ok {
		return fmt.Errorf("%w: %w: mutation %d", ErrConfiguration, ErrUnknownOperator, int(opts.Mutation))
	}
	if _, ok := stagnationNames[opts.Stagnation]; !ok {
		return fmt.Errorf("%w: %w: stagnation %d", ErrConfiguration, ErrUnknownOperator, int(opts.Stagnation))
	}

	return nil
}

// validateParents enforces the crossover contract: equal lengths, n ≥ 2.
//
// Complexity: O(1).
func validateParents(p1, p2 Route) error {
	if len(p1) != len(p2) {
		return fmt.Errorf("%w: parent lengths %d and %d differ", ErrOperatorPrecondition, len(p1), len(p2))
	}
	if len(p1) < minOperatorLen {
		return fmt.Errorf("%w: route length %d < %d", ErrOperatorPrecondition, len(p1), minOperatorLen)
	}

	return nil
}

// validateMutable enforces the mutation contract: n ≥ 2 and rate in [0,1].
//
// Complexity: O(1).
func validateMutable(r Route, rate float64) error {
	if len(r) < minOperatorLen {
		return fmt.Errorf("%w: route length %d < %d", ErrOperatorPrecondition, len(r), minOperatorLen)
	}
	if !(rate >= 0 && rate <= 1) {
		return fmt.Errorf("%w: mutation rate %v outside [0, 1]", ErrOperatorPrecondition, rate)
	}

	return nil
}
