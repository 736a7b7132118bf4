// Package bench_test provides helpers shared across *_test.go files in this package.
package bench_test

import (
	"time"

	"github.com/katalvlaran/gatsp/bench"
	"github.com/katalvlaran/gatsp/ga"
)

// smallConfig returns a grid that finishes in well under a second.
func smallConfig() bench.Config {
	cfg := bench.DefaultConfig()
	cfg.CitySizes = []int{5, 6}
	cfg.PopulationRatios = []int{2, 3}
	cfg.Mutations = []ga.MutationType{ga.SwapMutation, ga.InversionMutation}
	cfg.Runs = 2
	cfg.MaxGenerations = 40
	cfg.EliteSize = 2
	cfg.TournamentSize = 2
	cfg.StagnationWindow = 5
	cfg.Seed = 42
	cfg.Workers = 4
	return cfg
}

// fakeRun builds a RunResult without running the engine.
func fakeRun(c bench.Configuration, run int, best float64, d time.Duration, stag int) bench.RunResult {
	return bench.RunResult{
		Configuration:        c,
		Run:                  run,
		BestDistance:         best,
		Duration:             d,
		StagnationGeneration: stag,
		FinalGeneration:      max(stag, 10),
		History:              []float64{best + 5, best},
	}
}

func configuration(n, ratio int, cx ga.CrossoverType, mt ga.MutationType) bench.Configuration {
	return bench.Configuration{Cities: n, PopulationRatio: ratio, PopulationSize: n * ratio, Crossover: cx, Mutation: mt}
}
