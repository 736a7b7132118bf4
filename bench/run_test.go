package bench_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/gatsp/bench"
	"github.com/katalvlaran/gatsp/ga"
	"github.com/katalvlaran/gatsp/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurations_GridOrder(t *testing.T) {
	cfg := smallConfig()
	got := cfg.Configurations()
	require.Len(t, got, 2*2*2*2)
	assert.Equal(t, bench.Configuration{
		Cities: 5, PopulationRatio: 2, PopulationSize: 10,
		Crossover: ga.OrderedCrossover, Mutation: ga.SwapMutation,
	}, got[0])
	assert.Equal(t, bench.Configuration{
		Cities: 6, PopulationRatio: 3, PopulationSize: 18,
		Crossover: ga.CycleCrossover, Mutation: ga.InversionMutation,
	}, got[len(got)-1])
	assert.Equal(t, "n=5/pop=10/ordered/swap", got[0].Label())
}

func TestConfig_Options(t *testing.T) {
	cfg := bench.DefaultConfig()
	c := configuration(10, 5, ga.CycleCrossover, ga.InsertionMutation)
	opts := cfg.Options(c, 7)

	assert.Equal(t, 50, opts.PopulationSize)
	assert.Equal(t, 20, opts.EliteSize)
	assert.Equal(t, 5, opts.TournamentSize)
	assert.InDelta(t, 0.1, opts.MutationRate, 1e-12)
	assert.True(t, opts.UseStoppingCriterion)
	assert.Equal(t, ga.StagnationWindowMin, opts.Stagnation)
	assert.Equal(t, 20, opts.GenerationsWithoutImprovement)
	assert.InDelta(t, 0.005, opts.ImprovementThreshold, 1e-12)
	assert.Equal(t, int64(7), opts.Seed)

	// Elite and tournament sizes never exceed the population.
	small := cfg.Options(configuration(3, 1, ga.OrderedCrossover, ga.SwapMutation), 1)
	assert.Equal(t, 3, small.EliteSize)
	assert.Equal(t, 3, small.TournamentSize)
}

func TestRun_SmallGrid(t *testing.T) {
	cfg := smallConfig()
	mem := store.NewMemoryStore()
	require.NoError(t, mem.Init(context.Background()))
	cfg.Store = mem

	rep, err := bench.Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, rep.Runs, 32)
	require.Len(t, rep.Summaries, 16)

	for _, r := range rep.Runs {
		require.LessOrEqual(t, r.FinalGeneration, cfg.MaxGenerations)
		require.Len(t, r.History, r.FinalGeneration)
		require.Equal(t, r.History[len(r.History)-1], r.BestDistance)
		require.NoError(t, ga.ValidatePermutation(r.BestRoute, r.Cities))
		if r.StagnationGeneration > 0 {
			require.Equal(t, r.FinalGeneration, r.StagnationGeneration)
			require.GreaterOrEqual(t, r.StagnationGeneration, cfg.StagnationWindow)
		}
		require.NotEmpty(t, r.RunID)
	}

	saved, err := mem.ListRuns(context.Background())
	require.NoError(t, err)
	assert.Len(t, saved, 32)
	got, err := mem.GetRun(context.Background(), rep.Runs[0].RunID)
	require.NoError(t, err)
	assert.Equal(t, rep.Runs[0].Label(), got.Label)
	assert.Equal(t, rep.Runs[0].BestDistance, got.BestDistance)
}

// TestRun_DeterministicAcrossWorkers: results depend on the seed only.
func TestRun_DeterministicAcrossWorkers(t *testing.T) {
	a := smallConfig()
	a.Workers = 1
	b := smallConfig()
	b.Workers = 8

	ra, err := bench.Run(context.Background(), a)
	require.NoError(t, err)
	rb, err := bench.Run(context.Background(), b)
	require.NoError(t, err)

	require.Len(t, rb.Runs, len(ra.Runs))
	for i := range ra.Runs {
		assert.Equal(t, ra.Runs[i].Seed, rb.Runs[i].Seed)
		assert.Equal(t, ra.Runs[i].History, rb.Runs[i].History)
		assert.Equal(t, ra.Runs[i].BestRoute, rb.Runs[i].BestRoute)
	}
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()

	cfg := smallConfig()
	cfg.Runs = 0
	_, err := bench.Run(ctx, cfg)
	require.ErrorIs(t, err, bench.ErrEmptyGrid)

	cfg = smallConfig()
	cfg.Crossovers = nil
	_, err = bench.Run(ctx, cfg)
	require.ErrorIs(t, err, bench.ErrEmptyGrid)

	cfg = smallConfig()
	cfg.CitySizes = []int{2}
	_, err = bench.Run(ctx, cfg)
	require.ErrorIs(t, err, ga.ErrConfiguration)

	cfg = smallConfig()
	cfg.MaxGenerations = 0
	_, err = bench.Run(ctx, cfg)
	require.ErrorIs(t, err, ga.ErrConfiguration)

	cfg = smallConfig()
	cfg.StagnationWindow = 0
	_, err = bench.Run(ctx, cfg)
	require.ErrorIs(t, err, ga.ErrConfiguration)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bench.Run(ctx, smallConfig())
	require.ErrorIs(t, err, context.Canceled)
}
