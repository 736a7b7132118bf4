package bench

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/gatsp/city"
	"github.com/katalvlaran/gatsp/ga"
	"github.com/katalvlaran/gatsp/store"
)

// ErrEmptyGrid indicates a Config whose grid has no points or no runs.
var ErrEmptyGrid = errors.New("bench: empty grid")

// Defaults of the benchmark grid.
const (
	DefaultRuns                 = 5
	DefaultMaxGenerations       = 1000
	DefaultEliteSize            = 20
	DefaultTournamentSize       = 5
	DefaultStagnationWindow     = 20
	DefaultImprovementThreshold = 0.005
)

// Config describes a benchmark grid and how to run it.
type Config struct {
	CitySizes        []int
	PopulationRatios []int // population size = ratio × city count
	Crossovers       []ga.CrossoverType
	Mutations        []ga.MutationType
	Runs             int // repetitions per grid point

	MaxGenerations       int
	EliteSize            int // clamped to the population size
	TournamentSize       int // clamped to the population size
	StagnationWindow     int
	ImprovementThreshold float64

	Seed    int64
	Workers int // parallel runs; < 1 means GOMAXPROCS

	Logger *slog.Logger // nil discards
	Store  store.Store  // optional; every run is saved when set
}

// DefaultConfig returns the full grid: 10 to 50 cities, population ratios
// 5 to 15, every operator pairing, five runs each.
func DefaultConfig() Config {
	return Config{
		CitySizes:            []int{10, 20, 30, 50},
		PopulationRatios:     []int{5, 7, 10, 12, 15},
		Crossovers:           ga.CrossoverTypes(),
		Mutations:            ga.MutationTypes(),
		Runs:                 DefaultRuns,
		MaxGenerations:       DefaultMaxGenerations,
		EliteSize:            DefaultEliteSize,
		TournamentSize:       DefaultTournamentSize,
		StagnationWindow:     DefaultStagnationWindow,
		ImprovementThreshold: DefaultImprovementThreshold,
		Seed:                 1,
	}
}

// Configuration is one grid point.
type Configuration struct {
	Cities          int
	PopulationRatio int
	PopulationSize  int
	Crossover       ga.CrossoverType
	Mutation        ga.MutationType
}

// Label renders the grid point as "n=<cities>/pop=<size>/<crossover>/<mutation>".
func (c Configuration) Label() string {
	return fmt.Sprintf("n=%d/pop=%d/%s/%s", c.Cities, c.PopulationSize, c.Crossover, c.Mutation)
}

// Configurations enumerates the grid in city size, ratio, crossover,
// mutation order.
func (cfg Config) Configurations() []Configuration {
	out := make([]Configuration, 0,
		len(cfg.CitySizes)*len(cfg.PopulationRatios)*len(cfg.Crossovers)*len(cfg.Mutations))
	for _, n := range cfg.CitySizes {
		for _, ratio := range cfg.PopulationRatios {
			for _, cx := range cfg.Crossovers {
				for _, mt := range cfg.Mutations {
					out = append(out, Configuration{
						Cities:          n,
						PopulationRatio: ratio,
						PopulationSize:  ratio * n,
						Crossover:       cx,
						Mutation:        mt,
					})
				}
			}
		}
	}
	return out
}

// Options returns the engine options for one run of c.
func (cfg Config) Options(c Configuration, seed int64) ga.Options {
	opts := ga.DefaultOptions()
	opts.PopulationSize = c.PopulationSize
	opts.EliteSize = min(cfg.EliteSize, c.PopulationSize)
	opts.TournamentSize = min(cfg.TournamentSize, c.PopulationSize)
	opts.MutationRate = 1 / float64(c.Cities)
	opts.Crossover = c.Crossover
	opts.Mutation = c.Mutation
	opts.UseStoppingCriterion = true
	opts.Stagnation = ga.StagnationWindowMin
	opts.GenerationsWithoutImprovement = cfg.StagnationWindow
	opts.ImprovementThreshold = cfg.ImprovementThreshold
	opts.Seed = seed
	return opts
}

// validate rejects grids that would produce no runs or invalid engines.
func (cfg Config) validate() error {
	if len(cfg.CitySizes) == 0 || len(cfg.PopulationRatios) == 0 ||
		len(cfg.Crossovers) == 0 || len(cfg.Mutations) == 0 || cfg.Runs < 1 {
		return ErrEmptyGrid
	}
	for _, n := range cfg.CitySizes {
		if n < city.MinCities {
			return fmt.Errorf("%w: city size %d < %d", ga.ErrConfiguration, n, city.MinCities)
		}
	}
	for _, r := range cfg.PopulationRatios {
		if r < 1 {
			return fmt.Errorf("%w: population ratio %d < 1", ga.ErrConfiguration, r)
		}
	}
	if cfg.MaxGenerations < 1 {
		return fmt.Errorf("%w: generation budget %d < 1", ga.ErrConfiguration, cfg.MaxGenerations)
	}
	return nil
}

func (cfg Config) workers() int {
	if cfg.Workers < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return cfg.Workers
}

func (cfg Config) logger() *slog.Logger {
	if cfg.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg.Logger
}
