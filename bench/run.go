package bench

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/gatsp/city"
	"github.com/katalvlaran/gatsp/driver"
	"github.com/katalvlaran/gatsp/ga"
	"github.com/katalvlaran/gatsp/store"
)

// instanceStreams offsets instance seeds from engine seeds.
const instanceStreams uint64 = 1 << 32

// RunResult is one run of one grid point.
type RunResult struct {
	Configuration
	Run  int
	Seed int64

	BestDistance         float64
	BestRoute            ga.Route
	Duration             time.Duration
	StagnationGeneration int // generation that tripped the stopping rule, 0 if the budget ran out
	FinalGeneration      int // generations executed
	History              []float64

	RunID string // set when the run was saved to Config.Store
}

// Report holds every run of a benchmark and its per-configuration summary.
type Report struct {
	Config    Config
	Runs      []RunResult // grid order, then run index
	Summaries []Summary   // grid order
}

// job is one scheduled run. index is its slot in Report.Runs.
type job struct {
	index  int
	config Configuration
	run    int
	seed   int64
	cities []city.City
}

// Run executes the whole grid on a bounded worker pool. The first failing
// run cancels the rest and its error is returned.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	var (
		log   = cfg.logger()
		jobs  = cfg.jobs()
		runs  = make([]RunResult, len(jobs))
		start = time.Now()
	)
	log.Info("benchmark started",
		slog.Int("configurations", len(jobs)/cfg.Runs),
		slog.Int("runs", len(jobs)),
		slog.Int("workers", cfg.workers()))

	p := pool.New().
		WithContext(ctx).
		WithMaxGoroutines(cfg.workers()).
		WithCancelOnError().
		WithFirstError()
	for _, j := range jobs {
		p.Go(func(ctx context.Context) error {
			res, err := runOne(ctx, cfg, j)
			if err != nil {
				return fmt.Errorf("bench: %s run %d: %w", j.config.Label(), j.run, err)
			}
			runs[j.index] = res
			log.Debug("run finished",
				slog.String("config", j.config.Label()),
				slog.Int("run", j.run),
				slog.Float64("best_distance", res.BestDistance),
				slog.Int("generations", res.FinalGeneration))
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		log.Error("benchmark failed", slog.Any("error", err))
		return nil, err
	}

	report := &Report{Config: cfg, Runs: runs, Summaries: Aggregate(runs)}
	log.Info("benchmark finished",
		slog.Int("runs", len(runs)),
		slog.Duration("elapsed", time.Since(start)))
	return report, nil
}

// jobs lays out every run in grid order with its seed and shared instance.
func (cfg Config) jobs() []job {
	var (
		configs   = cfg.Configurations()
		instances = make(map[int][][]city.City, len(cfg.CitySizes))
		out       = make([]job, 0, len(configs)*cfg.Runs)
	)
	for si, n := range cfg.CitySizes {
		if _, ok := instances[n]; ok {
			continue
		}
		sets := make([][]city.City, cfg.Runs)
		for r := range sets {
			stream := instanceStreams + uint64(si*cfg.Runs+r)
			sets[r] = city.Random(n, ga.NewRand(ga.DeriveSeed(cfg.Seed, stream)))
		}
		instances[n] = sets
	}

	for _, c := range configs {
		for r := 0; r < cfg.Runs; r++ {
			idx := len(out)
			out = append(out, job{
				index:  idx,
				config: c,
				run:    r,
				seed:   ga.DeriveSeed(cfg.Seed, uint64(idx)),
				cities: instances[c.Cities][r],
			})
		}
	}
	return out
}

// runOne builds a fresh engine for j and drives it to completion.
func runOne(ctx context.Context, cfg Config, j job) (RunResult, error) {
	opts := cfg.Options(j.config, j.seed)
	eng, err := ga.NewEngine(j.cities, opts)
	if err != nil {
		return RunResult{}, err
	}
	res, err := driver.RunBatch(ctx, eng, cfg.MaxGenerations)
	if err != nil {
		return RunResult{}, err
	}

	out := RunResult{
		Configuration:        j.config,
		Run:                  j.run,
		Seed:                 j.seed,
		BestDistance:         res.BestDistance,
		BestRoute:            res.BestRoute,
		Duration:             res.Duration,
		StagnationGeneration: res.StagnationGeneration,
		FinalGeneration:      res.Generations,
		History:              res.History,
	}
	if cfg.Store != nil {
		if out.RunID, err = cfg.Store.SaveRun(ctx, out.record(opts)); err != nil {
			return RunResult{}, err
		}
	}
	return out, nil
}

// record converts r into its persisted form.
func (r RunResult) record(opts ga.Options) store.Run {
	return store.Run{
		Label:                r.Label(),
		Source:               "random",
		Cities:               r.Cities,
		PopulationSize:       opts.PopulationSize,
		EliteSize:            opts.EliteSize,
		TournamentSize:       opts.TournamentSize,
		MutationRate:         opts.MutationRate,
		Crossover:            opts.Crossover.String(),
		Mutation:             opts.Mutation.String(),
		Seed:                 r.Seed,
		Generations:          r.FinalGeneration,
		StagnationGeneration: r.StagnationGeneration,
		BestDistance:         r.BestDistance,
		BestRoute:            r.BestRoute,
		History:              r.History,
		Duration:             r.Duration,
	}
}
