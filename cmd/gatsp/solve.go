package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/gatsp/bench"
	"github.com/katalvlaran/gatsp/city"
	"github.com/katalvlaran/gatsp/driver"
	"github.com/katalvlaran/gatsp/ga"
	"github.com/katalvlaran/gatsp/store"
	"github.com/katalvlaran/gatsp/tsplib"
)

type solveResult struct {
	RunID        string   `json:"run_id,omitempty"`
	Source       string   `json:"source"`
	Cities       int      `json:"cities"`
	Generations  int      `json:"generations"`
	Stagnated    bool     `json:"stagnated"`
	BestDistance float64  `json:"best_distance"`
	Polished     float64  `json:"polished_distance,omitempty"`
	Route        []string `json:"route"`
	DurationMS   int64    `json:"duration_ms"`
}

func runSolve(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	def := ga.DefaultOptions()
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tspPath := fs.String("tsp", "", "TSPLIB instance file")
	numCities := fs.Int("cities", 20, "number of random cities when -tsp is not set")
	citySeed := fs.Int64("city-seed", 1, "seed for random cities")
	population := fs.Int("population", def.PopulationSize, "population size")
	elite := fs.Int("elite", def.EliteSize, "elite size")
	rate := fs.Float64("mutation-rate", def.MutationRate, "mutation rate in [0,1]")
	tournament := fs.Int("tournament", def.TournamentSize, "tournament size")
	crossover := fs.String("crossover", def.Crossover.String(), "crossover: ordered|cycle")
	mutation := fs.String("mutation", def.Mutation.String(), "mutation: swap|insertion|inversion")
	stopping := fs.Bool("stop", false, "stop when the best distance stagnates")
	threshold := fs.Float64("threshold", def.ImprovementThreshold, "relative improvement below which the run stagnates")
	window := fs.Int("window", def.GenerationsWithoutImprovement, "stagnation window in generations")
	stagnation := fs.String("stagnation", def.Stagnation.String(), "stagnation rule: oldest-newest|window-min")
	generations := fs.Int("generations", bench.DefaultMaxGenerations, "generation budget")
	seed := fs.Int64("seed", 0, "engine seed (0 uses the fixed default)")
	pause := fs.Duration("pause", 0, "delay between generations")
	storeKind := fs.String("store", "", "persist the run: memory|sqlite")
	dbPath := fs.String("db", defaultDBPath, "sqlite database path")
	plotPath := fs.String("plot", "", "write a convergence chart to this PNG path")
	polish := fs.Bool("polish", false, "improve the final route with 2-opt")
	jsonOut := fs.Bool("json", false, "print the result as JSON")
	lf := addLogFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *generations < 1 {
		return errors.New("generations must be > 0")
	}

	log, err := lf.logger(stderr)
	if err != nil {
		return err
	}

	cities, source, err := loadCities(*tspPath, *numCities, *citySeed)
	if err != nil {
		return err
	}

	opts := def
	opts.PopulationSize = *population
	opts.EliteSize = *elite
	opts.MutationRate = *rate
	opts.TournamentSize = *tournament
	opts.UseStoppingCriterion = *stopping
	opts.ImprovementThreshold = *threshold
	opts.GenerationsWithoutImprovement = *window
	opts.Seed = *seed
	opts.Logger = log
	if opts.Crossover, err = ga.ParseCrossoverType(*crossover); err != nil {
		return err
	}
	if opts.Mutation, err = ga.ParseMutationType(*mutation); err != nil {
		return err
	}
	if opts.Stagnation, err = ga.ParseStagnationStrategy(*stagnation); err != nil {
		return err
	}

	eng, err := ga.NewEngine(cities, opts)
	if err != nil {
		return err
	}

	s, err := openStore(ctx, *storeKind, *dbPath)
	if err != nil {
		return err
	}
	if s != nil {
		defer s.Close()
	}

	log.Info("solve started",
		slog.String("source", source),
		slog.Int("cities", len(cities)),
		slog.String("crossover", opts.Crossover.String()),
		slog.String("mutation", opts.Mutation.String()),
		slog.Int("population", opts.PopulationSize))

	start := time.Now()
	last, err := runLoop(ctx, eng, driver.LoopConfig{MaxGenerations: *generations, Pause: *pause, Logger: log})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	res := solveResult{
		Source:       source,
		Cities:       len(cities),
		Generations:  eng.Generation(),
		Stagnated:    last.Generation.ShouldStop,
		BestDistance: eng.BestDistance(),
		DurationMS:   elapsed.Milliseconds(),
	}
	route := eng.BestRoute()
	if *polish {
		if route, res.Polished, err = ga.TwoOpt(city.NewMatrix(cities), route, 0); err != nil {
			return err
		}
		log.Info("route polished",
			slog.Float64("from", res.BestDistance),
			slog.Float64("to", res.Polished))
	}
	for _, i := range route {
		res.Route = append(res.Route, cities[i].Label)
	}

	if s != nil {
		rec := store.Run{
			Label:          fmt.Sprintf("solve/%s/%s", opts.Crossover, opts.Mutation),
			Source:         source,
			Cities:         len(cities),
			PopulationSize: opts.PopulationSize,
			EliteSize:      opts.EliteSize,
			TournamentSize: opts.TournamentSize,
			MutationRate:   opts.MutationRate,
			Crossover:      opts.Crossover.String(),
			Mutation:       opts.Mutation.String(),
			Seed:           opts.Seed,
			Generations:    res.Generations,
			BestDistance:   res.BestDistance,
			BestRoute:      eng.BestRoute(),
			History:        eng.History(),
			Duration:       elapsed,
		}
		if res.Stagnated {
			rec.StagnationGeneration = res.Generations
		}
		if res.RunID, err = s.SaveRun(ctx, rec); err != nil {
			return err
		}
	}

	if *plotPath != "" {
		series := []bench.Series{{Name: source, History: eng.History()}}
		if err := bench.PlotHistories(*plotPath, "Best distance per generation", series); err != nil {
			return err
		}
		log.Info("chart written", slog.String("path", *plotPath))
	}

	if *jsonOut {
		return writeJSON(stdout, res)
	}
	printSolve(stdout, res)
	return nil
}

// runLoop drives eng on a background loop and returns its final Update.
func runLoop(ctx context.Context, eng *ga.Engine, cfg driver.LoopConfig) (driver.Update, error) {
	loop := driver.NewLoop(eng, cfg)
	if err := loop.Start(ctx); err != nil {
		return driver.Update{}, err
	}

	var last driver.Update
	for u := range loop.Updates() {
		last = u
		if u.Done {
			break
		}
		cfg.Logger.Debug("progress",
			slog.Int("generation", u.Generation.Number),
			slog.Float64("best_distance", u.Generation.BestDistance))
	}
	loop.Wait()
	return last, last.Err
}

func loadCities(path string, n int, seed int64) ([]city.City, string, error) {
	if path != "" {
		inst, err := tsplib.ReadFile(path)
		if err != nil {
			return nil, "", err
		}
		return inst.Cities, path, nil
	}
	if n < city.MinCities {
		return nil, "", fmt.Errorf("cities must be >= %d", city.MinCities)
	}
	return city.Random(n, ga.NewRand(seed)), "random", nil
}

func printSolve(w io.Writer, res solveResult) {
	status := "budget spent"
	if res.Stagnated {
		status = "stagnated"
	}
	fmt.Fprintf(w, "source: %s (%d cities)\n", res.Source, res.Cities)
	fmt.Fprintf(w, "generations: %d (%s)\n", res.Generations, status)
	fmt.Fprintf(w, "best distance: %.4f\n", res.BestDistance)
	if res.Polished > 0 {
		fmt.Fprintf(w, "polished distance: %.4f\n", res.Polished)
	}
	if len(res.Route) > 0 {
		fmt.Fprintf(w, "route: %s -> %s\n", strings.Join(res.Route, " -> "), res.Route[0])
	}
	if res.RunID != "" {
		fmt.Fprintf(w, "run id: %s\n", res.RunID)
	}
}
