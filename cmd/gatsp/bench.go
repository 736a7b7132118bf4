package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gatsp/bench"
)

func runBench(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	def := bench.DefaultConfig()
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	sizes := fs.String("sizes", joinInts(def.CitySizes), "comma-separated city counts")
	ratios := fs.String("ratios", joinInts(def.PopulationRatios), "comma-separated population ratios")
	crossovers := fs.String("crossovers", "ordered,cycle", "comma-separated crossover operators")
	mutations := fs.String("mutations", "swap,insertion,inversion", "comma-separated mutation operators")
	runs := fs.Int("runs", def.Runs, "runs per configuration")
	generations := fs.Int("generations", def.MaxGenerations, "generation budget per run")
	elite := fs.Int("elite", def.EliteSize, "elite size")
	tournament := fs.Int("tournament", def.TournamentSize, "tournament size")
	window := fs.Int("window", def.StagnationWindow, "stagnation window in generations")
	threshold := fs.Float64("threshold", def.ImprovementThreshold, "relative improvement below which a run stagnates")
	seed := fs.Int64("seed", def.Seed, "base seed for instances and engines")
	workers := fs.Int("workers", 0, "parallel runs (0 uses GOMAXPROCS)")
	outDir := fs.String("out", "test_results", "directory for CSV, XLSX and PNG outputs")
	storeKind := fs.String("store", "", "persist every run: memory|sqlite")
	dbPath := fs.String("db", defaultDBPath, "sqlite database path")
	lf := addLogFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	log, err := lf.logger(stderr)
	if err != nil {
		return err
	}

	cfg := def
	if cfg.CitySizes, err = parseInts(*sizes); err != nil {
		return fmt.Errorf("-sizes: %w", err)
	}
	if cfg.PopulationRatios, err = parseInts(*ratios); err != nil {
		return fmt.Errorf("-ratios: %w", err)
	}
	if cfg.Crossovers, err = parseCrossovers(*crossovers); err != nil {
		return err
	}
	if cfg.Mutations, err = parseMutations(*mutations); err != nil {
		return err
	}
	cfg.Runs = *runs
	cfg.MaxGenerations = *generations
	cfg.EliteSize = *elite
	cfg.TournamentSize = *tournament
	cfg.StagnationWindow = *window
	cfg.ImprovementThreshold = *threshold
	cfg.Seed = *seed
	cfg.Workers = *workers
	cfg.Logger = log

	if cfg.Store, err = openStore(ctx, *storeKind, *dbPath); err != nil {
		return err
	}
	if cfg.Store != nil {
		defer cfg.Store.Close()
	}

	rep, err := bench.Run(ctx, cfg)
	if err != nil {
		return err
	}
	paths, err := bench.WriteArtifacts(*outDir, rep)
	if err != nil {
		return err
	}
	for _, p := range paths {
		log.Info("artifact written", slog.String("path", p))
	}

	fmt.Fprintf(stdout, "%d configurations, %d runs\n", len(rep.Summaries), len(rep.Runs))
	fmt.Fprintln(stdout, "best configuration per city size:")
	for _, s := range bench.BestConfigurations(rep.Summaries) {
		fmt.Fprintf(stdout, "  %-28s mean %.2f  std %.2f  stagnation %.0f\n",
			s.Label(), s.MeanBestDistance, s.StdBestDistance, s.MeanStagnationGeneration)
	}
	fmt.Fprintln(stdout, "operator performance:")
	for _, o := range bench.OperatorPerformance(rep.Summaries) {
		fmt.Fprintf(stdout, "  %-8s %-10s mean %.2f  time %.3fs  stagnation %.0f\n",
			o.Crossover, o.Mutation, o.MeanBestDistance, o.MeanDuration.Seconds(), o.MeanStagnationGeneration)
	}
	fmt.Fprintf(stdout, "results in %s\n", *outDir)
	return nil
}

func joinInts(v []int) string {
	s := make([]string, len(v))
	for i, x := range v {
		s[i] = fmt.Sprint(x)
	}
	return strings.Join(s, ",")
}
