package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/gatsp/store"
)

func runRuns(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	fs.SetOutput(stdout)
	dbPath := fs.String("db", defaultDBPath, "sqlite database path")
	id := fs.String("id", "", "show one run including its history")
	limit := fs.Int("limit", 20, "max runs to list (most recent)")
	jsonOut := fs.Bool("json", false, "emit JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *limit <= 0 {
		return errors.New("limit must be > 0")
	}

	s, err := openStore(ctx, store.KindSQLite, *dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	if *id != "" {
		run, err := s.GetRun(ctx, *id)
		if err != nil {
			return err
		}
		if *jsonOut {
			return writeJSON(stdout, run)
		}
		fmt.Fprintf(stdout, "id: %s\ncreated: %s\nlabel: %s\nsource: %s (%d cities)\n",
			run.ID, run.CreatedAt.Format("2006-01-02 15:04:05"), run.Label, run.Source, run.Cities)
		fmt.Fprintf(stdout, "operators: %s/%s  population %d  elite %d  tournament %d  mutation rate %g\n",
			run.Crossover, run.Mutation, run.PopulationSize, run.EliteSize, run.TournamentSize, run.MutationRate)
		fmt.Fprintf(stdout, "generations: %d  stagnation: %d  best distance: %.4f  duration: %s\n",
			run.Generations, run.StagnationGeneration, run.BestDistance, run.Duration)
		fmt.Fprintf(stdout, "history: %v\n", run.History)
		return nil
	}

	runs, err := s.ListRuns(ctx)
	if err != nil {
		return err
	}
	if len(runs) > *limit {
		runs = runs[len(runs)-*limit:]
	}
	if *jsonOut {
		return writeJSON(stdout, runs)
	}
	if len(runs) == 0 {
		fmt.Fprintln(stdout, "no runs found")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(stdout, "%s  %s  %-32s  n=%-4d gens=%-5d best=%.4f\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Label, r.Cities, r.Generations, r.BestDistance)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
