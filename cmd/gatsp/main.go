// Command gatsp solves TSP instances with the genetic-algorithm engine,
// benchmarks operator configurations, and lists persisted runs.
//
// Usage:
//
//	gatsp solve [-tsp file.tsp | -cities N] [engine flags] [-store sqlite -db runs.db] [-plot out.png]
//	gatsp bench [-sizes 10,20] [-ratios 5,7] [-runs 5] [-out results]
//	gatsp runs  [-db runs.db] [-id RUN_ID] [-json]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/katalvlaran/gatsp/ga"
	"github.com/katalvlaran/gatsp/store"
)

const defaultDBPath = "gatsp.db"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "solve":
		return runSolve(ctx, args[1:], stdout, stderr)
	case "bench":
		return runBench(ctx, args[1:], stdout, stderr)
	case "runs":
		return runRuns(ctx, args[1:], stdout)
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: gatsp <solve|bench|runs> [flags]", msg)
}

// logFlags are shared by every command that logs.
type logFlags struct {
	level  *string
	format *string
}

func addLogFlags(fs *flag.FlagSet) logFlags {
	return logFlags{
		level:  fs.String("log-level", "info", "log level: debug|info|warn|error"),
		format: fs.String("log-format", "json", "log format: json|text"),
	}
}

func (f logFlags) logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(*f.level)); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q: %w", *f.level, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch *f.format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid -log-format %q", *f.format)
	}
}

// openStore returns nil when kind is empty.
func openStore(ctx context.Context, kind, path string) (store.Store, error) {
	if kind == "" {
		return nil, nil
	}
	s, err := store.Open(kind, path)
	if err != nil {
		return nil, err
	}
	if err := s.Init(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func parseInts(list string) ([]int, error) {
	var out []int
	for _, f := range splitList(list) {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", f)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New("empty list")
	}
	return out, nil
}

func parseCrossovers(list string) ([]ga.CrossoverType, error) {
	var out []ga.CrossoverType
	for _, f := range splitList(list) {
		cx, err := ga.ParseCrossoverType(f)
		if err != nil {
			return nil, err
		}
		out = append(out, cx)
	}
	return out, nil
}

func parseMutations(list string) ([]ga.MutationType, error) {
	var out []ga.MutationType
	for _, f := range splitList(list) {
		mt, err := ga.ParseMutationType(f)
		if err != nil {
			return nil, err
		}
		out = append(out, mt)
	}
	return out, nil
}

func splitList(list string) []string {
	var out []string
	for _, f := range strings.Split(list, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
