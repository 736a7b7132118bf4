package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gatsp/ga"
)

// ErrInvalidBudget indicates a generation budget below 1.
var ErrInvalidBudget = errors.New("driver: generation budget must be positive")

// Result summarizes a finished run.
type Result struct {
	Generations          int // generations executed by this call
	StagnationGeneration int // generation of this call that reported ShouldStop, 1-based, 0 if none
	BestRoute            ga.Route
	BestDistance         float64
	History              []float64
	Duration             time.Duration
}

// Stagnated reports whether the run ended on the stopping criterion.
func (r Result) Stagnated() bool { return r.StagnationGeneration > 0 }

// RunBatch calls RunGeneration until the engine reports ShouldStop, the
// budget of maxGenerations is spent, or ctx is done. The budget counts
// generations run by this call, so an engine already advanced by hand still
// gets maxGenerations more. The engine must be initialized. On cancellation
// the partial Result is returned with ctx.Err().
func RunBatch(ctx context.Context, eng *ga.Engine, maxGenerations int) (Result, error) {
	if maxGenerations < 1 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidBudget, maxGenerations)
	}

	var (
		res   Result
		g     ga.Generation
		err   error
		start = time.Now()
	)
	for res.Generations < maxGenerations {
		if err = ctx.Err(); err != nil {
			break
		}
		if g, err = eng.RunGeneration(); err != nil {
			break
		}
		res.Generations++
		if g.ShouldStop {
			res.StagnationGeneration = res.Generations
			break
		}
	}
	res.Duration = time.Since(start)
	res.BestRoute = eng.BestRoute()
	res.BestDistance = eng.BestDistance()
	res.History = eng.History()
	eng.Stop()

	return res, err
}
