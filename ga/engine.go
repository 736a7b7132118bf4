// Package ga - the generation loop.
//
// Engine owns the population, the best-ever record, the history and the
// stagnation window. A driver calls Initialize once and then RunGeneration
// repeatedly until ShouldStop is reported or its own budget is exhausted.
//
// Ownership:
//   - Every route placed into a new generation (elite copy or bred child) is a
//     fresh allocation; no two population slots share backing storage.
//   - The best-ever route is a copy taken when it was found and every accessor
//     returns another copy, so callers may retain results freely.
package ga

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/gatsp/city"
)

// crossoverFunc and mutateFunc are the operator handles resolved at Initialize.
type (
	crossoverFunc func(p1, p2 Route, rng *rand.Rand) (Route, error)
	mutateFunc    func(r Route, rate float64, rng *rand.Rand) error
)

// Engine runs a genetic algorithm over one TSP instance.
// The zero value is an uninitialized engine. Not safe for concurrent use.
type Engine struct {
	opts   Options
	cities []city.City
	dist   *city.Matrix
	rng    *rand.Rand
	log    *slog.Logger

	crossover crossoverFunc
	mutate    mutateFunc

	population []Route
	evaluator  *Evaluator
	window     *StagnationWindow
	last       Evaluation
	generation int
	state      State
}

// NewEngine returns an engine initialized with cities and opts.
func NewEngine(cities []city.City, opts Options) (*Engine, error) {
	e := &Engine{}
	if err := e.Initialize(cities, opts); err != nil {
		return nil, err
	}
	return e, nil
}

// Initialize validates cities and opts, seeds the engine's generator from
// opts.Seed, and creates the initial population. Any previous run is
// discarded. On error nothing is applied and the previous state survives.
//
// Errors: ErrConfiguration, ErrDegenerateInput (both wrapped with detail).
func (e *Engine) Initialize(cities []city.City, opts Options) error {
	if err := validateAll(cities, opts); err != nil {
		return err
	}

	e.opts = opts
	e.cities = append([]city.City(nil), cities...)
	e.dist = city.NewMatrix(e.cities)
	e.rng = rngFromSeed(opts.Seed)
	e.log = opts.Logger
	if e.log == nil {
		e.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e.crossover = resolveCrossover(opts.Crossover)
	e.mutate = resolveMutation(opts.Mutation)
	e.evaluator = NewEvaluator(e.dist)
	e.window = NewStagnationWindow(opts.GenerationsWithoutImprovement, opts.ImprovementThreshold, opts.Stagnation)

	e.CreateInitialPopulation()

	return nil
}

// CreateInitialPopulation replaces the population with PopulationSize
// independent uniform random permutations drawn from the engine's generator,
// and resets the best-ever record, the generation counter, the history and
// the stagnation window. The generator itself is not reseeded.
// It is a no-op on an uninitialized engine.
func (e *Engine) CreateInitialPopulation() {
	if e.rng == nil {
		return
	}

	var (
		n = len(e.cities)
		i int
	)
	e.population = make([]Route, e.opts.PopulationSize)
	for i = range e.population {
		e.population[i] = RandomRoute(n, e.rng)
	}

	e.evaluator.Reset()
	e.window.Reset()
	e.last = Evaluation{}
	e.generation = 0
	e.state = StateReady
}

// RunGeneration performs one generation: evaluate, select, breed, advance,
// and check stagnation.
//
// Errors:
//   - ErrNotInitialized before Initialize.
//   - ErrOperatorPrecondition if an operator rejects its input. This cannot
//     happen with a correctly initialized engine and indicates a bug; the
//     population, generation counter and history are left as they were.
func (e *Engine) RunGeneration() (Generation, error) {
	if e.state == StateUninitialized {
		return Generation{}, ErrNotInitialized
	}

	// 1) Evaluate.
	var (
		histLen = e.generation
		before  = e.evaluator.BestDistance()
	)
	e.last = e.evaluator.Evaluate(e.population)
	if e.last.Improved {
		e.log.Debug("best distance improved",
			slog.Int("generation", e.generation),
			slog.Float64("from", before),
			slog.Float64("to", e.evaluator.BestDistance()))
	}

	// 2) Parent pool, 3) next population.
	next, err := e.breed(e.last.Fitness)
	if err != nil {
		e.evaluator.truncateHistory(histLen)
		return Generation{}, fmt.Errorf("generation %d: %w", e.generation, err)
	}

	// 4) Advance.
	e.population = next
	e.generation++
	e.state = StateRunning

	// 5) Stagnation.
	var stop bool
	if e.opts.UseStoppingCriterion {
		stop = e.window.Push(e.evaluator.BestDistance())
		if stop {
			e.state = StateStopped
			e.log.Debug("stagnation detected",
				slog.Int("generation", e.generation),
				slog.String("strategy", e.opts.Stagnation.String()),
				slog.Float64("best", e.evaluator.BestDistance()))
		}
	}

	// 6) Report.
	best, bestDist := e.evaluator.Best()
	return Generation{
		BestRoute:    best,
		BestDistance: bestDist,
		Number:       e.generation,
		ShouldStop:   stop,
	}, nil
}

// breed builds the next population from the current one.
func (e *Engine) breed(fitness FitnessRecord) ([]Route, error) {
	var size = e.opts.PopulationSize

	pool, err := ParentPool(fitness, e.opts.EliteSize, e.opts.TournamentSize, size, e.rng)
	if err != nil {
		return nil, err
	}

	next := make([]Route, 0, size)

	// Elite carry-over: copies, never aliases.
	var (
		elite = min(e.opts.EliteSize, len(pool))
		i     int
	)
	for i = 0; i < elite; i++ {
		next = append(next, e.population[pool[i]].Clone())
	}

	// Children from two distinct pool positions.
	var (
		a, b  int
		child Route
	)
	for len(next) < size {
		a, b = distinctPair(len(pool), e.rng)
		child, err = e.crossover(e.population[pool[a]], e.population[pool[b]], e.rng)
		if err != nil {
			return nil, err
		}
		if err = e.mutate(child, e.opts.MutationRate, e.rng); err != nil {
			return nil, err
		}
		next = append(next, child)
	}

	return next, nil
}

// Stop marks the run as stopped. It only records the driver's decision;
// RunGeneration may still be called afterwards.
func (e *Engine) Stop() {
	if e.state != StateUninitialized {
		e.state = StateStopped
	}
}

// State returns the current lifecycle phase.
func (e *Engine) State() State { return e.state }

// Generation returns the number of completed generations.
func (e *Engine) Generation() int { return e.generation }

// BestRoute returns an owned copy of the best-ever route, or nil before the
// first generation.
func (e *Engine) BestRoute() Route {
	if e.evaluator == nil {
		return nil
	}
	r, _ := e.evaluator.Best()
	return r
}

// BestDistance returns the best-ever tour length (+Inf before the first generation).
func (e *Engine) BestDistance() float64 {
	if e.evaluator == nil {
		return math.Inf(1)
	}
	return e.evaluator.BestDistance()
}

// BestTour returns the cities of the best-ever route in visiting order.
func (e *Engine) BestTour() []city.City {
	var r = e.BestRoute()
	if r == nil {
		return nil
	}
	out := make([]city.City, len(r))
	for i, c := range r {
		out[i] = e.cities[c]
	}
	return out
}

// History returns a copy of the best-distance history, one entry per completed generation.
func (e *Engine) History() []float64 {
	if e.evaluator == nil {
		return nil
	}
	return e.evaluator.History()
}

// LastEvaluation returns the statistics of the most recent evaluation pass.
func (e *Engine) LastEvaluation() Evaluation { return e.last }

// Population returns a deep copy of the current population.
func (e *Engine) Population() []Route {
	out := make([]Route, len(e.population))
	for i, r := range e.population {
		out[i] = r.Clone()
	}
	return out
}

// Cities returns a copy of the instance the engine was initialized with.
func (e *Engine) Cities() []city.City { return append([]city.City(nil), e.cities...) }

// Options returns the options the engine was initialized with.
func (e *Engine) Options() Options { return e.opts }

// RouteLength returns the closed tour length of r on the engine's instance.
func (e *Engine) RouteLength(r Route) (float64, error) {
	if e.dist == nil {
		return 0, ErrNotInitialized
	}
	if err := ValidatePermutation(r, e.dist.N()); err != nil {
		return 0, err
	}
	return RouteLength(e.dist, r), nil
}

// resolveCrossover maps the enum to its operator once, outside the hot loop.
func resolveCrossover(t CrossoverType) crossoverFunc {
	switch t {
	case CycleCrossover:
		return func(p1, p2 Route, _ *rand.Rand) (Route, error) { return Cycle(p1, p2) }
	default:
		return Ordered
	}
}

// resolveMutation maps the enum to its operator once, outside the hot loop.
func resolveMutation(t MutationType) mutateFunc {
	switch t {
	case InsertionMutation:
		return Insertion
	case InversionMutation:
		return Inversion
	default:
		return Swap
	}
}
