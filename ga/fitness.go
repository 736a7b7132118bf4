// Package ga - route length, fitness, and best-ever tracking.
//
// Design:
//   - RouteLength always includes the closing edge route[n-1] → route[0].
//   - Lengths are stabilized to 1e-9 absolute precision so that rotations and
//     reversals of one cycle compare equal despite summation order.
//   - Fitness is the reciprocal length; a zero-length tour (all cities
//     coincident) has fitness +Inf instead of dividing by zero.
//   - The Evaluator replaces its best route only on strict improvement and
//     keeps an owned copy, never an alias into the population.
package ga

import (
	"math"

	"github.com/katalvlaran/gatsp/city"
)

// roundScale controls length stabilization precision (1e-9).
const roundScale = 1e9

// FitnessRecord maps a route's index in the current population to its fitness.
// It is rebuilt every generation.
type FitnessRecord []float64

// RouteLength returns the closed-cycle length of r under dist.
//
// Contract: r is a permutation of {0..dist.N()-1}.
//
// Complexity: O(n).
func RouteLength(dist *city.Matrix, r Route) float64 {
	var n = len(r)
	if n < 2 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += dist.At(r[i], r[i+1])
	}
	sum += dist.At(r[n-1], r[0])

	return round1e9(sum)
}

// Fitness converts a tour length into a score where higher is better.
// Zero length maps to +Inf.
//
// Complexity: O(1).
func Fitness(length float64) float64 {
	if length > 0 {
		return 1 / length
	}
	return math.Inf(1)
}

// Evaluation summarizes one pass of the Evaluator over a population.
type Evaluation struct {
	Fitness       FitnessRecord // per-index fitness
	Distances     []float64     // per-index closed tour length
	MeanDistance  float64       // arithmetic mean of Distances
	WorstDistance float64       // maximum of Distances
	Improved      bool          // the best-ever route was replaced during this pass
}

// Evaluator computes route lengths and fitness, and owns the best-ever record
// and the best-distance history.
type Evaluator struct {
	dist         *city.Matrix
	best         Route
	bestDistance float64
	history      []float64
}

// NewEvaluator returns an Evaluator over dist with an empty record
// (no best route, best distance +Inf, empty history).
func NewEvaluator(dist *city.Matrix) *Evaluator {
	ev := &Evaluator{dist: dist}
	ev.Reset()
	return ev
}

// Reset forgets the best-ever record and the history.
func (ev *Evaluator) Reset() {
	ev.best = nil
	ev.bestDistance = math.Inf(1)
	ev.history = ev.history[:0]
}

// Evaluate scores every route in pop, updates the best-ever record on strict
// improvement, and appends the best-ever distance to the history.
//
// Complexity: O(P·n).
func (ev *Evaluator) Evaluate(pop []Route) Evaluation {
	var (
		p   = len(pop)
		out = Evaluation{
			Fitness:   make(FitnessRecord, p),
			Distances: make([]float64, p),
		}
		i     int
		d     float64
		sum   float64
		worst = math.Inf(-1)
	)
	for i = 0; i < p; i++ {
		d = RouteLength(ev.dist, pop[i])
		out.Distances[i] = d
		out.Fitness[i] = Fitness(d)
		sum += d
		if d > worst {
			worst = d
		}
		// Strict improvement only: equal distances keep the first-found best.
		if d < ev.bestDistance {
			ev.bestDistance = d
			ev.best = pop[i].Clone()
			out.Improved = true
		}
	}
	if p > 0 {
		out.MeanDistance = sum / float64(p)
		out.WorstDistance = worst
	}

	ev.history = append(ev.history, ev.bestDistance)

	return out
}

// Best returns an owned copy of the best-ever route (nil before any evaluation)
// and its length (+Inf before any evaluation).
func (ev *Evaluator) Best() (Route, float64) {
	return ev.best.Clone(), ev.bestDistance
}

// BestDistance returns the best-ever length without copying the route.
func (ev *Evaluator) BestDistance() float64 { return ev.bestDistance }

// History returns a copy of the best-distance history, one entry per evaluation.
func (ev *Evaluator) History() []float64 {
	out := make([]float64, len(ev.history))
	copy(out, ev.history)
	return out
}

// truncateHistory drops entries beyond n. Used by the engine to roll back a
// generation that failed after evaluation.
func (ev *Evaluator) truncateHistory(n int) {
	if n < len(ev.history) {
		ev.history = ev.history[:n]
	}
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
