package ga

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Callers match them with errors.Is; detail is attached by wrapping.
var (
	// ErrConfiguration is returned by Initialize for an invalid parameter combination.
	// Nothing is applied when it is returned.
	ErrConfiguration = errors.New("ga: invalid configuration")

	// ErrDegenerateInput is returned when the city list cannot form a tour.
	ErrDegenerateInput = errors.New("ga: degenerate input")

	// ErrOperatorPrecondition marks an operator invoked on routes of invalid shape.
	// Inside RunGeneration it signals an engine bug, never a caller mistake.
	ErrOperatorPrecondition = errors.New("ga: operator precondition violated")

	// ErrNotInitialized is returned when RunGeneration is called before Initialize.
	ErrNotInitialized = errors.New("ga: engine not initialized")

	// ErrUnknownOperator is returned by the Parse* helpers for an unrecognized name.
	ErrUnknownOperator = errors.New("ga: unknown operator")
)

// CrossoverType selects the recombination operator.
type CrossoverType int

const (
	// OrderedCrossover (OX) keeps a contiguous segment of parent1 and fills the rest in parent2 order.
	OrderedCrossover CrossoverType = iota
	// CycleCrossover (CX) keeps absolute positions along a traced position cycle.
	CycleCrossover
)

// MutationType selects the perturbation operator.
type MutationType int

const (
	// SwapMutation exchanges cities; the rate applies independently to every position.
	SwapMutation MutationType = iota
	// InsertionMutation moves one city; the rate applies once per route.
	InsertionMutation
	// InversionMutation reverses a sub-sequence; the rate applies once per route.
	InversionMutation
)

// StagnationStrategy selects the relative-improvement formula over the trailing window.
type StagnationStrategy int

const (
	// StagnationOldestNewest compares the oldest and newest best distance in the window.
	StagnationOldestNewest StagnationStrategy = iota
	// StagnationWindowMin compares the oldest value against the window minimum.
	// It reproduces the stopping rule of the historical benchmark harness.
	StagnationWindowMin
)

// State is the lifecycle phase of an Engine. Transitions are driven by the caller.
type State int

const (
	// StateUninitialized is the zero state; only Initialize is allowed.
	StateUninitialized State = iota
	// StateReady follows a successful Initialize or CreateInitialPopulation.
	StateReady
	// StateRunning follows the first RunGeneration.
	StateRunning
	// StateStopped follows Stop or a generation that reported ShouldStop.
	StateStopped
)

// Generation is the outcome of one RunGeneration call.
type Generation struct {
	BestRoute    Route   // owned copy of the best-ever route
	BestDistance float64 // best-ever closed tour length
	Number       int     // generations completed so far
	ShouldStop   bool    // stagnation criterion fired (always false when disabled)
}

var crossoverNames = map[CrossoverType]string{
	OrderedCrossover: "ordered",
	CycleCrossover:   "cycle",
}

var mutationNames = map[MutationType]string{
	SwapMutation:      "swap",
	InsertionMutation: "insertion",
	InversionMutation: "inversion",
}

var stagnationNames = map[StagnationStrategy]string{
	StagnationOldestNewest: "oldest-newest",
	StagnationWindowMin:    "window-min",
}

var stateNames = map[State]string{
	StateUninitialized: "uninitialized",
	StateReady:         "ready",
	StateRunning:       "running",
	StateStopped:       "stopped",
}

func (c CrossoverType) String() string      { return enumName(crossoverNames, c) }
func (m MutationType) String() string       { return enumName(mutationNames, m) }
func (s StagnationStrategy) String() string { return enumName(stagnationNames, s) }
func (s State) String() string              { return enumName(stateNames, s) }

// ParseCrossoverType resolves a crossover name ("ordered", "cycle"), case-insensitively.
func ParseCrossoverType(name string) (CrossoverType, error) {
	return parseEnum(crossoverNames, "crossover", name)
}

// ParseMutationType resolves a mutation name ("swap", "insertion", "inversion").
func ParseMutationType(name string) (MutationType, error) {
	return parseEnum(mutationNames, "mutation", name)
}

// ParseStagnationStrategy resolves "oldest-newest" or "window-min".
func ParseStagnationStrategy(name string) (StagnationStrategy, error) {
	return parseEnum(stagnationNames, "stagnation", name)
}

// CrossoverTypes lists every crossover operator in declaration order.
func CrossoverTypes() []CrossoverType { return []CrossoverType{OrderedCrossover, CycleCrossover} }

// MutationTypes lists every mutation operator in declaration order.
func MutationTypes() []MutationType {
	return []MutationType{SwapMutation, InsertionMutation, InversionMutation}
}

func enumName[K ~int](names map[K]string, k K) string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

func parseEnum[K ~int](names map[K]string, kind, name string) (K, error) {
	var want = strings.ToLower(strings.TrimSpace(name))
	for k, s := range names {
		if s == want {
			return k, nil
		}
	}
	var zero K
	return zero, fmt.Errorf("%w: %s %q", ErrUnknownOperator, kind, name)
}
