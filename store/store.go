// Package store persists finished solver runs: the options they used, the
// best route found and the per-generation best-distance history.
//
// Two backends implement Store: MemoryStore for tests and one-shot CLI use,
// and SQLiteStore backed by modernc.org/sqlite. Open picks one by name.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound indicates that no run has the requested ID.
	ErrNotFound = errors.New("store: run not found")

	// ErrNotInitialized indicates a call before Init or after Close.
	ErrNotInitialized = errors.New("store: not initialized")
)

// Backend names accepted by Open.
const (
	KindMemory = "memory"
	KindSQLite = "sqlite"
)

// Run is one completed solver run.
type Run struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Label     string    `json:"label"` // free-form grouping key, e.g. a bench configuration

	Source         string  `json:"source"` // TSPLIB path or "random"
	Cities         int     `json:"cities"`
	PopulationSize int     `json:"population_size"`
	EliteSize      int     `json:"elite_size"`
	TournamentSize int     `json:"tournament_size"`
	MutationRate   float64 `json:"mutation_rate"`
	Crossover      string  `json:"crossover"`
	Mutation       string  `json:"mutation"`
	Seed           int64   `json:"seed"`

	Generations          int           `json:"generations"`
	StagnationGeneration int           `json:"stagnation_generation"` // 0 when the run never stagnated
	BestDistance         float64       `json:"best_distance"`
	BestRoute            []int         `json:"best_route"`
	History              []float64     `json:"history"`
	Duration             time.Duration `json:"duration"`
}

// Store is the persistence contract shared by all backends.
// Implementations are safe for concurrent use.
type Store interface {
	Init(ctx context.Context) error
	// SaveRun stores run and returns its ID. An empty ID is replaced by a new
	// UUID and a zero CreatedAt by the current time. Saving an existing ID
	// overwrites it.
	SaveRun(ctx context.Context, run Run) (string, error)
	// GetRun returns the run with the given ID or ErrNotFound.
	GetRun(ctx context.Context, id string) (Run, error)
	// ListRuns returns every run ordered by creation time, then ID.
	ListRuns(ctx context.Context) ([]Run, error)
	Close() error
}

// Open returns an uninitialized store of the given kind. path is required
// for KindSQLite and ignored otherwise.
func Open(kind, path string) (Store, error) {
	switch kind {
	case "", KindMemory:
		return NewMemoryStore(), nil
	case KindSQLite:
		return NewSQLiteStore(path), nil
	default:
		return nil, fmt.Errorf("store: unsupported backend %q", kind)
	}
}

// NewRunID returns a fresh random run identifier.
func NewRunID() string { return uuid.NewString() }

// prepare fills the defaulted fields of run.
func prepare(run Run) Run {
	if run.ID == "" {
		run.ID = NewRunID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	return run
}

// clone returns run with its slices copied.
func clone(run Run) Run {
	run.BestRoute = append([]int(nil), run.BestRoute...)
	run.History = append([]float64(nil), run.History...)
	return run
}
