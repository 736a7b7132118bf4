package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps runs in a map. Contents are lost on Close.
type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	runs        map[string]Run
}

// NewMemoryStore returns an empty store; call Init before use.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Init prepares the map. Repeated calls are no-ops.
func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	s.initialized = true
	s.runs = make(map[string]Run)
	return nil
}

// SaveRun stores a copy of run, replacing any run with the same ID, and returns its ID.
func (s *MemoryStore) SaveRun(_ context.Context, run Run) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return "", ErrNotInitialized
	}
	run = clone(prepare(run))
	s.runs[run.ID] = run
	return run.ID, nil
}

// GetRun returns a copy of the run with id, or ErrNotFound.
func (s *MemoryStore) GetRun(_ context.Context, id string) (Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return Run{}, ErrNotInitialized
	}
	run, ok := s.runs[id]
	if !ok {
		return Run{}, ErrNotFound
	}
	return clone(run), nil
}

// ListRuns returns copies of all runs ordered by creation time, then ID.
func (s *MemoryStore) ListRuns(_ context.Context) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, ErrNotInitialized
	}
	out := make([]Run, 0, len(s.runs))
	for _, run := range s.runs {
		out = append(out, clone(run))
	}
	slices.SortFunc(out, func(a, b Run) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// Close drops every run.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = false
	s.runs = nil
	return nil
}
