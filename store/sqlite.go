package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps runs in a single SQLite table. Indexed columns are
// stored alongside a JSON payload holding the full record.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteStore returns a store for the database file at path; call Init before use.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Init opens the database and creates the schema if missing.
func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("store: sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("store: open %s: %w", s.path, err)
	}
	// One connection keeps ":memory:" databases coherent and serializes writers.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("store: ping %s: %w", s.path, err)
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return fmt.Errorf("store: create tables: %w", err)
	}

	s.db = db
	return nil
}

// SaveRun upserts run by ID and returns the ID.
func (s *SQLiteStore) SaveRun(ctx context.Context, run Run) (string, error) {
	db, err := s.getDB()
	if err != nil {
		return "", err
	}

	run = prepare(run)
	payload, err := json.Marshal(run)
	if err != nil {
		return "", fmt.Errorf("store: encode run %s: %w", run.ID, err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, label, cities, crossover, mutation, best_distance, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			created_at = excluded.created_at,
			label = excluded.label,
			cities = excluded.cities,
			crossover = excluded.crossover,
			mutation = excluded.mutation,
			best_distance = excluded.best_distance,
			payload = excluded.payload
	`, run.ID, run.CreatedAt.UnixNano(), run.Label, run.Cities, run.Crossover, run.Mutation, run.BestDistance, payload)
	if err != nil {
		return "", fmt.Errorf("store: save run %s: %w", run.ID, err)
	}
	return run.ID, nil
}

// GetRun loads the run with id, or returns ErrNotFound.
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (Run, error) {
	db, err := s.getDB()
	if err != nil {
		return Run{}, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM runs WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, ErrNotFound
		}
		return Run{}, fmt.Errorf("store: get run %s: %w", id, err)
	}
	return decodeRun(id, payload)
}

// ListRuns loads all runs ordered by creation time, then ID.
func (s *SQLiteStore) ListRuns(ctx context.Context) ([]Run, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id, payload FROM runs ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	defer rows.Close()

	var (
		out     []Run
		id      string
		payload []byte
		run     Run
	)
	for rows.Next() {
		if err = rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("store: list runs: %w", err)
		}
		if run, err = decodeRun(id, payload); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	return out, nil
}

// Close closes the database. Closing an unopened store is a no-op.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotInitialized
	}
	return s.db, nil
}

func decodeRun(id string, payload []byte) (Run, error) {
	var run Run
	if err := json.Unmarshal(payload, &run); err != nil {
		return Run{}, fmt.Errorf("store: decode run %s: %w", id, err)
	}
	// Timestamps are stored in UTC.
	run.CreatedAt = run.CreatedAt.In(time.UTC)
	return run, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at INTEGER NOT NULL,
			label TEXT NOT NULL,
			cities INTEGER NOT NULL,
			crossover TEXT NOT NULL,
			mutation TEXT NOT NULL,
			best_distance REAL NOT NULL,
			payload BLOB NOT NULL
		);
		CREATE INDEX IF NOT EXISTS runs_created_at ON runs (created_at, id);
	`)
	return err
}
