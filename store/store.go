// Package store persists finished Monte Carlo runs in SQLite.
//
// A run is stored as one row in runs (the Summary plus seed and timing) and
// one row per trial sample in samples. Runs are keyed by a random UUID.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/percolate/stats"
)

// ErrRunNotFound indicates no run is stored under the requested id.
var ErrRunNotFound = errors.New("store: run not found")

// Run is a stored run: its summary plus provenance and samples.
type Run struct {
	ID         uuid.UUID
	Summary    stats.Summary
	Seed       int64
	Elapsed    time.Duration
	CreatedAt  time.Time
	Thresholds []float64
}

// runRow mirrors the runs table.
type runRow struct {
	ID           string  `db:"id"`
	GridSize     int     `db:"grid_size"`
	Trials       int     `db:"trials"`
	Mean         float64 `db:"mean"`
	StdDev       float64 `db:"stddev"`
	ConfidenceLo float64 `db:"confidence_lo"`
	ConfidenceHi float64 `db:"confidence_hi"`
	Seed         int64   `db:"seed"`
	ElapsedNanos int64   `db:"elapsed_ns"`
	CreatedAt    int64   `db:"created_at"`
}

// DB wraps a SQLite connection holding runs.
type DB struct {
	conn *sqlx.DB
	now  func() time.Time
}

// Open opens or creates a SQLite database at path and migrates its schema.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn, now: time.Now}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		grid_size INTEGER NOT NULL,
		trials INTEGER NOT NULL,
		mean REAL NOT NULL,
		stddev REAL NOT NULL,
		confidence_lo REAL NOT NULL,
		confidence_hi REAL NOT NULL,
		seed INTEGER NOT NULL,
		elapsed_ns INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS samples (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		trial INTEGER NOT NULL,
		threshold REAL NOT NULL,
		PRIMARY KEY (run_id, trial)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun stores s and all its samples in one transaction and returns the
// new run id.
func (db *DB) SaveRun(ctx context.Context, s *stats.Stats) (uuid.UUID, error) {
	id := uuid.New()
	sum := s.Summary()
	row := runRow{
		ID:           id.String(),
		GridSize:     sum.GridSize,
		Trials:       sum.Trials,
		Mean:         sum.Mean,
		StdDev:       sum.StdDev,
		ConfidenceLo: sum.ConfidenceLo,
		ConfidenceHi: sum.ConfidenceHi,
		Seed:         s.Seed(),
		ElapsedNanos: int64(s.Elapsed()),
		CreatedAt:    db.now().UnixNano(),
	}

	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx, `INSERT INTO runs
		(id, grid_size, trials, mean, stddev, confidence_lo, confidence_hi, seed, elapsed_ns, created_at)
		VALUES (:id, :grid_size, :trials, :mean, :stddev, :confidence_lo, :confidence_hi, :seed, :elapsed_ns, :created_at)`,
		row); err != nil {
		return uuid.Nil, fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx, "INSERT INTO samples (run_id, trial, threshold) VALUES (?, ?, ?)")
	if err != nil {
		return uuid.Nil, err
	}
	defer stmt.Close()
	for i, x := range s.Thresholds() {
		if _, err := stmt.ExecContext(ctx, row.ID, i, x); err != nil {
			return uuid.Nil, fmt.Errorf("insert sample %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// LoadRun returns the run stored under id, samples in trial order.
// Returns ErrRunNotFound if there is none.
func (db *DB) LoadRun(ctx context.Context, id uuid.UUID) (Run, error) {
	var row runRow
	err := db.conn.GetContext(ctx, &row, "SELECT * FROM runs WHERE id = ?", id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, err
	}

	run, err := row.toRun()
	if err != nil {
		return Run{}, err
	}
	if err := db.conn.SelectContext(ctx, &run.Thresholds,
		"SELECT threshold FROM samples WHERE run_id = ? ORDER BY trial", row.ID); err != nil {
		return Run{}, fmt.Errorf("load samples: %w", err)
	}

	return run, nil
}

// ListRuns returns every stored run, newest first, without samples.
func (db *DB) ListRuns(ctx context.Context) ([]Run, error) {
	var rows []runRow
	if err := db.conn.SelectContext(ctx, &rows, "SELECT * FROM runs ORDER BY created_at DESC"); err != nil {
		return nil, err
	}

	runs := make([]Run, 0, len(rows))
	for _, row := range rows {
		run, err := row.toRun()
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func (r runRow) toRun() (Run, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return Run{}, fmt.Errorf("parse run id %q: %w", r.ID, err)
	}
	return Run{
		ID: id,
		Summary: stats.Summary{
			GridSize:     r.GridSize,
			Trials:       r.Trials,
			Mean:         r.Mean,
			StdDev:       r.StdDev,
			ConfidenceLo: r.ConfidenceLo,
			ConfidenceHi: r.ConfidenceHi,
		},
		Seed:      r.Seed,
		Elapsed:   time.Duration(r.ElapsedNanos),
		CreatedAt: time.Unix(0, r.CreatedAt),
	}, nil
}
