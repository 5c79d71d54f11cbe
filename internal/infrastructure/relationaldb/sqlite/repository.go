// Package sqlite provides a SQLite implementation of the BuildHistory interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/planner-catalog/internal/domain/entities"
	"github.com/ersonp/planner-catalog/internal/infrastructure/config"
)

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// timeLayout is fixed width so started_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.BuildHistory using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository opens (creating if needed) the history database.
func NewRepository(cfg config.HistoryConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// One connection keeps ":memory:" databases shared across queries.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- One row per completed catalog build
	CREATE TABLE IF NOT EXISTS build_runs (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		entities INTEGER NOT NULL,
		main_stats TEXT NOT NULL,
		qi_stats TEXT NOT NULL,
		started_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_build_runs_started ON build_runs(started_at);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveRun records a build. Missing ID and start time are filled in.
func (r *Repository) SaveRun(ctx context.Context, run *entities.BuildRun) error {
	if run.ID == "" {
		run.ID = generateUUID()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = timeNow()
	}

	mainStats, err := json.Marshal(run.Main)
	if err != nil {
		return fmt.Errorf("marshaling main stats: %w", err)
	}
	qiStats, err := json.Marshal(run.QI)
	if err != nil {
		return fmt.Errorf("marshaling qi stats: %w", err)
	}

	query := `
		INSERT INTO build_runs (id, source, entities, main_stats, qi_stats, started_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		run.ID,
		run.Source,
		run.Entities,
		string(mainStats),
		string(qiStats),
		run.StartedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("saving build run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (r *Repository) ListRuns(ctx context.Context, limit int) ([]entities.BuildRun, error) {
	query := `
		SELECT id, source, entities, main_stats, qi_stats, started_at
		FROM build_runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing build runs: %w", err)
	}
	defer rows.Close()

	var runs []entities.BuildRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating build runs: %w", err)
	}
	return runs, nil
}

func scanRun(rows *sql.Rows) (*entities.BuildRun, error) {
	var run entities.BuildRun
	var mainStats, qiStats, startedAt string

	if err := rows.Scan(&run.ID, &run.Source, &run.Entities, &mainStats, &qiStats, &startedAt); err != nil {
		return nil, fmt.Errorf("scanning build run: %w", err)
	}
	if err := json.Unmarshal([]byte(mainStats), &run.Main); err != nil {
		return nil, fmt.Errorf("decoding main stats for %s: %w", run.ID, err)
	}
	if err := json.Unmarshal([]byte(qiStats), &run.QI); err != nil {
		return nil, fmt.Errorf("decoding qi stats for %s: %w", run.ID, err)
	}
	t, err := time.Parse(timeLayout, startedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing started_at for %s: %w", run.ID, err)
	}
	run.StartedAt = t
	return &run, nil
}
