package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store manages run history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Run is one recorded invocation.
type Run struct {
	ID        string
	StartedAt time.Time
	PageURL   string
	TaskCount int
}

// OutcomeRow is one task's terminal result inside a run.
type OutcomeRow struct {
	RunID     string
	Position  int
	SourceURL string
	LocalName string
	Succeeded bool
	Detail    string
}

// NewRun builds a run record with a fresh ID.
func NewRun(pageURL string, taskCount int) Run {
	return Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		PageURL:   strings.TrimSpace(pageURL),
		TaskCount: taskCount,
	}
}

// Open opens (creating if needed) the history database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("history: empty database path")
	}
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	store := &Store{db: db, path: path}
	if err := store.initSchema(ensureContext(ctx)); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// RecordRun inserts the run row.
func (s *Store) RecordRun(ctx context.Context, run Run) error {
	ctx = ensureContext(ctx)
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (id, started_at, page_url, task_count) VALUES (?, ?, ?, ?)",
		run.ID, run.StartedAt.Format(time.RFC3339Nano), run.PageURL, run.TaskCount)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// RecordOutcome inserts one task outcome for the run.
func (s *Store) RecordOutcome(ctx context.Context, row OutcomeRow) error {
	ctx = ensureContext(ctx)
	succeeded := 0
	if row.Succeeded {
		succeeded = 1
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO outcomes (run_id, position, source_url, local_name, succeeded, detail) VALUES (?, ?, ?, ?, ?, ?)",
		row.RunID, row.Position, row.SourceURL, row.LocalName, succeeded, row.Detail)
	if err != nil {
		return fmt.Errorf("record outcome: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	ctx = ensureContext(ctx)
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, started_at, page_url, task_count FROM runs ORDER BY started_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var startedAt string
		if err := rows.Scan(&run.ID, &startedAt, &run.PageURL, &run.TaskCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
			run.StartedAt = parsed
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunOutcomes returns a run's outcomes in task order.
func (s *Store) RunOutcomes(ctx context.Context, runID string) ([]OutcomeRow, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		"SELECT run_id, position, source_url, local_name, succeeded, detail FROM outcomes WHERE run_id = ? ORDER BY position", runID)
	if err != nil {
		return nil, fmt.Errorf("run outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []OutcomeRow
	for rows.Next() {
		var row OutcomeRow
		var succeeded int
		if err := rows.Scan(&row.RunID, &row.Position, &row.SourceURL, &row.LocalName, &succeeded, &row.Detail); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		row.Succeeded = succeeded != 0
		outcomes = append(outcomes, row)
	}
	return outcomes, rows.Err()
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}
