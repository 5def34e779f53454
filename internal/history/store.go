// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a local SQLite record of batch runs: when they ran,
// which folders and backend they used, and every per-file outcome.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pdf-extract/pkg/types"
)

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const defaultListLimit = 20

// ErrRunNotFound is returned by Get for an unknown run ID.
var ErrRunNotFound = errors.New("run not found")

// RunStatus tells whether a run got through its file list.
type RunStatus string

const (
	// RunCompleted means every candidate was attempted; individual files
	// may still have failed.
	RunCompleted RunStatus = "completed"

	// RunFatal means the run aborted before processing files.
	RunFatal RunStatus = "fatal"
)

// Run is one recorded invocation.
type Run struct {
	ID         string            `json:"id" yaml:"id"`
	StartedAt  time.Time         `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time         `json:"finished_at" yaml:"finished_at"`
	InputDir   string            `json:"input_dir" yaml:"input_dir"`
	OutputDir  string            `json:"output_dir" yaml:"output_dir"`
	Backend    string            `json:"backend" yaml:"backend"`
	Status     RunStatus         `json:"status" yaml:"status"`
	Error      string            `json:"error,omitempty" yaml:"error,omitempty"`
	Summary    *types.RunSummary `json:"summary" yaml:"summary"`
}

// NewRun starts a run record for req with a fresh ID.
func NewRun(req types.ConversionRequest, backend string) Run {
	return Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		InputDir:  req.InputDir,
		OutputDir: req.OutputDir,
		Backend:   backend,
		Summary:   types.NewRunSummary(),
	}
}

// Complete stamps the run as finished with summary s.
func (r *Run) Complete(s *types.RunSummary) {
	r.FinishedAt = time.Now().UTC()
	r.Status = RunCompleted
	r.Summary = s
}

// Abort stamps the run as failed before processing.
func (r *Run) Abort(err error) {
	r.FinishedAt = time.Now().UTC()
	r.Status = RunFatal
	r.Error = err.Error()
}

// Store manages the run history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			finished_at TEXT,
			input_dir TEXT NOT NULL,
			output_dir TEXT NOT NULL,
			backend TEXT,
			status TEXT NOT NULL,
			error TEXT,
			total INTEGER NOT NULL DEFAULT 0,
			success INTEGER NOT NULL DEFAULT 0,
			failed INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS files (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			pdf TEXT NOT NULL,
			txt TEXT NOT NULL,
			status TEXT NOT NULL,
			error TEXT,
			PRIMARY KEY (run_id, seq)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores run and its file results in one transaction.
func (s *Store) Record(ctx context.Context, run Run) error {
	summary := run.Summary
	if summary == nil {
		summary = types.NewRunSummary()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, finished_at, input_dir, output_dir, backend, status, error, total, success, failed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, formatTime(run.StartedAt), formatTime(run.FinishedAt),
		run.InputDir, run.OutputDir, run.Backend, string(run.Status), run.Error,
		summary.Total, summary.Success, summary.Failed,
	)
	if err != nil {
		return fmt.Errorf("inserting run %s: %w", run.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO files (run_id, seq, pdf, txt, status, error) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing file insert: %w", err)
	}
	defer stmt.Close()

	for i, f := range summary.Files {
		if _, err := stmt.ExecContext(ctx, run.ID, i, f.PDF, f.TXT, string(f.Status), f.Error); err != nil {
			return fmt.Errorf("inserting file %s: %w", f.PDF, err)
		}
	}

	return tx.Commit()
}

// List returns up to limit runs, newest first. File results are not loaded;
// each Summary carries only the counts.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, input_dir, output_dir, backend, status, error, total, success, failed
		 FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Get returns the run with the given ID including its file results.
func (s *Store) Get(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, started_at, finished_at, input_dir, output_dir, backend, status, error, total, success, failed
		 FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT pdf, txt, status, error FROM files WHERE run_id = ? ORDER BY seq`, id)
	if err != nil {
		return Run{}, fmt.Errorf("querying files for run %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			f      types.FileResult
			status string
			errMsg sql.NullString
		)
		if err := rows.Scan(&f.PDF, &f.TXT, &status, &errMsg); err != nil {
			return Run{}, fmt.Errorf("scanning file row: %w", err)
		}
		f.Status = types.FileStatus(status)
		f.Error = errMsg.String
		run.Summary.Files = append(run.Summary.Files, f)
	}
	return run, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		run                  Run
		started              string
		finished, backend    sql.NullString
		status               string
		errMsg               sql.NullString
		total, success, fail int
	)
	err := sc.Scan(&run.ID, &started, &finished, &run.InputDir, &run.OutputDir,
		&backend, &status, &errMsg, &total, &success, &fail)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, err
	}
	if err != nil {
		return Run{}, fmt.Errorf("scanning run row: %w", err)
	}

	run.StartedAt = parseTime(started)
	run.FinishedAt = parseTime(finished.String)
	run.Backend = backend.String
	run.Status = RunStatus(status)
	run.Error = errMsg.String
	run.Summary = &types.RunSummary{
		Total:   total,
		Success: success,
		Failed:  fail,
		Files:   []types.FileResult{},
	}
	return run, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
