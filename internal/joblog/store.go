package joblog

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"slate/internal/config"
)

// Store manages job-log persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the job database under the log directory.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.LogDir, "joblog.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the on-disk location of the job database.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Begin records a new running job and returns it.
func (s *Store) Begin(ctx context.Context, tool, source, output string) (*Job, error) {
	now := time.Now().UTC()
	job := &Job{
		ID:        uuid.NewString(),
		Tool:      tool,
		Source:    source,
		Output:    output,
		Status:    StatusRunning,
		StartedAt: now,
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO jobs (id, tool, source, output, status, started_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		job.ID, job.Tool, job.Source, job.Output, job.Status,
		now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	return job, nil
}

// Complete marks a job finished. Output may refine the value recorded at
// Begin (e.g. the actual file ffmpeg produced).
func (s *Store) Complete(ctx context.Context, id, output string) error {
	return s.finish(ctx, id, StatusCompleted, output, "")
}

// Fail marks a job failed with a human-readable detail.
func (s *Store) Fail(ctx context.Context, id, detail string) error {
	return s.finish(ctx, id, StatusFailed, "", detail)
}

func (s *Store) finish(ctx context.Context, id string, status Status, output, detail string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	query := `UPDATE jobs SET status = ?, detail = ?, finished_at = ? WHERE id = ?`
	args := []any{status, detail, now, id}
	if output != "" {
		query = `UPDATE jobs SET status = ?, detail = ?, finished_at = ?, output = ? WHERE id = ?`
		args = []any{status, detail, now, output, id}
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update job %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("job %s not found", id)
	}
	return nil
}

// Recent returns the most recently started jobs, newest first. A limit of 0
// defaults to 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Job, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, tool, source, output, status, detail, started_at, finished_at
         FROM jobs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var job Job
		var started string
		var finished sql.NullString
		if err := rows.Scan(&job.ID, &job.Tool, &job.Source, &job.Output,
			&job.Status, &job.Detail, &started, &finished); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		if job.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if finished.Valid && finished.String != "" {
			if job.FinishedAt, err = time.Parse(time.RFC3339Nano, finished.String); err != nil {
				return nil, fmt.Errorf("parse finished_at: %w", err)
			}
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// Clear removes every job record.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM jobs`)
	if err != nil {
		return 0, fmt.Errorf("clear jobs: %w", err)
	}
	return res.RowsAffected()
}
