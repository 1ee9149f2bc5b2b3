package queue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/ledgerflow-dev/ledgerflow/internal/model"
)

var (
	// ErrNotFound is returned when a flow ID is unknown.
	ErrNotFound = errors.New("flow not found")
	// ErrNoJobs is returned when no queued job is available to claim.
	ErrNoJobs = errors.New("no queued jobs")
)

// JobSpec describes a job to enqueue.
type JobSpec struct {
	Name string
}

// Store is a SQLite-backed job store.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the job database at path, enabling WAL mode for
// concurrent producer/worker access.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating queue dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening queue db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging queue db: %w", err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing queue schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Enqueue submits a single standalone job. Its flow ID equals its job ID.
func (s *Store) Enqueue(ctx context.Context, spec JobSpec) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO jobs (id, flow_id, name, is_parent, state, created_at)
		 VALUES (?, ?, ?, 0, ?, ?)`,
		id, id, spec.Name, model.JobQueued, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("enqueueing job %s: %w", spec.Name, err)
	}
	return id, nil
}

// EnqueueFlow submits a parent job and its children atomically, all tagged
// with the same new flow ID. Returns the flow ID.
func (s *Store) EnqueueFlow(ctx context.Context, parent JobSpec, children []JobSpec) (string, error) {
	flowID := uuid.NewString()
	now := time.Now().UTC()

	err := s.transact(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO jobs (id, flow_id, name, is_parent, state, created_at)
			 VALUES (?, ?, ?, 1, ?, ?)`,
			flowID, flowID, parent.Name, model.JobQueued, now); err != nil {
			return fmt.Errorf("inserting parent job: %w", err)
		}
		for _, child := range children {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO jobs (id, flow_id, name, is_parent, state, created_at)
				 VALUES (?, ?, ?, 0, ?, ?)`,
				uuid.NewString(), flowID, child.Name, model.JobQueued, now); err != nil {
				return fmt.Errorf("inserting child job %s: %w", child.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return flowID, nil
}

// GetFlow returns the parent job and children for a flow ID, or ErrNotFound.
func (s *Store) GetFlow(ctx context.Context, flowID string) (*model.Flow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, flow_id, name, is_parent, state, created_at, processed_on, finished_on
		 FROM jobs WHERE flow_id = ? ORDER BY created_at, rowid`, flowID)
	if err != nil {
		return nil, fmt.Errorf("querying flow %s: %w", flowID, err)
	}
	defer rows.Close()

	var flow model.Flow
	found := false
	for rows.Next() {
		job, isParent, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		found = true
		if isParent {
			flow.Parent = job
		} else {
			flow.Children = append(flow.Children, job)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading flow %s: %w", flowID, err)
	}
	if !found {
		return nil, ErrNotFound
	}
	return &flow, nil
}

// NextQueued claims the oldest queued job: it is marked active with
// processed_on set, and returned. ErrNoJobs when the queue is drained.
func (s *Store) NextQueued(ctx context.Context) (*model.Job, error) {
	var job model.Job
	err := s.transact(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			`SELECT id, flow_id, name, is_parent, state, created_at, processed_on, finished_on
			 FROM jobs WHERE state = ? ORDER BY created_at, rowid LIMIT 1`,
			model.JobQueued)
		j, _, err := scanJob(row)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoJobs
		}
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if _, err := tx.ExecContext(ctx,
			`UPDATE jobs SET state = ?, processed_on = ? WHERE id = ?`,
			model.JobActive, now, j.ID); err != nil {
			return fmt.Errorf("claiming job %s: %w", j.ID, err)
		}
		j.State = model.JobActive
		j.ProcessedOn = &now
		job = j
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// MarkCompleted records a terminal completed state with finished_on set.
func (s *Store) MarkCompleted(ctx context.Context, jobID string) error {
	return s.finish(ctx, jobID, model.JobCompleted)
}

// MarkFailed records a terminal failed state with finished_on set.
func (s *Store) MarkFailed(ctx context.Context, jobID string) error {
	return s.finish(ctx, jobID, model.JobFailed)
}

func (s *Store) finish(ctx context.Context, jobID string, state model.JobState) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET state = ?, finished_on = ? WHERE id = ?`,
		state, time.Now().UTC(), jobID)
	if err != nil {
		return fmt.Errorf("finishing job %s: %w", jobID, err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("finishing job %s: no such job", jobID)
	}
	return nil
}

// transact runs fn inside a transaction, rolling back on error.
func (s *Store) transact(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(r rowScanner) (model.Job, bool, error) {
	var (
		job       model.Job
		isParent  bool
		processed sql.NullTime
		finished  sql.NullTime
	)
	err := r.Scan(&job.ID, &job.FlowID, &job.Name, &isParent, &job.State,
		&job.CreatedAt, &processed, &finished)
	if err != nil {
		return model.Job{}, false, err
	}
	if processed.Valid {
		t := processed.Time
		job.ProcessedOn = &t
	}
	if finished.Valid {
		t := finished.Time
		job.FinishedOn = &t
	}
	return job, isParent, nil
}
