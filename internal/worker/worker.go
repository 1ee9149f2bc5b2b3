package worker

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/ledgerflow-dev/ledgerflow/internal/logging"
	"github.com/ledgerflow-dev/ledgerflow/internal/model"
	"github.com/ledgerflow-dev/ledgerflow/internal/queue"
	"github.com/ledgerflow-dev/ledgerflow/internal/reports"
)

// Worker drains the job queue, dispatching each claimed job to the Runner
// and recording the terminal state.
type Worker struct {
	store    *queue.Store
	runner   *Runner
	interval time.Duration
	log      zerolog.Logger
}

// New creates a Worker polling the store at the given interval.
func New(store *queue.Store, runner *Runner, interval time.Duration) *Worker {
	return &Worker{
		store:    store,
		runner:   runner,
		interval: interval,
		log:      logging.Component("worker"),
	}
}

// Run polls until ctx is canceled. Each tick drains every queued job.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if err := w.drain(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *Worker) drain(ctx context.Context) error {
	for {
		job, err := w.store.NextQueued(ctx)
		if errors.Is(err, queue.ErrNoJobs) {
			return nil
		}
		if err != nil {
			return err
		}
		w.process(ctx, job)
	}
}

// process executes one claimed job. The parent flow job is a marker with no
// work of its own; child jobs run the report pipeline for their kind. Task
// failures are reported through the job's state, not returned.
func (w *Worker) process(ctx context.Context, job *model.Job) {
	log := w.log.With().Str("job", job.ID).Str("name", job.Name).Logger()
	log.Debug().Msg("job claimed")

	var err error
	if job.Name != reports.FlowJobName {
		_, err = w.runner.Run(ctx, model.ReportKind(job.Name))
	}

	if err != nil {
		log.Error().Err(err).Msg("job failed")
		if markErr := w.store.MarkFailed(ctx, job.ID); markErr != nil {
			log.Error().Err(markErr).Msg("recording job failure")
		}
		return
	}

	if err := w.store.MarkCompleted(ctx, job.ID); err != nil {
		log.Error().Err(err).Msg("recording job completion")
		return
	}
	log.Info().Msg("job completed")
}
