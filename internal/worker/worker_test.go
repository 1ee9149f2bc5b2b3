package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerflow-dev/ledgerflow/internal/config"
	"github.com/ledgerflow-dev/ledgerflow/internal/model"
	"github.com/ledgerflow-dev/ledgerflow/internal/queue"
	"github.com/ledgerflow-dev/ledgerflow/internal/reports"
)

func TestWorker_ProcessesFlow(t *testing.T) {
	cfg := config.Default()
	cfg.SourceDir = t.TempDir()
	cfg.ReportDir = t.TempDir()
	writeSource(t, cfg.SourceDir, "jan.csv",
		"2023-06-01,Cash,,150.00,0\n2023-01-01,Sales Revenue,,0,100.00")

	store, err := queue.Open(filepath.Join(t.TempDir(), "queue.db"))
	require.NoError(t, err)
	defer store.Close()

	svc := reports.NewService(store)
	ctx := context.Background()

	flowID, err := svc.GenerateAll(ctx)
	require.NoError(t, err)

	w := New(store, NewRunner(cfg), 10*time.Millisecond)
	require.NoError(t, w.drain(ctx))

	// Every child completed and every report exists.
	statuses, err := svc.FlowStatus(ctx, flowID)
	require.NoError(t, err)
	require.Len(t, statuses, 3)
	for _, s := range statuses {
		assert.Equal(t, model.JobCompleted, s.State)
		require.NotNil(t, s.ExecutionTime)
	}
	for _, name := range []string{"accounts.csv", "yearly.csv", "fs.csv"} {
		_, err := os.Stat(filepath.Join(cfg.ReportDir, name))
		require.NoError(t, err)
	}
}

func TestWorker_RecordsChildFailure(t *testing.T) {
	cfg := config.Default()
	cfg.SourceDir = filepath.Join(t.TempDir(), "missing") // unreadable sources
	cfg.ReportDir = t.TempDir()

	store, err := queue.Open(filepath.Join(t.TempDir(), "queue.db"))
	require.NoError(t, err)
	defer store.Close()

	svc := reports.NewService(store)
	ctx := context.Background()

	flowID, err := svc.GenerateAll(ctx)
	require.NoError(t, err)

	w := New(store, NewRunner(cfg), 10*time.Millisecond)
	require.NoError(t, w.drain(ctx))

	statuses, err := svc.FlowStatus(ctx, flowID)
	require.NoError(t, err)
	for _, s := range statuses {
		assert.Equal(t, model.JobFailed, s.State, "child failure must surface through job state")
	}
}

func TestWorker_RunStopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.SourceDir = t.TempDir()
	cfg.ReportDir = t.TempDir()

	store, err := queue.Open(filepath.Join(t.TempDir(), "queue.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := New(store, NewRunner(cfg), 10*time.Millisecond)
	err = w.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
