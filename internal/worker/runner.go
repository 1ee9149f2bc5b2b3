// Package worker executes report-generation tasks, either synchronously or
// by draining the job queue.
package worker

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/ledgerflow-dev/ledgerflow/internal/config"
	"github.com/ledgerflow-dev/ledgerflow/internal/ledger"
	"github.com/ledgerflow-dev/ledgerflow/internal/logging"
	"github.com/ledgerflow-dev/ledgerflow/internal/model"
	"github.com/ledgerflow-dev/ledgerflow/internal/report"
)

// Task status values. Statuses are tracked per report kind in an explicit
// registry rather than process-wide fields, and a failed run is recorded
// instead of sticking at "starting".
const (
	StatusIdle     = "idle"
	StatusStarting = "starting"
	StatusFailed   = "failed"
)

// Runner executes one report-generation task end to end:
// read -> aggregate -> format -> write.
type Runner struct {
	sourceDir string
	reportDir string
	strict    bool

	mu     sync.Mutex
	status map[model.ReportKind]string
}

// NewRunner creates a Runner from config.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		sourceDir: cfg.SourceDir,
		reportDir: cfg.ReportDir,
		strict:    cfg.Strict,
		status:    make(map[model.ReportKind]string),
	}
}

// Status returns the last observed status for a report kind: "idle",
// "starting", "failed", or "finished in N.NN seconds".
func (r *Runner) Status(kind model.ReportKind) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.status[kind]; ok {
		return s
	}
	return StatusIdle
}

func (r *Runner) setStatus(kind model.ReportKind, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status[kind] = status
}

// Run generates one report kind and returns the elapsed time.
func (r *Runner) Run(ctx context.Context, kind model.ReportKind) (time.Duration, error) {
	log := logging.Component("runner")
	start := time.Now()
	r.setStatus(kind, StatusStarting)

	if err := r.generate(ctx, kind); err != nil {
		r.setStatus(kind, StatusFailed)
		return 0, err
	}

	elapsed := time.Since(start)
	r.setStatus(kind, fmt.Sprintf("finished in %.2f seconds", elapsed.Seconds()))
	log.Info().Str("report", string(kind)).Dur("elapsed", elapsed).Msg("report generated")
	return elapsed, nil
}

// RunAll generates all three reports from one directory listing and one set
// of file reads, folding every accumulator in a single combined pass.
func (r *Runner) RunAll(ctx context.Context) (time.Duration, error) {
	start := time.Now()

	entries, err := r.load(ctx)
	if err != nil {
		return 0, err
	}

	tables := ledger.Tables{
		Accounts: ledger.NewAccountBalances(),
		Yearly:   ledger.YearlyCash{},
		Category: seededCategoryTable(),
	}
	for _, fileEntries := range entries {
		tables.Fold(fileEntries)
	}

	outputs := map[model.ReportKind][]string{
		model.ReportAccounts: report.FormatAccounts(tables.Accounts),
		model.ReportYearly:   report.FormatYearly(tables.Yearly),
		model.ReportFS:       report.FormatFinancialStatement(tables.Category),
	}
	for _, kind := range model.ReportKinds() {
		path := filepath.Join(r.reportDir, report.FileName(kind))
		if err := report.Write(path, outputs[kind]); err != nil {
			return 0, err
		}
	}

	return time.Since(start), nil
}

// generate runs the pipeline for a single report kind.
func (r *Runner) generate(ctx context.Context, kind model.ReportKind) error {
	entries, err := r.load(ctx)
	if err != nil {
		return err
	}

	var tables ledger.Tables
	switch kind {
	case model.ReportAccounts:
		tables.Accounts = ledger.NewAccountBalances()
	case model.ReportYearly:
		tables.Yearly = ledger.YearlyCash{}
	case model.ReportFS:
		tables.Category = seededCategoryTable()
	default:
		return fmt.Errorf("unknown report kind %q", kind)
	}

	for _, fileEntries := range entries {
		tables.Fold(fileEntries)
	}

	var lines []string
	switch kind {
	case model.ReportAccounts:
		lines = report.FormatAccounts(tables.Accounts)
	case model.ReportYearly:
		lines = report.FormatYearly(tables.Yearly)
	case model.ReportFS:
		lines = report.FormatFinancialStatement(tables.Category)
	}

	return report.Write(filepath.Join(r.reportDir, report.FileName(kind)), lines)
}

// load lists source files (excluding every report output so no task ever
// re-ingests generated output), reads them concurrently, and parses each
// file's rows.
func (r *Runner) load(ctx context.Context) ([][]model.Entry, error) {
	paths, err := ledger.ListSources(r.sourceDir, report.OutputFiles()...)
	if err != nil {
		return nil, err
	}
	contents, err := ledger.ReadAll(ctx, paths)
	if err != nil {
		return nil, err
	}

	entries := make([][]model.Entry, len(contents))
	for i, content := range contents {
		parsed, err := ledger.ParseEntries(content, r.strict)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", paths[i], err)
		}
		entries[i] = parsed
	}
	return entries, nil
}

func seededCategoryTable() *ledger.AccountBalances {
	table := ledger.NewAccountBalances()
	table.Seed(report.CategoryAccounts()...)
	return table
}
