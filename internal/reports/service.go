// Package reports submits report-generation flows and projects their status.
package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ledgerflow-dev/ledgerflow/internal/model"
	"github.com/ledgerflow-dev/ledgerflow/internal/queue"
)

// FlowJobName is the parent job submitted with every flow. It carries no
// work of its own; the children do the generation.
const FlowJobName = "generate-all"

// ErrFlowNotFound is returned for an unknown flow ID, or one with no
// recorded children.
var ErrFlowNotFound = errors.New("report flow not found")

// FlowQueue is the job-queue capability the orchestrator needs.
type FlowQueue interface {
	EnqueueFlow(ctx context.Context, parent queue.JobSpec, children []queue.JobSpec) (string, error)
	GetFlow(ctx context.Context, flowID string) (*model.Flow, error)
}

// ChildStatus is the caller-facing view of one child job. StartedAt,
// FinishedAt, and ExecutionTime stay nil until the queue records the
// corresponding timestamps.
type ChildStatus struct {
	Name          string
	State         model.JobState
	StartedAt     *time.Time
	FinishedAt    *time.Time
	ExecutionTime *string
}

// Service is the flow orchestrator.
type Service struct {
	queue FlowQueue
}

// NewService creates a Service over a job queue.
func NewService(q FlowQueue) *Service {
	return &Service{queue: q}
}

// GenerateAll submits one parent job plus a child job per report kind, all
// sharing a new flow ID, and returns that ID. The children execute
// independently and concurrently; submission failures surface as errors.
func (s *Service) GenerateAll(ctx context.Context) (string, error) {
	children := make([]queue.JobSpec, 0, len(model.ReportKinds()))
	for _, kind := range model.ReportKinds() {
		children = append(children, queue.JobSpec{Name: string(kind)})
	}

	flowID, err := s.queue.EnqueueFlow(ctx, queue.JobSpec{Name: FlowJobName}, children)
	if err != nil {
		return "", fmt.Errorf("submitting report flow: %w", err)
	}
	return flowID, nil
}

// FlowStatus projects the flow's children into per-child status summaries.
// It is a pure read: safe to call repeatedly while children run, returning
// partial timing information until both timestamps are set.
func (s *Service) FlowStatus(ctx context.Context, flowID string) ([]ChildStatus, error) {
	flow, err := s.queue.GetFlow(ctx, flowID)
	if errors.Is(err, queue.ErrNotFound) {
		return nil, ErrFlowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching flow %s: %w", flowID, err)
	}
	if len(flow.Children) == 0 {
		return nil, ErrFlowNotFound
	}

	statuses := make([]ChildStatus, 0, len(flow.Children))
	for _, job := range flow.Children {
		status := ChildStatus{
			Name:       job.Name,
			State:      job.State,
			StartedAt:  job.ProcessedOn,
			FinishedAt: job.FinishedOn,
		}
		if job.ProcessedOn != nil && job.FinishedOn != nil {
			elapsed := job.FinishedOn.Sub(*job.ProcessedOn)
			formatted := fmt.Sprintf("%.2f seconds", elapsed.Seconds())
			status.ExecutionTime = &formatted
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
