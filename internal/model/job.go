package model

import "time"

// JobState is the lifecycle state of a queued job.
type JobState string

const (
	JobQueued    JobState = "queued"
	JobActive    JobState = "active"
	JobCompleted JobState = "completed"
	JobFailed    JobState = "failed"
)

// Job is one unit of report work held by the queue.
type Job struct {
	ID          string
	FlowID      string
	Name        string
	State       JobState
	CreatedAt   time.Time
	ProcessedOn *time.Time // set when a worker claims the job
	FinishedOn  *time.Time // set on completion or failure
}

// Flow is one parent job plus the child jobs created with it, all sharing
// the same flow ID. Children execute independently; the parent is a marker.
type Flow struct {
	Parent   Job
	Children []Job
}
