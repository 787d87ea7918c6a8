package domain

import (
	"errors"
	"time"
)

var (
	// ErrRunInProgress is returned when a sync run already owns the ledger.
	ErrRunInProgress = errors.New("a sync run is already in progress for this ledger")
	// ErrRunNotFound is returned when a run id is unknown or expired.
	ErrRunNotFound = errors.New("sync run not found")
)

// RunState is the lifecycle state of a background sync run.
type RunState string

const (
	RunRunning   RunState = "running"
	RunCompleted RunState = "completed"
	RunFailed    RunState = "failed"
)

// Run records one background sync execution.
type Run struct {
	ID         string     `json:"id"`
	Mode       Mode       `json:"mode"`
	State      RunState   `json:"state"`
	Progress   int        `json:"progress"`
	Result     string     `json:"result,omitempty"`
	Errors     []string   `json:"errors"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// NewRun creates a running Run.
func NewRun(id string, mode Mode, now time.Time) *Run {
	return &Run{
		ID:        id,
		Mode:      mode,
		State:     RunRunning,
		Errors:    []string{},
		StartedAt: now,
	}
}

// Apply folds an event into the run.
func (r *Run) Apply(e Event) {
	switch e.Kind {
	case EventProgress:
		if e.Progress > r.Progress {
			r.Progress = e.Progress
		}
	case EventResult:
		r.Result = e.Message
	case EventError:
		r.Errors = append(r.Errors, e.Message)
	}
}

// Finish closes the run. A non-nil err marks it failed.
func (r *Run) Finish(err error, now time.Time) {
	r.FinishedAt = &now
	if err != nil {
		r.State = RunFailed
		if r.Result == "" {
			r.Result = err.Error()
		}
		return
	}
	r.State = RunCompleted
}

// IsFinished reports whether the run has ended.
func (r *Run) IsFinished() bool {
	return r.State != RunRunning
}
