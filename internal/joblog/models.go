package joblog

import "time"

// Status represents the lifecycle of a logged job.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Job is one external-tool invocation recorded in the log.
type Job struct {
	ID         string
	Tool       string
	Source     string
	Output     string
	Status     Status
	Detail     string
	StartedAt  time.Time
	FinishedAt time.Time // zero while running
}

// Duration returns the job's elapsed time; running jobs measure to now.
func (j Job) Duration() time.Duration {
	if j.StartedAt.IsZero() {
		return 0
	}
	end := j.FinishedAt
	if end.IsZero() {
		end = time.Now().UTC()
	}
	d := end.Sub(j.StartedAt)
	if d < 0 {
		return 0
	}
	return d
}
