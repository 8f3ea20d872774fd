package scheduler

import (
	"time"
)

// SubmitInput contains parameters for scheduling a task
type SubmitInput struct {
	// TaskName selects the worker handler
	TaskName string

	// Payload carries the task arguments
	Payload map[string]string

	// FireAt is when the task becomes due
	FireAt time.Time
}

// SubmitOutput contains the result of scheduling a task
type SubmitOutput struct {
	// JobID identifies the scheduled job
	JobID string
}

// job is the persisted form of a scheduled task
type job struct {
	ID      string            `json:"id"`
	Task    string            `json:"task"`
	Payload map[string]string `json:"payload"`
	FireAt  time.Time         `json:"fire_at"`
}
