package scheduler

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_scheduler.go github.com/dvigun/beerbot/internal/scheduler Scheduler

// Task names understood by the worker. Payloads carry the event ID
// under PayloadEventID.
const (
	TaskUserNotification = "user_notification"
	TaskBartenderSummary = "bartender_summary"

	PayloadEventID = "event_id"
)

// Scheduler enqueues tasks for later execution by a separate worker
// process. Submission is durable: once Submit returns, the job
// survives a bot restart.
type Scheduler interface {
	// Submit schedules a task to fire at the given time. A FireAt in
	// the past fires on the worker's next poll
	Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error)
}
