package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dvigun/beerbot/internal/common/clock"
)

const (
	// claimBatchSize bounds how many due jobs one poll picks up
	claimBatchSize = 10

	defaultPollInterval = 5 * time.Second
	defaultRetryDelay   = time.Minute
)

// HandlerFunc executes one task. A returned error makes the worker
// retry the job after the retry delay.
type HandlerFunc func(ctx context.Context, payload map[string]string) error

// WorkerConfig holds configuration for the job worker
type WorkerConfig struct {
	// Redis client
	RedisClient *redis.Client

	// Clock provides the current time
	Clock clock.Clock

	// PollInterval is how often the worker checks for due jobs;
	// zero means defaultPollInterval
	PollInterval time.Duration

	// RetryDelay is how long a failed job waits before refiring;
	// zero means defaultRetryDelay
	RetryDelay time.Duration
}

// Worker polls the schedule and dispatches due jobs to registered
// handlers. Claiming is a ZREM so that concurrent workers never run
// the same job twice.
type Worker struct {
	client       *redis.Client
	clock        clock.Clock
	pollInterval time.Duration
	retryDelay   time.Duration
	handlers     map[string]HandlerFunc
}

// NewWorker creates a new job worker
func NewWorker(cfg *WorkerConfig) (*Worker, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	pollInterval := cfg.PollInterval
	if pollInterval == 0 {
		pollInterval = defaultPollInterval
	}

	retryDelay := cfg.RetryDelay
	if retryDelay == 0 {
		retryDelay = defaultRetryDelay
	}

	return &Worker{
		client:       cfg.RedisClient,
		clock:        cfg.Clock,
		pollInterval: pollInterval,
		retryDelay:   retryDelay,
		handlers:     make(map[string]HandlerFunc),
	}, nil
}

// Register binds a handler to a task name. Must be called before Run.
func (w *Worker) Register(taskName string, handler HandlerFunc) {
	w.handlers[taskName] = handler
}

// Run polls for due jobs until the context is cancelled
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.processDue(ctx); err != nil {
				log.Printf("worker poll failed: %v", err)
			}
		}
	}
}

// processDue claims and runs every job whose fire time has passed
func (w *Worker) processDue(ctx context.Context) error {
	now := w.clock.Now()

	jobIDs, err := w.client.ZRangeByScore(ctx, scheduleKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   fmt.Sprintf("%d", now.Unix()),
		Count: claimBatchSize,
	}).Result()
	if err != nil {
		return fmt.Errorf("failed to list due jobs: %w", err)
	}

	for _, jobID := range jobIDs {
		removed, err := w.client.ZRem(ctx, scheduleKey, jobID).Result()
		if err != nil {
			return fmt.Errorf("failed to claim job %s: %w", jobID, err)
		}
		if removed == 0 {
			// Another worker claimed it first
			continue
		}

		if err := w.runJob(ctx, jobID); err != nil {
			log.Printf("job %s failed, retrying in %s: %v", jobID, w.retryDelay, err)
			w.reschedule(ctx, jobID)
		}
	}

	return nil
}

// runJob loads a claimed job and dispatches it to its handler
func (w *Worker) runJob(ctx context.Context, jobID string) error {
	jobJSON, err := w.client.Get(ctx, jobKey(jobID)).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrJobNotFound
		}
		return fmt.Errorf("failed to load job: %w", err)
	}

	var j job
	if err := json.Unmarshal([]byte(jobJSON), &j); err != nil {
		return fmt.Errorf("failed to unmarshal job: %w", err)
	}

	handler, ok := w.handlers[j.Task]
	if !ok {
		return fmt.Errorf("no handler registered for task %q", j.Task)
	}

	if err := handler(ctx, j.Payload); err != nil {
		return err
	}

	if err := w.client.Del(ctx, jobKey(jobID)).Err(); err != nil {
		log.Printf("failed to delete finished job %s: %v", jobID, err)
	}

	return nil
}

// reschedule puts a failed job back on the schedule
func (w *Worker) reschedule(ctx context.Context, jobID string) {
	fireAt := w.clock.Now().Add(w.retryDelay)
	err := w.client.ZAdd(ctx, scheduleKey, redis.Z{
		Score:  float64(fireAt.Unix()),
		Member: jobID,
	}).Err()
	if err != nil {
		log.Printf("failed to reschedule job %s: %v", jobID, err)
	}
}
