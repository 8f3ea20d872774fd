package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dvigun/beerbot/internal/common/uuid"
)

const (
	// scheduleKey is the sorted set of job IDs scored by fire time
	scheduleKey = "scheduler:jobs"

	// jobKeyPrefix prefixes the per-job payload keys
	jobKeyPrefix = "scheduler:job:"
)

// ErrJobNotFound is returned when a claimed job has no payload
var ErrJobNotFound = errors.New("scheduled job not found")

// Config holds configuration for the Redis scheduler
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// UUID generator for job IDs
	UUID uuid.UUID
}

// redisScheduler implements the Scheduler interface using Redis
type redisScheduler struct {
	client *redis.Client
	uuid   uuid.UUID
}

// NewRedis creates a new Redis-backed scheduler
func NewRedis(cfg *Config) (*redisScheduler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.UUID == nil {
		return nil, errors.New("uuid generator cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisScheduler{
		client: cfg.RedisClient,
		uuid:   cfg.UUID,
	}, nil
}

// Submit schedules a task to fire at the given time
func (r *redisScheduler) Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
	if input == nil || input.TaskName == "" {
		return nil, errors.New("input and task name cannot be empty")
	}

	if input.FireAt.IsZero() {
		return nil, errors.New("fire time cannot be zero")
	}

	j := job{
		ID:      r.uuid.NewUUID(),
		Task:    input.TaskName,
		Payload: input.Payload,
		FireAt:  input.FireAt,
	}

	jobJSON, err := json.Marshal(j)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, jobKey(j.ID), jobJSON, 0)
	pipe.ZAdd(ctx, scheduleKey, redis.Z{
		Score:  float64(input.FireAt.Unix()),
		Member: j.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to schedule job: %w", err)
	}

	return &SubmitOutput{JobID: j.ID}, nil
}

func jobKey(id string) string {
	return fmt.Sprintf("%s%s", jobKeyPrefix, id)
}
