package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	stateKeyPrefix = "session:state:"
	dataKeyPrefix  = "session:data:"

	// defaultTTL bounds how long an abandoned conversation lingers
	defaultTTL = 24 * time.Hour
)

// Config holds configuration for the Redis session store
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL is the expiry applied to session keys; zero means defaultTTL
	TTL time.Duration
}

// redisStore implements the Store interface using Redis
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed session store
func NewRedis(cfg *Config) (*redisStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisStore{
		client: cfg.RedisClient,
		ttl:    ttl,
	}, nil
}

// GetState returns the current dialog state for a conversation
func (r *redisStore) GetState(ctx context.Context, chatID int64) (string, error) {
	state, err := r.client.Get(ctx, stateKey(chatID)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to get session state: %w", err)
	}

	return state, nil
}

// SetState replaces the dialog state for a conversation
func (r *redisStore) SetState(ctx context.Context, chatID int64, state string) error {
	if err := r.client.Set(ctx, stateKey(chatID), state, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session state: %w", err)
	}

	return nil
}

// GetData returns all data fields collected for a conversation
func (r *redisStore) GetData(ctx context.Context, chatID int64) (map[string]string, error) {
	data, err := r.client.HGetAll(ctx, dataKey(chatID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session data: %w", err)
	}

	return data, nil
}

// UpdateData merges fields into the conversation data
func (r *redisStore) UpdateData(ctx context.Context, chatID int64, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}

	pipe := r.client.Pipeline()
	key := dataKey(chatID)
	pipe.HSet(ctx, key, args...)
	pipe.Expire(ctx, key, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update session data: %w", err)
	}

	return nil
}

// Clear removes the state and all data for a conversation
func (r *redisStore) Clear(ctx context.Context, chatID int64) error {
	if err := r.client.Del(ctx, stateKey(chatID), dataKey(chatID)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

func stateKey(chatID int64) string {
	return fmt.Sprintf("%s%d", stateKeyPrefix, chatID)
}

func dataKey(chatID int64) string {
	return fmt.Sprintf("%s%d", dataKeyPrefix, chatID)
}
