package preferences

import (
	"context"
	"errors"
	"fmt"

	"pitchside/config"

	"github.com/redis/go-redis/v9"
)

// hashCommands is the subset of the Redis client used by RedisStore
type hashCommands interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// RedisStore keeps preferences as fields of a single Redis hash
type RedisStore struct {
	client hashCommands
	key    string
	closer func() error
}

// NewRedisStore connects to Redis and verifies the connection with PING
func NewRedisStore(ctx context.Context, cfg config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}

	key := cfg.Key
	if key == "" {
		key = config.DefaultPreferencesKey
	}
	return &RedisStore{client: client, key: key, closer: client.Close}, nil
}

// Get returns the hash field for key; a missing field is not an error
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.HGet(ctx, s.key, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis HGET %s %s: %w", s.key, key, err)
	}
	return v, true, nil
}

// Set writes the hash field for key
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.HSet(ctx, s.key, key, value).Err(); err != nil {
		return fmt.Errorf("redis HSET %s %s: %w", s.key, key, err)
	}
	return nil
}

// Close releases the underlying connection pool
func (s *RedisStore) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
