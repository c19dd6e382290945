package history

import (
	"context"
	"fmt"
	"time"

	"pitchside/config"

	"github.com/redis/go-redis/v9"
)

// setCommands is the subset of the Redis client used by RedisTracker
type setCommands interface {
	SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SIsMember(ctx context.Context, key string, member interface{}) *redis.BoolCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisTracker stores hashed article URLs in a Redis set
type RedisTracker struct {
	client setCommands
	key    string
	ttl    time.Duration
	closer func() error
}

// NewRedisTracker connects to Redis and verifies the connection with PING
func NewRedisTracker(ctx context.Context, cfg config.RedisConfig) (*RedisTracker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}

	key := cfg.HistoryKey
	if key == "" {
		key = config.DefaultHistoryKey
	}
	ttl := cfg.HistoryTTL
	if ttl <= 0 {
		ttl = config.DefaultHistoryTTL
	}
	return &RedisTracker{client: client, key: key, ttl: ttl, closer: client.Close}, nil
}

// MarkRead adds the URL hash to the set and slides the set's expiry forward
func (t *RedisTracker) MarkRead(ctx context.Context, rawURL string) error {
	if err := t.client.SAdd(ctx, t.key, Hash(rawURL)).Err(); err != nil {
		return fmt.Errorf("redis SADD %s: %w", t.key, err)
	}
	if err := t.client.Expire(ctx, t.key, t.ttl).Err(); err != nil {
		return fmt.Errorf("redis EXPIRE %s: %w", t.key, err)
	}
	return nil
}

// IsRead reports whether the URL hash is in the set
func (t *RedisTracker) IsRead(ctx context.Context, rawURL string) (bool, error) {
	ok, err := t.client.SIsMember(ctx, t.key, Hash(rawURL)).Result()
	if err != nil {
		return false, fmt.Errorf("redis SISMEMBER %s: %w", t.key, err)
	}
	return ok, nil
}

// Close releases the underlying connection pool
func (t *RedisTracker) Close() error {
	if t.closer == nil {
		return nil
	}
	return t.closer()
}
