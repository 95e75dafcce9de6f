package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mockmate/mockmate-api/pkg/config"
)

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// UserCache caches the active flag of known user ids so the identity
// middleware does not query Postgres on every request. Entries expire after
// a short TTL, deactivated accounts age out rather than being evicted.
type UserCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewUserCache creates a Redis-backed user cache
func NewUserCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *UserCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &UserCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *UserCache) key(userID uuid.UUID) string {
	return "user:active:" + userID.String()
}

// IsActive reports the cached active flag for the user. The second return
// value is false on a cache miss or a Redis failure; callers then fall back
// to the database.
func (c *UserCache) IsActive(ctx context.Context, userID uuid.UUID) (bool, bool) {
	value, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return false, false
	}
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("cache.user.get_failed", zap.Error(err))
		}
		return false, false
	}
	return value == "1", true
}

// SetActive records the user's active flag. Failures are logged and
// swallowed, the cache is an optimization only.
func (c *UserCache) SetActive(ctx context.Context, userID uuid.UUID, active bool) {
	value := "0"
	if active {
		value = "1"
	}
	if err := c.client.Set(ctx, c.key(userID), value, c.ttl).Err(); err != nil {
		if c.logger != nil {
			c.logger.Warn("cache.user.set_failed", zap.Error(err))
		}
	}
}
