// Package cache keeps short-lived aggregates in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nextgencars/backend/internal/domain/dashboard"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const statsKey = "nextgencars:dashboard:stats"

// NewRedisClient connects to addr and pings it. A nil client means Redis is
// unavailable and callers run uncached.
func NewRedisClient(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unavailable, dashboard cache disabled", zap.String("addr", addr), zap.Error(err))
		_ = client.Close()
		return nil
	}
	return client
}

type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// StatsCache stores the dashboard snapshot. Every method is a no-op on a nil
// receiver or without a client, so an unconfigured cache is valid.
type StatsCache struct {
	rdb kv
	ttl time.Duration
}

func NewStatsCache(rdb kv, ttl time.Duration) *StatsCache {
	return &StatsCache{rdb: rdb, ttl: ttl}
}

func (c *StatsCache) enabled() bool {
	return c != nil && c.rdb != nil && c.ttl > 0
}

func (c *StatsCache) Get(ctx context.Context) (*dashboard.Stats, bool) {
	if !c.enabled() {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, statsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zap.L().Warn("read dashboard cache", zap.Error(err))
		}
		return nil, false
	}
	var s dashboard.Stats
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	return &s, true
}

func (c *StatsCache) Set(ctx context.Context, s *dashboard.Stats) {
	if !c.enabled() || s == nil {
		return
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, statsKey, raw, c.ttl).Err(); err != nil {
		zap.L().Warn("write dashboard cache", zap.Error(err))
	}
}

func (c *StatsCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	if err := c.rdb.Del(ctx, statsKey).Err(); err != nil {
		zap.L().Warn("invalidate dashboard cache", zap.Error(err))
	}
}
