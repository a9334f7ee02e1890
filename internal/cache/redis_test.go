package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nextgencars/backend/internal/domain/dashboard"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memKV struct {
	data   map[string]string
	ttl    time.Duration
	getErr error
}

func newMemKV() *memKV { return &memKV{data: map[string]string{}} }

func (m *memKV) Get(_ context.Context, key string) *redis.StringCmd {
	if m.getErr != nil {
		return redis.NewStringResult("", m.getErr)
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memKV) Set(_ context.Context, key string, value interface{}, exp time.Duration) *redis.StatusCmd {
	m.data[key] = string(value.([]byte))
	m.ttl = exp
	return redis.NewStatusResult("OK", nil)
}

func (m *memKV) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestStatsCache_RoundTripAndInvalidate(t *testing.T) {
	kv := newMemKV()
	c := NewStatsCache(kv, time.Minute)
	ctx := context.Background()

	_, ok := c.Get(ctx)
	assert.False(t, ok)

	c.Set(ctx, &dashboard.Stats{OpenBacklog: 4, MonthRevenue: 99.5})
	assert.Equal(t, time.Minute, kv.ttl)

	got, ok := c.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(4), got.OpenBacklog)
	assert.Equal(t, 99.5, got.MonthRevenue)

	c.Invalidate(ctx)
	_, ok = c.Get(ctx)
	assert.False(t, ok)
}

func TestStatsCache_Disabled(t *testing.T) {
	var nilCache *StatsCache
	ctx := context.Background()

	assert.NotPanics(t, func() {
		nilCache.Set(ctx, &dashboard.Stats{})
		nilCache.Invalidate(ctx)
	})
	_, ok := nilCache.Get(ctx)
	assert.False(t, ok)

	noTTL := NewStatsCache(newMemKV(), 0)
	noTTL.Set(ctx, &dashboard.Stats{})
	_, ok = noTTL.Get(ctx)
	assert.False(t, ok)
}

func TestStatsCache_ReadErrorIsMiss(t *testing.T) {
	kv := newMemKV()
	kv.getErr = errors.New("connection refused")
	_, ok := NewStatsCache(kv, time.Minute).Get(context.Background())
	assert.False(t, ok)
}

func TestNewRedisClient_NoAddr(t *testing.T) {
	assert.Nil(t, NewRedisClient("", "", 0))
}
