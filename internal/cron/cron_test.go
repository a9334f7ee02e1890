package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingCleaner struct {
	calls atomic.Int32
	days  atomic.Int32
	err   error
}

func (c *countingCleaner) CleanupOldLogs(_ context.Context, days int) (int64, error) {
	c.calls.Add(1)
	c.days.Store(int32(days))
	return 3, c.err
}

func TestRunCleanup_RunsImmediatelyAndOnTick(t *testing.T) {
	cleaner := &countingCleaner{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		runCleanup(ctx, cleaner, 30, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return cleaner.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
	assert.Equal(t, int32(30), cleaner.days.Load())
}

func TestRunCleanup_ErrorsDoNotStopTheLoop(t *testing.T) {
	cleaner := &countingCleaner{err: errors.New("db down")}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runCleanup(ctx, cleaner, 7, 5*time.Millisecond)

	assert.Eventually(t, func() bool { return cleaner.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}
