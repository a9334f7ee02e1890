package cron

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const cleanupInterval = 24 * time.Hour

type auditCleaner interface {
	CleanupOldLogs(ctx context.Context, days int) (int64, error)
}

// StartCleanupTask prunes the audit trail on startup and then once a day
// until ctx is done.
func StartCleanupTask(ctx context.Context, auditService auditCleaner, retentionDays int) {
	go runCleanup(ctx, auditService, retentionDays, cleanupInterval)
}

func runCleanup(ctx context.Context, auditService auditCleaner, retentionDays int, every time.Duration) {
	log := zap.L().With(zap.Int("retention_days", retentionDays))
	log.Info("starting background audit cleanup task")

	cleanup := func() {
		n, err := auditService.CleanupOldLogs(ctx, retentionDays)
		if err != nil {
			log.Error("failed to cleanup old audit logs", zap.Error(err))
			return
		}
		log.Info("audit log cleanup completed", zap.Int64("deleted", n))
	}

	cleanup()

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cleanup()
		}
	}
}
