package utils

import (
	"context"
	"encoding/json"

	"github.com/nextgencars/backend/internal/domain/audit"
	"github.com/nextgencars/backend/internal/repository"
	"go.uber.org/zap"
)

// LogAuditAsync records an audit entry in the background. The request's
// cancellation does not reach the write; failures are only logged.
var LogAuditAsync = func(ctx context.Context, repo repository.AuditRepo, userID uint, action, resourceType, resourceID string, oldData, newData any, msg string) {
	meta := RequestMetaFrom(ctx)
	bg := context.WithoutCancel(ctx)

	go func() {
		if err := LogAudit(bg, repo, userID, meta, action, resourceType, resourceID, oldData, newData, msg); err != nil {
			zap.L().Warn("audit log write failed",
				zap.String("action", action),
				zap.String("resource_type", resourceType),
				zap.String("resource_id", resourceID),
				zap.Error(err))
		}
	}()
}

var LogAudit = func(
	ctx context.Context,
	repo repository.AuditRepo,
	userID uint,
	meta RequestMeta,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			zap.L().Warn("audit marshal oldData", zap.Error(err))
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			zap.L().Warn("audit marshal newData", zap.Error(err))
		}
	}

	entry := &audit.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    meta.IP,
		UserAgent:    meta.UserAgent,
		Description:  description,
	}

	return repo.CreateAuditLog(ctx, entry)
}
