package application

import (
	"context"

	"github.com/nextgencars/backend/internal/domain/audit"
	"github.com/nextgencars/backend/internal/domain/user"
	"github.com/nextgencars/backend/internal/repository"
	"github.com/nextgencars/backend/pkg/errcode"
	"github.com/nextgencars/backend/pkg/types"
)

const maxAuditPage = 500

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

func (s *AuditService) QueryAuditLogs(ctx context.Context, caller *types.Claims, params audit.QueryParams) ([]audit.AuditLog, error) {
	if _, err := RequireRole(caller, user.AdminRoles); err != nil {
		return nil, err
	}
	if params.Limit <= 0 || params.Limit > maxAuditPage {
		params.Limit = maxAuditPage
	}
	logs, err := s.Repos.Audit.GetAuditLogs(ctx, params)
	if err != nil {
		return nil, errcode.Wrap(err, "query audit logs")
	}
	if logs == nil {
		logs = []audit.AuditLog{}
	}
	return logs, nil
}

// CleanupOldLogs deletes entries older than days and reports how many went.
func (s *AuditService) CleanupOldLogs(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, nil
	}
	return s.Repos.Audit.DeleteOldAuditLogs(ctx, days)
}
