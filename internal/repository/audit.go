package repository

import (
	"context"
	"time"

	"github.com/nextgencars/backend/internal/domain/audit"
	"gorm.io/gorm"
)

type AuditRepo interface {
	GetAuditLogs(ctx context.Context, params audit.QueryParams) ([]audit.AuditLog, error)
	CreateAuditLog(ctx context.Context, entry *audit.AuditLog) error
	DeleteOldAuditLogs(ctx context.Context, retentionDays int) (int64, error)
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{
		db: db,
	}
}

func (r *DBAuditRepo) DeleteOldAuditLogs(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	res := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&audit.AuditLog{})
	return res.RowsAffected, res.Error
}

func (r *DBAuditRepo) GetAuditLogs(ctx context.Context, params audit.QueryParams) ([]audit.AuditLog, error) {
	var logs []audit.AuditLog
	q := r.db.WithContext(ctx).Model(&audit.AuditLog{})

	if params.UserID != nil {
		q = q.Where("user_id = ?", *params.UserID)
	}
	if params.ResourceType != nil {
		q = q.Where("resource_type = ?", *params.ResourceType)
	}
	if params.Action != nil {
		q = q.Where("action = ?", *params.Action)
	}
	if params.StartTime != nil {
		q = q.Where("created_at >= ?", *params.StartTime)
	}
	if params.EndTime != nil {
		q = q.Where("created_at <= ?", *params.EndTime)
	}

	q = q.Order("created_at DESC")
	if params.Limit > 0 {
		q = q.Limit(params.Limit)
	}
	if params.Offset > 0 {
		q = q.Offset(params.Offset)
	}

	err := q.Find(&logs).Error
	return logs, err
}

func (r *DBAuditRepo) CreateAuditLog(ctx context.Context, entry *audit.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{
		db: tx,
	}
}
