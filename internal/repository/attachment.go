package repository

import (
	"context"

	"github.com/nextgencars/backend/internal/domain/attachment"
	"gorm.io/gorm"
)

type AttachmentRepo interface {
	GetAttachmentByID(ctx context.Context, id uint) (attachment.Attachment, error)
	ListAttachmentsByWorkOrder(ctx context.Context, workOrderID uint) ([]attachment.Attachment, error)
	CreateAttachment(ctx context.Context, a *attachment.Attachment) error
	DeleteAttachment(ctx context.Context, id uint) error
	WithTx(tx *gorm.DB) AttachmentRepo
}

type DBAttachmentRepo struct {
	db *gorm.DB
}

func NewAttachmentRepo(db *gorm.DB) *DBAttachmentRepo {
	return &DBAttachmentRepo{
		db: db,
	}
}

func (r *DBAttachmentRepo) GetAttachmentByID(ctx context.Context, id uint) (attachment.Attachment, error) {
	var a attachment.Attachment
	err := r.db.WithContext(ctx).First(&a, "attachment_id = ?", id).Error
	return a, err
}

func (r *DBAttachmentRepo) ListAttachmentsByWorkOrder(ctx context.Context, workOrderID uint) ([]attachment.Attachment, error) {
	var items []attachment.Attachment
	err := r.db.WithContext(ctx).
		Where("work_order_id = ?", workOrderID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *DBAttachmentRepo) CreateAttachment(ctx context.Context, a *attachment.Attachment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *DBAttachmentRepo) DeleteAttachment(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&attachment.Attachment{}, "attachment_id = ?", id).Error
}

func (r *DBAttachmentRepo) WithTx(tx *gorm.DB) AttachmentRepo {
	if tx == nil {
		return r
	}
	return &DBAttachmentRepo{
		db: tx,
	}
}
