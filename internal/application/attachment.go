package application

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nextgencars/backend/internal/domain/attachment"
	"github.com/nextgencars/backend/internal/domain/user"
	"github.com/nextgencars/backend/internal/repository"
	"github.com/nextgencars/backend/pkg/errcode"
	"github.com/nextgencars/backend/pkg/types"
	"github.com/nextgencars/backend/pkg/utils"
	"go.uber.org/zap"
)

const MaxAttachmentSize = 20 << 20

var ErrStorageDisabled = errcode.New(errcode.Internal, "attachment storage is not configured")

// ObjectStore is the bucket attachments live in.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	PresignGet(ctx context.Context, key, fileName string, ttl time.Duration) (string, error)
	Remove(ctx context.Context, key string) error
}

// Upload is one file received from a client.
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type AttachmentService struct {
	Repos      *repository.Repos
	store      ObjectStore
	presignTTL time.Duration
}

func NewAttachmentService(repos *repository.Repos, store ObjectStore, presignTTL time.Duration) *AttachmentService {
	return &AttachmentService{
		Repos:      repos,
		store:      store,
		presignTTL: presignTTL,
	}
}

func (s *AttachmentService) Enabled() bool {
	return s != nil && s.store != nil
}

func (s *AttachmentService) List(ctx context.Context, caller *types.Claims, workOrderID uint) ([]attachment.Attachment, error) {
	if _, err := RequireRole(caller, user.ReadRoles); err != nil {
		return nil, err
	}
	if !s.Enabled() {
		return nil, ErrStorageDisabled
	}
	if _, err := s.Repos.WorkOrder.GetWorkOrderByID(ctx, workOrderID); err != nil {
		return nil, lookupErr(err, "work order", workOrderID)
	}
	items, err := s.Repos.Attachment.ListAttachmentsByWorkOrder(ctx, workOrderID)
	if err != nil {
		return nil, errcode.Wrap(err, "list attachments")
	}
	for i := range items {
		u, err := s.store.PresignGet(ctx, items[i].ObjectKey, items[i].FileName, s.presignTTL)
		if err != nil {
			return nil, errcode.Wrap(err, "presign attachment %d", items[i].AttachmentID)
		}
		items[i].URL = u
	}
	if items == nil {
		items = []attachment.Attachment{}
	}
	return items, nil
}

func (s *AttachmentService) Upload(ctx context.Context, caller *types.Claims, workOrderID uint, up Upload) (*attachment.Attachment, error) {
	if _, err := RequireRole(caller, user.MutateRoles); err != nil {
		return nil, err
	}
	if !s.Enabled() {
		return nil, ErrStorageDisabled
	}
	if up.Size <= 0 {
		return nil, errcode.New(errcode.BadUserInput, "file is empty")
	}
	if up.Size > MaxAttachmentSize {
		return nil, errcode.New(errcode.BadUserInput, "file exceeds %d bytes", MaxAttachmentSize)
	}
	if _, err := s.Repos.WorkOrder.GetWorkOrderByID(ctx, workOrderID); err != nil {
		return nil, lookupErr(err, "work order", workOrderID)
	}

	name := path.Base(strings.ReplaceAll(up.FileName, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "upload"
	}
	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := fmt.Sprintf("work-orders/%d/%s%s", workOrderID, uuid.NewString(), strings.ToLower(path.Ext(name)))

	if err := s.store.Put(ctx, key, up.Body, up.Size, contentType); err != nil {
		return nil, errcode.Wrap(err, "store attachment")
	}
	a := &attachment.Attachment{
		WorkOrderID: workOrderID,
		ObjectKey:   key,
		FileName:    name,
		ContentType: contentType,
		Size:        up.Size,
		UploadedBy:  actorID(caller),
	}
	if err := s.Repos.Attachment.CreateAttachment(ctx, a); err != nil {
		if rmErr := s.store.Remove(ctx, key); rmErr != nil {
			zap.L().Warn("remove orphaned object", zap.String("key", key), zap.Error(rmErr))
		}
		return nil, errcode.Wrap(err, "save attachment")
	}
	utils.LogAuditAsync(ctx, s.Repos.Audit, actorID(caller), "create", "attachment",
		fmt.Sprintf("attachment_id=%d", a.AttachmentID), nil, a, "")
	return a, nil
}

func (s *AttachmentService) Delete(ctx context.Context, caller *types.Claims, workOrderID, attachmentID uint) (bool, error) {
	if _, err := RequireRole(caller, user.MutateRoles); err != nil {
		return false, err
	}
	if !s.Enabled() {
		return false, ErrStorageDisabled
	}
	a, err := s.Repos.Attachment.GetAttachmentByID(ctx, attachmentID)
	if err != nil {
		return false, lookupErr(err, "attachment", attachmentID)
	}
	if a.WorkOrderID != workOrderID {
		return false, errcode.New(errcode.NotFound, "attachment %d not found", attachmentID)
	}
	if err := s.store.Remove(ctx, a.ObjectKey); err != nil {
		return false, errcode.Wrap(err, "remove object")
	}
	if err := s.Repos.Attachment.DeleteAttachment(ctx, attachmentID); err != nil {
		return false, errcode.Wrap(err, "delete attachment %d", attachmentID)
	}
	utils.LogAuditAsync(ctx, s.Repos.Audit, actorID(caller), "delete", "attachment",
		fmt.Sprintf("attachment_id=%d", attachmentID), a, nil, "")
	return true, nil
}

// PurgeWorkOrder drops every attachment of a work order. Failures are logged
// and leave the remaining rows for a later retry.
func (s *AttachmentService) PurgeWorkOrder(ctx context.Context, workOrderID uint) {
	items, err := s.Repos.Attachment.ListAttachmentsByWorkOrder(ctx, workOrderID)
	if err != nil {
		zap.L().Warn("list attachments for purge", zap.Uint("work_order_id", workOrderID), zap.Error(err))
		return
	}
	for _, a := range items {
		if s.Enabled() {
			if err := s.store.Remove(ctx, a.ObjectKey); err != nil {
				zap.L().Warn("remove attachment object", zap.String("key", a.ObjectKey), zap.Error(err))
				continue
			}
		}
		if err := s.Repos.Attachment.DeleteAttachment(ctx, a.AttachmentID); err != nil {
			zap.L().Warn("delete attachment row", zap.Uint("attachment_id", a.AttachmentID), zap.Error(err))
		}
	}
}
