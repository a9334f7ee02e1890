package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nextgencars/backend/internal/domain/attachment"
	"github.com/nextgencars/backend/internal/domain/audit"
	"github.com/nextgencars/backend/internal/domain/workorder"
	"github.com/nextgencars/backend/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	objects map[string]string
	removed []string
	putErr  error
}

func newMemStore() *memStore { return &memStore{objects: map[string]string{}} }

func (s *memStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	if s.putErr != nil {
		return s.putErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.objects[key] = string(b)
	return nil
}

func (s *memStore) PresignGet(_ context.Context, key, _ string, _ time.Duration) (string, error) {
	return "https://files.local/" + key, nil
}

func (s *memStore) Remove(_ context.Context, key string) error {
	s.removed = append(s.removed, key)
	delete(s.objects, key)
	return nil
}

func TestAttachmentService_Disabled(t *testing.T) {
	repos, _ := setupRepoMocks(t)
	svc := NewAttachmentService(repos, nil, time.Minute)

	assert.False(t, svc.Enabled())
	_, err := svc.List(context.Background(), caller("admin"), 1)
	assert.Equal(t, ErrStorageDisabled, err)
	_, err = svc.Upload(context.Background(), caller("admin"), 1, Upload{})
	assert.Equal(t, ErrStorageDisabled, err)
}

func TestAttachmentService_Upload(t *testing.T) {
	repos, m := setupRepoMocks(t)
	captureAudit(t)
	store := newMemStore()
	svc := NewAttachmentService(repos, store, time.Minute)
	ctx := context.Background()

	m.WorkOrder.EXPECT().GetWorkOrderByID(ctx, uint(3)).Return(workorder.WorkOrder{WorkOrderID: 3}, nil)
	m.Attachment.EXPECT().CreateAttachment(ctx, gomock.Any()).Return(nil)

	a, err := svc.Upload(ctx, caller("frontdesk"), 3, Upload{
		FileName: `C:\scans\Invoice.PDF`,
		Size:     5,
		Body:     strings.NewReader("%PDF-"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Invoice.PDF", a.FileName)
	assert.Equal(t, "application/octet-stream", a.ContentType)
	assert.True(t, strings.HasPrefix(a.ObjectKey, "work-orders/3/"))
	assert.True(t, strings.HasSuffix(a.ObjectKey, ".pdf"))
	assert.Equal(t, "%PDF-", store.objects[a.ObjectKey])
}

func TestAttachmentService_Upload_Rejections(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewAttachmentService(repos, newMemStore(), time.Minute)
	ctx := context.Background()

	_, err := svc.Upload(ctx, caller("mechanic"), 3, Upload{Size: 1})
	assert.ErrorIs(t, err, errcode.ErrForbidden)

	_, err = svc.Upload(ctx, caller("admin"), 3, Upload{Size: MaxAttachmentSize + 1})
	assert.ErrorIs(t, err, errcode.ErrBadUserInput)

	_, err = svc.Upload(ctx, caller("admin"), 3, Upload{Size: 0})
	assert.ErrorIs(t, err, errcode.ErrBadUserInput)

	m.WorkOrder.EXPECT().GetWorkOrderByID(ctx, uint(3)).Return(workorder.WorkOrder{WorkOrderID: 3}, nil)
	m.Attachment.EXPECT().CreateAttachment(ctx, gomock.Any()).Return(errors.New("db down"))
	store := newMemStore()
	svc = NewAttachmentService(repos, store, time.Minute)
	_, err = svc.Upload(ctx, caller("admin"), 3, Upload{FileName: "a.jpg", Size: 1, Body: strings.NewReader("x")})
	assert.Equal(t, errcode.Internal, errcode.CodeOf(err))
	assert.Len(t, store.removed, 1)
	assert.Empty(t, store.objects)
}

func TestAttachmentService_ListPresigns(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewAttachmentService(repos, newMemStore(), time.Minute)
	ctx := context.Background()

	m.WorkOrder.EXPECT().GetWorkOrderByID(ctx, uint(3)).Return(workorder.WorkOrder{WorkOrderID: 3}, nil)
	m.Attachment.EXPECT().ListAttachmentsByWorkOrder(ctx, uint(3)).Return([]attachment.Attachment{{AttachmentID: 1, ObjectKey: "k1"}}, nil)

	items, err := svc.List(ctx, caller("mechanic"), 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "https://files.local/k1", items[0].URL)
}

func TestAttachmentService_DeleteChecksOwner(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewAttachmentService(repos, newMemStore(), time.Minute)
	ctx := context.Background()

	m.Attachment.EXPECT().GetAttachmentByID(ctx, uint(8)).Return(attachment.Attachment{AttachmentID: 8, WorkOrderID: 4}, nil)

	_, err := svc.Delete(ctx, caller("admin"), 3, 8)
	assert.ErrorIs(t, err, errcode.ErrNotFound)
}

func TestAttachmentService_PurgeWorkOrder(t *testing.T) {
	repos, m := setupRepoMocks(t)
	store := newMemStore()
	svc := NewAttachmentService(repos, store, time.Minute)
	ctx := context.Background()

	m.Attachment.EXPECT().ListAttachmentsByWorkOrder(ctx, uint(3)).Return([]attachment.Attachment{
		{AttachmentID: 1, ObjectKey: "a"}, {AttachmentID: 2, ObjectKey: "b"},
	}, nil)
	m.Attachment.EXPECT().DeleteAttachment(ctx, uint(1)).Return(nil)
	m.Attachment.EXPECT().DeleteAttachment(ctx, uint(2)).Return(nil)

	svc.PurgeWorkOrder(ctx, 3)
	assert.Equal(t, []string{"a", "b"}, store.removed)
}

func TestAuditService(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewAuditService(repos)
	ctx := context.Background()

	_, err := svc.QueryAuditLogs(ctx, caller("frontdesk"), audit.QueryParams{})
	assert.ErrorIs(t, err, errcode.ErrForbidden)

	m.Audit.EXPECT().GetAuditLogs(ctx, audit.QueryParams{Limit: 500}).Return(nil, nil)
	logs, err := svc.QueryAuditLogs(ctx, caller("admin"), audit.QueryParams{Limit: 10000})
	require.NoError(t, err)
	assert.NotNil(t, logs)

	m.Audit.EXPECT().DeleteOldAuditLogs(ctx, 30).Return(int64(4), nil)
	n, err := svc.CleanupOldLogs(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	n, err = svc.CleanupOldLogs(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, n)
}
