package application

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/nextgencars/backend/internal/domain/dashboard"
	"github.com/nextgencars/backend/internal/events"
	"github.com/nextgencars/backend/internal/repository"
	"github.com/nextgencars/backend/internal/repository/mock"
	"github.com/nextgencars/backend/pkg/types"
	"github.com/nextgencars/backend/pkg/utils"
)

type repoMocks struct {
	WorkOrder  *mock.MockWorkOrderRepo
	Client     *mock.MockClientRepo
	Vehicle    *mock.MockVehicleRepo
	User       *mock.MockUserRepo
	Audit      *mock.MockAuditRepo
	Attachment *mock.MockAttachmentRepo
}

// --------------------- Setup ---------------------
func setupRepoMocks(t *testing.T) (*repository.Repos, *repoMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &repoMocks{
		WorkOrder:  mock.NewMockWorkOrderRepo(ctrl),
		Client:     mock.NewMockClientRepo(ctrl),
		Vehicle:    mock.NewMockVehicleRepo(ctrl),
		User:       mock.NewMockUserRepo(ctrl),
		Audit:      mock.NewMockAuditRepo(ctrl),
		Attachment: mock.NewMockAttachmentRepo(ctrl),
	}
	repos := &repository.Repos{
		WorkOrder:  m.WorkOrder,
		Client:     m.Client,
		Vehicle:    m.Vehicle,
		User:       m.User,
		Audit:      m.Audit,
		Attachment: m.Attachment,
	}
	return repos, m
}

type auditCall struct {
	UserID       uint
	Action       string
	ResourceType string
	ResourceID   string
}

// captureAudit swaps the async audit writer for a recorder.
func captureAudit(t *testing.T) *[]auditCall {
	var (
		mu    sync.Mutex
		calls []auditCall
	)
	orig := utils.LogAuditAsync
	utils.LogAuditAsync = func(_ context.Context, _ repository.AuditRepo, userID uint, action, resourceType, resourceID string, _, _ any, _ string) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, auditCall{userID, action, resourceType, resourceID})
	}
	t.Cleanup(func() { utils.LogAuditAsync = orig })
	return &calls
}

type recordingPublisher struct {
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) {
	p.events = append(p.events, e)
}

type fakeStats struct {
	cached      *dashboard.Stats
	sets        int
	invalidated int
}

func (f *fakeStats) Get(context.Context) (*dashboard.Stats, bool) {
	return f.cached, f.cached != nil
}
func (f *fakeStats) Set(_ context.Context, s *dashboard.Stats) { f.sets++; f.cached = s }
func (f *fakeStats) Invalidate(context.Context)                { f.invalidated++; f.cached = nil }

func caller(role string) *types.Claims {
	return &types.Claims{UserID: 1, Username: role, Role: role}
}

func ptrString(s string) *string { return &s }
func ptrInt(i int) *int          { return &i }
func ptrUint(u uint) *uint       { return &u }
