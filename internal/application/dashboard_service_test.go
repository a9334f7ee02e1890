package application

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nextgencars/backend/internal/domain/dashboard"
	"github.com/nextgencars/backend/internal/domain/workorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats_ComputesAndCaches(t *testing.T) {
	repos, m := setupRepoMocks(t)
	stats := &fakeStats{}
	svc := NewDashboardService(repos, stats)
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	dayStart := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	m.WorkOrder.EXPECT().CountByStatus(gomock.Any()).Return(map[workorder.Status]int64{
		workorder.StatusOpen:       4,
		workorder.StatusInProgress: 2,
		workorder.StatusClosed:     9,
	}, nil)
	m.Client.EXPECT().CountClients(gomock.Any(), nil).Return(int64(12), nil)
	m.Vehicle.EXPECT().CountVehicles(gomock.Any(), nil).Return(int64(20), nil)
	m.WorkOrder.EXPECT().CountScheduledBetween(gomock.Any(), dayStart, dayStart.AddDate(0, 0, 1)).Return(int64(3), nil)
	m.WorkOrder.EXPECT().SumClosedRevenue(gomock.Any(), &monthStart, &now).Return(800.0, nil)

	got, err := svc.Stats(context.Background(), caller("mechanic"))
	require.NoError(t, err)
	assert.Equal(t, int64(6), got.OpenBacklog)
	assert.Equal(t, int64(9), got.ByStatus["CLOSED"])
	assert.Equal(t, int64(0), got.ByStatus["CANCELED"])
	assert.Len(t, got.ByStatus, len(workorder.Statuses))
	assert.Equal(t, 800.0, got.MonthRevenue)
	assert.Equal(t, 1, stats.sets)

	// second call is served from the cache; the mocks above allow one call each
	again, err := svc.Stats(context.Background(), caller("admin"))
	require.NoError(t, err)
	assert.Same(t, got, again)
}

func TestDashboardStats_CacheHit(t *testing.T) {
	repos, _ := setupRepoMocks(t)
	cached := &dashboard.Stats{Clients: 1}
	svc := NewDashboardService(repos, &fakeStats{cached: cached})

	got, err := svc.Stats(context.Background(), caller("frontdesk"))
	require.NoError(t, err)
	assert.Same(t, cached, got)

	_, err = svc.Stats(context.Background(), nil)
	assert.Error(t, err)
}
