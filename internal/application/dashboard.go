package application

import (
	"context"
	"time"

	"github.com/nextgencars/backend/internal/domain/dashboard"
	"github.com/nextgencars/backend/internal/domain/user"
	"github.com/nextgencars/backend/internal/domain/workorder"
	"github.com/nextgencars/backend/internal/repository"
	"github.com/nextgencars/backend/pkg/errcode"
	"github.com/nextgencars/backend/pkg/types"
	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	Repos *repository.Repos
	stats StatsCache
	now   func() time.Time
}

func NewDashboardService(repos *repository.Repos, stats StatsCache) *DashboardService {
	if stats == nil {
		stats = noStatsCache{}
	}
	return &DashboardService{
		Repos: repos,
		stats: stats,
		now:   time.Now,
	}
}

// Stats serves the cached snapshot when present and recomputes it otherwise.
func (s *DashboardService) Stats(ctx context.Context, caller *types.Claims) (*dashboard.Stats, error) {
	if _, err := RequireRole(caller, user.ReadRoles); err != nil {
		return nil, err
	}
	if cached, ok := s.stats.Get(ctx); ok {
		return cached, nil
	}

	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	out := &dashboard.Stats{GeneratedAt: now}
	var byStatus map[workorder.Status]int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		byStatus, err = s.Repos.WorkOrder.CountByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Clients, err = s.Repos.Client.CountClients(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		out.Vehicles, err = s.Repos.Vehicle.CountVehicles(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		out.ScheduledToday, err = s.Repos.WorkOrder.CountScheduledBetween(gctx, dayStart, dayStart.AddDate(0, 0, 1))
		return err
	})
	g.Go(func() (err error) {
		out.MonthRevenue, err = s.Repos.WorkOrder.SumClosedRevenue(gctx, &monthStart, &now)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errcode.Wrap(err, "compute dashboard stats")
	}

	out.ByStatus = make(map[string]int64, len(workorder.Statuses))
	for _, st := range workorder.Statuses {
		n := byStatus[st]
		out.ByStatus[string(st)] = n
		if !st.Frozen() {
			out.OpenBacklog += n
		}
	}

	s.stats.Set(ctx, out)
	return out, nil
}
