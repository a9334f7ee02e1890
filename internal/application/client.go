package application

import (
	"context"
	"fmt"

	"github.com/nextgencars/backend/internal/domain/client"
	"github.com/nextgencars/backend/internal/domain/user"
	"github.com/nextgencars/backend/internal/domain/vehicle"
	"github.com/nextgencars/backend/internal/domain/workorder"
	"github.com/nextgencars/backend/internal/repository"
	"github.com/nextgencars/backend/pkg/errcode"
	"github.com/nextgencars/backend/pkg/types"
	"github.com/nextgencars/backend/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// ClientDetail is a client together with the vehicles it owns.
type ClientDetail struct {
	client.Client
	Vehicles []vehicle.Vehicle `json:"vehicles"`
}

type ClientService struct {
	Repos *repository.Repos
	stats StatsCache
}

func NewClientService(repos *repository.Repos, stats StatsCache) *ClientService {
	if stats == nil {
		stats = noStatsCache{}
	}
	return &ClientService{
		Repos: repos,
		stats: stats,
	}
}

func (s *ClientService) List(ctx context.Context, caller *types.Claims, search string, skip, take *int) (*client.Page, error) {
	if _, err := RequireRole(caller, user.ReadRoles); err != nil {
		return nil, err
	}
	pred := client.ListParams{Search: search}.Predicate()
	offset, limit := workorder.Paginate(skip, take)

	page := &client.Page{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.Repos.Client.ListClients(gctx, pred, offset, limit)
		page.Items = items
		return err
	})
	g.Go(func() error {
		total, err := s.Repos.Client.CountClients(gctx, pred)
		page.Total = total
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errcode.Wrap(err, "list clients")
	}
	if page.Items == nil {
		page.Items = []client.Client{}
	}
	return page, nil
}

func (s *ClientService) Get(ctx context.Context, caller *types.Claims, id uint) (*ClientDetail, error) {
	if _, err := RequireRole(caller, user.ReadRoles); err != nil {
		return nil, err
	}
	c, err := s.Repos.Client.GetClientByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "client", id)
	}
	owned := vehicle.ListParams{ClientID: &id}.Predicate()
	vehicles, err := s.Repos.Vehicle.ListVehicles(ctx, owned, 0, -1)
	if err != nil {
		return nil, errcode.Wrap(err, "list vehicles of client %d", id)
	}
	if vehicles == nil {
		vehicles = []vehicle.Vehicle{}
	}
	return &ClientDetail{Client: c, Vehicles: vehicles}, nil
}

func (s *ClientService) Create(ctx context.Context, caller *types.Claims, in client.CreateClientInput) (*client.Client, error) {
	if _, err := RequireRole(caller, user.MutateRoles); err != nil {
		return nil, err
	}
	c, err := in.Build()
	if err != nil {
		return nil, badInput(err)
	}
	if err := s.Repos.Client.CreateClient(ctx, c); err != nil {
		return nil, errcode.Wrap(err, "create client")
	}
	s.stats.Invalidate(ctx)
	utils.LogAuditAsync(ctx, s.Repos.Audit, actorID(caller), "create", "client",
		fmt.Sprintf("client_id=%d", c.ClientID), nil, c, "")
	return c, nil
}

func (s *ClientService) Update(ctx context.Context, caller *types.Claims, id uint, in client.UpdateClientInput) (*client.Client, error) {
	if _, err := RequireRole(caller, user.MutateRoles); err != nil {
		return nil, err
	}
	current, err := s.Repos.Client.GetClientByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "client", id)
	}
	next := current
	if err := in.ApplyTo(&next); err != nil {
		return nil, badInput(err)
	}
	if err := s.Repos.Client.UpdateClient(ctx, &next); err != nil {
		return nil, errcode.Wrap(err, "update client %d", id)
	}
	utils.LogAuditAsync(ctx, s.Repos.Audit, actorID(caller), "update", "client",
		fmt.Sprintf("client_id=%d", id), current, next, "")
	return &next, nil
}

// Delete removes a client and, through the foreign key, its vehicles. A
// client still referenced by work orders is kept.
func (s *ClientService) Delete(ctx context.Context, caller *types.Claims, id uint) (bool, error) {
	if _, err := RequireRole(caller, user.MutateRoles); err != nil {
		return false, err
	}
	existing, err := s.Repos.Client.GetClientByID(ctx, id)
	if err != nil {
		return false, lookupErr(err, "client", id)
	}
	n, err := s.Repos.WorkOrder.CountByClient(ctx, id)
	if err != nil {
		return false, errcode.Wrap(err, "count work orders of client %d", id)
	}
	if n > 0 {
		return false, errcode.New(errcode.BadUserInput, "client %d still has %d work orders", id, n)
	}
	if err := s.Repos.Client.DeleteClient(ctx, id); err != nil {
		return false, lookupErr(err, "client", id)
	}
	s.stats.Invalidate(ctx)
	utils.LogAuditAsync(ctx, s.Repos.Audit, actorID(caller), "delete", "client",
		fmt.Sprintf("client_id=%d", id), existing, nil, "")
	return true, nil
}
