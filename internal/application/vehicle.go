package application

import (
	"context"
	"fmt"

	"github.com/nextgencars/backend/internal/domain/user"
	"github.com/nextgencars/backend/internal/domain/vehicle"
	"github.com/nextgencars/backend/internal/domain/workorder"
	"github.com/nextgencars/backend/internal/repository"
	"github.com/nextgencars/backend/pkg/errcode"
	"github.com/nextgencars/backend/pkg/types"
	"github.com/nextgencars/backend/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type VehicleService struct {
	Repos *repository.Repos
	stats StatsCache
}

func NewVehicleService(repos *repository.Repos, stats StatsCache) *VehicleService {
	if stats == nil {
		stats = noStatsCache{}
	}
	return &VehicleService{
		Repos: repos,
		stats: stats,
	}
}

func (s *VehicleService) List(ctx context.Context, caller *types.Claims, clientID *uint, search string, skip, take *int) (*vehicle.Page, error) {
	if _, err := RequireRole(caller, user.ReadRoles); err != nil {
		return nil, err
	}
	pred := vehicle.ListParams{ClientID: clientID, Search: search}.Predicate()
	offset, limit := workorder.Paginate(skip, take)

	page := &vehicle.Page{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.Repos.Vehicle.ListVehicles(gctx, pred, offset, limit)
		page.Items = items
		return err
	})
	g.Go(func() error {
		total, err := s.Repos.Vehicle.CountVehicles(gctx, pred)
		page.Total = total
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errcode.Wrap(err, "list vehicles")
	}
	if page.Items == nil {
		page.Items = []vehicle.Vehicle{}
	}
	return page, nil
}

func (s *VehicleService) Get(ctx context.Context, caller *types.Claims, id uint) (*vehicle.Vehicle, error) {
	if _, err := RequireRole(caller, user.ReadRoles); err != nil {
		return nil, err
	}
	v, err := s.Repos.Vehicle.GetVehicleByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "vehicle", id)
	}
	return &v, nil
}

func (s *VehicleService) Create(ctx context.Context, caller *types.Claims, in vehicle.CreateVehicleInput) (*vehicle.Vehicle, error) {
	if _, err := RequireRole(caller, user.MutateRoles); err != nil {
		return nil, err
	}
	v, err := in.Build()
	if err != nil {
		return nil, badInput(err)
	}
	if _, err := s.Repos.Client.GetClientByID(ctx, v.ClientID); err != nil {
		return nil, lookupErr(err, "client", v.ClientID)
	}
	if err := s.Repos.Vehicle.CreateVehicle(ctx, v); err != nil {
		return nil, errcode.Wrap(err, "create vehicle")
	}
	s.stats.Invalidate(ctx)
	utils.LogAuditAsync(ctx, s.Repos.Audit, actorID(caller), "create", "vehicle",
		fmt.Sprintf("vehicle_id=%d", v.VehicleID), nil, v, "")
	return v, nil
}

// Update refuses to move a vehicle to another client while work orders
// reference it, since those orders would no longer match their vehicle.
func (s *VehicleService) Update(ctx context.Context, caller *types.Claims, id uint, in vehicle.UpdateVehicleInput) (*vehicle.Vehicle, error) {
	if _, err := RequireRole(caller, user.MutateRoles); err != nil {
		return nil, err
	}
	current, err := s.Repos.Vehicle.GetVehicleByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "vehicle", id)
	}
	next := current
	next.Client = nil
	if err := in.ApplyTo(&next); err != nil {
		return nil, badInput(err)
	}

	if next.ClientID != current.ClientID {
		if _, err := s.Repos.Client.GetClientByID(ctx, next.ClientID); err != nil {
			return nil, lookupErr(err, "client", next.ClientID)
		}
		n, err := s.Repos.WorkOrder.CountByVehicle(ctx, id)
		if err != nil {
			return nil, errcode.Wrap(err, "count work orders of vehicle %d", id)
		}
		if n > 0 {
			return nil, errcode.New(errcode.BadUserInput, "vehicle %d is referenced by %d work orders and cannot change client", id, n)
		}
	}

	if err := s.Repos.Vehicle.UpdateVehicle(ctx, &next); err != nil {
		return nil, errcode.Wrap(err, "update vehicle %d", id)
	}
	utils.LogAuditAsync(ctx, s.Repos.Audit, actorID(caller), "update", "vehicle",
		fmt.Sprintf("vehicle_id=%d", id), current, next, "")
	return &next, nil
}

func (s *VehicleService) Delete(ctx context.Context, caller *types.Claims, id uint) (bool, error) {
	if _, err := RequireRole(caller, user.MutateRoles); err != nil {
		return false, err
	}
	existing, err := s.Repos.Vehicle.GetVehicleByID(ctx, id)
	if err != nil {
		return false, lookupErr(err, "vehicle", id)
	}
	n, err := s.Repos.WorkOrder.CountByVehicle(ctx, id)
	if err != nil {
		return false, errcode.Wrap(err, "count work orders of vehicle %d", id)
	}
	if n > 0 {
		return false, errcode.New(errcode.BadUserInput, "vehicle %d still has %d work orders", id, n)
	}
	if err := s.Repos.Vehicle.DeleteVehicle(ctx, id); err != nil {
		return false, lookupErr(err, "vehicle", id)
	}
	s.stats.Invalidate(ctx)
	utils.LogAuditAsync(ctx, s.Repos.Audit, actorID(caller), "delete", "vehicle",
		fmt.Sprintf("vehicle_id=%d", id), existing, nil, "")
	return true, nil
}
