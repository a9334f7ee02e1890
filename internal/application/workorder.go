package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/nextgencars/backend/internal/domain/dashboard"
	"github.com/nextgencars/backend/internal/domain/query"
	"github.com/nextgencars/backend/internal/domain/user"
	"github.com/nextgencars/backend/internal/domain/workorder"
	"github.com/nextgencars/backend/internal/events"
	"github.com/nextgencars/backend/internal/repository"
	"github.com/nextgencars/backend/pkg/errcode"
	"github.com/nextgencars/backend/pkg/types"
	"github.com/nextgencars/backend/pkg/utils"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// StatsCache holds the dashboard snapshot between mutations.
type StatsCache interface {
	Get(ctx context.Context) (*dashboard.Stats, bool)
	Set(ctx context.Context, s *dashboard.Stats)
	Invalidate(ctx context.Context)
}

type noStatsCache struct{}

func (noStatsCache) Get(context.Context) (*dashboard.Stats, bool) { return nil, false }
func (noStatsCache) Set(context.Context, *dashboard.Stats)        {}
func (noStatsCache) Invalidate(context.Context)                   {}

// attachmentPurger removes stored files of a work order being deleted.
type attachmentPurger interface {
	PurgeWorkOrder(ctx context.Context, workOrderID uint)
}

type WorkOrderService struct {
	Repos  *repository.Repos
	events events.Publisher
	stats  StatsCache
	purger attachmentPurger
}

func NewWorkOrderService(repos *repository.Repos, pub events.Publisher, stats StatsCache) *WorkOrderService {
	if pub == nil {
		pub = events.Nop{}
	}
	if stats == nil {
		stats = noStatsCache{}
	}
	return &WorkOrderService{
		Repos:  repos,
		events: pub,
		stats:  stats,
	}
}

func (s *WorkOrderService) List(ctx context.Context, caller *types.Claims, filter *workorder.Filter, skip, take *int) (*workorder.Page, error) {
	if _, err := RequireRole(caller, user.ReadRoles); err != nil {
		return nil, err
	}

	var pred query.Node
	if filter != nil {
		var err error
		if pred, err = filter.Predicate(); err != nil {
			return nil, err
		}
	}
	offset, limit := workorder.Paginate(skip, take)

	page := &workorder.Page{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.Repos.WorkOrder.ListWorkOrders(gctx, pred, offset, limit)
		page.Items = items
		return err
	})
	g.Go(func() error {
		total, err := s.Repos.WorkOrder.CountWorkOrders(gctx, pred)
		page.Total = total
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errcode.Wrap(err, "list work orders")
	}
	if page.Items == nil {
		page.Items = []workorder.WorkOrder{}
	}
	return page, nil
}

// Get returns nil without error when id does not exist.
func (s *WorkOrderService) Get(ctx context.Context, caller *types.Claims, id uint) (*workorder.WorkOrder, error) {
	if _, err := RequireRole(caller, user.ReadRoles); err != nil {
		return nil, err
	}
	wo, err := s.Repos.WorkOrder.GetWorkOrderByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errcode.Wrap(err, "load work order %d", id)
	}
	return &wo, nil
}

// Revenue sums total_cost of CLOSED orders whose end_date lies within the
// optional ISO-8601 bounds.
func (s *WorkOrderService) Revenue(ctx context.Context, caller *types.Claims, from, to *string) (float64, error) {
	if _, err := RequireRole(caller, user.ReadRoles); err != nil {
		return 0, err
	}
	fromT, err := workorder.ParseBound("from", from)
	if err != nil {
		return 0, err
	}
	toT, err := workorder.ParseBound("to", to)
	if err != nil {
		return 0, err
	}
	total, err := s.Repos.WorkOrder.SumClosedRevenue(ctx, fromT, toT)
	if err != nil {
		return 0, errcode.Wrap(err, "sum revenue")
	}
	return total, nil
}

func (s *WorkOrderService) Create(ctx context.Context, caller *types.Claims, in workorder.CreateWorkOrderInput) (*workorder.WorkOrder, error) {
	if _, err := RequireRole(caller, user.MutateRoles); err != nil {
		return nil, err
	}
	wo, err := in.Build()
	if err != nil {
		return nil, err
	}
	if err := CheckVehicleOwnership(ctx, s.Repos.Vehicle, wo.ClientID, wo.VehicleID); err != nil {
		return nil, err
	}
	if err := s.checkAssignee(ctx, wo.AssignedUserID); err != nil {
		return nil, err
	}

	if err := s.Repos.WorkOrder.CreateWorkOrder(ctx, wo); err != nil {
		return nil, errcode.Wrap(err, "create work order")
	}
	created := s.reload(ctx, wo)

	s.afterWrite(ctx, caller, events.WorkOrderCreated, created.WorkOrderID, nil, created)
	return created, nil
}

// Update merges a partial input. The transition guard runs against the
// persisted status; ownership is rechecked only when a foreign key changes.
func (s *WorkOrderService) Update(ctx context.Context, caller *types.Claims, id uint, in workorder.UpdateWorkOrderInput) (*workorder.WorkOrder, error) {
	if _, err := RequireRole(caller, user.MutateRoles); err != nil {
		return nil, err
	}
	current, err := s.Repos.WorkOrder.GetWorkOrderByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "work order", id)
	}

	requested, err := in.RequestedStatus()
	if err != nil {
		return nil, err
	}
	if err := workorder.CheckTransition(current.Status, requested); err != nil {
		return nil, err
	}

	next := current
	if err := in.ApplyTo(&next); err != nil {
		return nil, err
	}
	if next.ClientID != current.ClientID || next.VehicleID != current.VehicleID {
		if err := CheckVehicleOwnership(ctx, s.Repos.Vehicle, next.ClientID, next.VehicleID); err != nil {
			return nil, err
		}
	}
	if in.AssignedUserID.HasValue() {
		if err := s.checkAssignee(ctx, next.AssignedUserID); err != nil {
			return nil, err
		}
	}

	if err := s.Repos.WorkOrder.UpdateWorkOrder(ctx, &next); err != nil {
		return nil, errcode.Wrap(err, "update work order %d", id)
	}
	updated := s.reload(ctx, &next)

	s.afterWrite(ctx, caller, events.WorkOrderUpdated, id, &current, updated)
	return updated, nil
}

func (s *WorkOrderService) Delete(ctx context.Context, caller *types.Claims, id uint) (bool, error) {
	if _, err := RequireRole(caller, user.MutateRoles); err != nil {
		return false, err
	}
	existing, err := s.Repos.WorkOrder.GetWorkOrderByID(ctx, id)
	if err != nil {
		return false, lookupErr(err, "work order", id)
	}
	if s.purger != nil {
		s.purger.PurgeWorkOrder(ctx, id)
	}
	if err := s.Repos.WorkOrder.DeleteWorkOrder(ctx, id); err != nil {
		return false, lookupErr(err, "work order", id)
	}

	s.afterWrite(ctx, caller, events.WorkOrderDeleted, id, &existing, nil)
	return true, nil
}

func (s *WorkOrderService) checkAssignee(ctx context.Context, userID *uint) error {
	if userID == nil {
		return nil
	}
	if _, err := s.Repos.User.GetUserByID(ctx, *userID); err != nil {
		return lookupErr(err, "user", *userID)
	}
	return nil
}

// reload fetches wo with its associations; it falls back to wo itself when
// the read fails after a successful write.
func (s *WorkOrderService) reload(ctx context.Context, wo *workorder.WorkOrder) *workorder.WorkOrder {
	fresh, err := s.Repos.WorkOrder.GetWorkOrderByID(ctx, wo.WorkOrderID)
	if err != nil {
		return wo
	}
	return &fresh
}

func (s *WorkOrderService) afterWrite(ctx context.Context, caller *types.Claims, typ events.Type, id uint, before, after *workorder.WorkOrder) {
	s.stats.Invalidate(ctx)
	s.events.Publish(ctx, events.New(typ, id, after, actorID(caller)))

	var oldData, newData any
	if before != nil {
		oldData = before
	}
	if after != nil {
		newData = after
	}
	utils.LogAuditAsync(ctx, s.Repos.Audit, actorID(caller), typ.Name(), "work_order",
		fmt.Sprintf("work_order_id=%d", id), oldData, newData, "")
}
