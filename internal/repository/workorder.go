package repository

import (
	"context"
	"time"

	"github.com/nextgencars/backend/internal/domain/query"
	"github.com/nextgencars/backend/internal/domain/workorder"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var workOrderFields = fieldMap{
	workorder.FieldStatus:            {expr: "work_orders.status"},
	workorder.FieldClientID:          {expr: "work_orders.client_id"},
	workorder.FieldVehicleID:         {expr: "work_orders.vehicle_id"},
	workorder.FieldAssignedUserID:    {expr: "work_orders.assigned_user_id"},
	workorder.FieldScheduledStart:    {expr: "work_orders.scheduled_start"},
	workorder.FieldStartDate:         {expr: "work_orders.start_date"},
	workorder.FieldEndDate:           {expr: "work_orders.end_date"},
	workorder.FieldTitle:             {expr: "work_orders.title"},
	workorder.FieldDescription:       {expr: "work_orders.description"},
	workorder.FieldVehiclePlate:      {expr: "vehicles.license_plate", via: viaVehicle},
	workorder.FieldClientFirstName:   {expr: "clients.first_name", via: viaClient},
	workorder.FieldClientLastName:    {expr: "clients.last_name", via: viaClient},
	workorder.FieldClientCompanyName: {expr: "clients.company_name", via: viaClient},
}

const (
	viaVehicle = "work_orders.vehicle_id IN (SELECT vehicles.vehicle_id FROM vehicles WHERE %s)"
	viaClient  = "work_orders.client_id IN (SELECT clients.client_id FROM clients WHERE %s)"
)

type WorkOrderRepo interface {
	GetWorkOrderByID(ctx context.Context, id uint) (workorder.WorkOrder, error)
	ListWorkOrders(ctx context.Context, pred query.Node, skip, take int) ([]workorder.WorkOrder, error)
	CountWorkOrders(ctx context.Context, pred query.Node) (int64, error)
	CreateWorkOrder(ctx context.Context, wo *workorder.WorkOrder) error
	UpdateWorkOrder(ctx context.Context, wo *workorder.WorkOrder) error
	DeleteWorkOrder(ctx context.Context, id uint) error
	SumClosedRevenue(ctx context.Context, from, to *time.Time) (float64, error)
	CountByStatus(ctx context.Context) (map[workorder.Status]int64, error)
	CountScheduledBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountByVehicle(ctx context.Context, vehicleID uint) (int64, error)
	CountByClient(ctx context.Context, clientID uint) (int64, error)
	WithTx(tx *gorm.DB) WorkOrderRepo
}

type DBWorkOrderRepo struct {
	db *gorm.DB
}

func NewWorkOrderRepo(db *gorm.DB) *DBWorkOrderRepo {
	return &DBWorkOrderRepo{
		db: db,
	}
}

func (r *DBWorkOrderRepo) filtered(ctx context.Context, pred query.Node) (*gorm.DB, error) {
	q := r.db.WithContext(ctx).Model(&workorder.WorkOrder{})
	if pred == nil {
		return q, nil
	}
	cond, args, err := compilePredicate(pred, workOrderFields)
	if err != nil {
		return nil, err
	}
	return q.Where(cond, args...), nil
}

func (r *DBWorkOrderRepo) GetWorkOrderByID(ctx context.Context, id uint) (workorder.WorkOrder, error) {
	var wo workorder.WorkOrder
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Vehicle").
		Preload("AssignedUser").
		First(&wo, "work_order_id = ?", id).Error
	return wo, err
}

func (r *DBWorkOrderRepo) ListWorkOrders(ctx context.Context, pred query.Node, skip, take int) ([]workorder.WorkOrder, error) {
	q, err := r.filtered(ctx, pred)
	if err != nil {
		return nil, err
	}
	var items []workorder.WorkOrder
	err = q.Preload("Client").
		Preload("Vehicle").
		Preload("AssignedUser").
		Order("work_orders.created_at DESC").
		Order("work_orders.work_order_id DESC").
		Offset(skip).
		Limit(take).
		Find(&items).Error
	return items, err
}

func (r *DBWorkOrderRepo) CountWorkOrders(ctx context.Context, pred query.Node) (int64, error) {
	q, err := r.filtered(ctx, pred)
	if err != nil {
		return 0, err
	}
	var total int64
	err = q.Count(&total).Error
	return total, err
}

func (r *DBWorkOrderRepo) CreateWorkOrder(ctx context.Context, wo *workorder.WorkOrder) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(wo).Error
}

// UpdateWorkOrder writes every column of wo, so merged nulls are persisted.
func (r *DBWorkOrderRepo) UpdateWorkOrder(ctx context.Context, wo *workorder.WorkOrder) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(wo).Error
}

func (r *DBWorkOrderRepo) DeleteWorkOrder(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&workorder.WorkOrder{}, "work_order_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SumClosedRevenue totals total_cost of CLOSED orders whose end_date lies in
// range; a nil bound is open.
func (r *DBWorkOrderRepo) SumClosedRevenue(ctx context.Context, from, to *time.Time) (float64, error) {
	q := r.db.WithContext(ctx).Model(&workorder.WorkOrder{}).
		Where("status = ?", string(workorder.StatusClosed))
	if from != nil {
		q = q.Where("end_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("end_date <= ?", *to)
	}
	var total float64
	err := q.Select("COALESCE(SUM(total_cost), 0)::float8").Scan(&total).Error
	return total, err
}

func (r *DBWorkOrderRepo) CountByStatus(ctx context.Context) (map[workorder.Status]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&workorder.WorkOrder{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[workorder.Status]int64, len(rows))
	for _, row := range rows {
		out[workorder.Status(row.Status)] = row.Count
	}
	return out, nil
}

func (r *DBWorkOrderRepo) CountScheduledBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&workorder.WorkOrder{}).
		Where("scheduled_start >= ? AND scheduled_start < ?", from, to).
		Count(&n).Error
	return n, err
}

func (r *DBWorkOrderRepo) CountByVehicle(ctx context.Context, vehicleID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&workorder.WorkOrder{}).
		Where("vehicle_id = ?", vehicleID).
		Count(&n).Error
	return n, err
}

func (r *DBWorkOrderRepo) CountByClient(ctx context.Context, clientID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&workorder.WorkOrder{}).
		Where("client_id = ?", clientID).
		Count(&n).Error
	return n, err
}

func (r *DBWorkOrderRepo) WithTx(tx *gorm.DB) WorkOrderRepo {
	if tx == nil {
		return r
	}
	return &DBWorkOrderRepo{
		db: tx,
	}
}
