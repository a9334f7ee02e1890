package repository

import (
	"context"

	"github.com/nextgencars/backend/internal/domain/query"
	"github.com/nextgencars/backend/internal/domain/vehicle"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var vehicleFields = fieldMap{
	"client_id":     {expr: "vehicles.client_id"},
	"license_plate": {expr: "vehicles.license_plate"},
	"vin":           {expr: "vehicles.vin"},
	"make":          {expr: "vehicles.make"},
	"model":         {expr: "vehicles.model"},
}

type VehicleRepo interface {
	GetVehicleByID(ctx context.Context, id uint) (vehicle.Vehicle, error)
	ListVehicles(ctx context.Context, pred query.Node, skip, take int) ([]vehicle.Vehicle, error)
	CountVehicles(ctx context.Context, pred query.Node) (int64, error)
	CreateVehicle(ctx context.Context, v *vehicle.Vehicle) error
	UpdateVehicle(ctx context.Context, v *vehicle.Vehicle) error
	DeleteVehicle(ctx context.Context, id uint) error
	WithTx(tx *gorm.DB) VehicleRepo
}

type DBVehicleRepo struct {
	db *gorm.DB
}

func NewVehicleRepo(db *gorm.DB) *DBVehicleRepo {
	return &DBVehicleRepo{
		db: db,
	}
}

func (r *DBVehicleRepo) filtered(ctx context.Context, pred query.Node) (*gorm.DB, error) {
	q := r.db.WithContext(ctx).Model(&vehicle.Vehicle{})
	if pred == nil {
		return q, nil
	}
	cond, args, err := compilePredicate(pred, vehicleFields)
	if err != nil {
		return nil, err
	}
	return q.Where(cond, args...), nil
}

func (r *DBVehicleRepo) GetVehicleByID(ctx context.Context, id uint) (vehicle.Vehicle, error) {
	var v vehicle.Vehicle
	err := r.db.WithContext(ctx).First(&v, "vehicle_id = ?", id).Error
	return v, err
}

func (r *DBVehicleRepo) ListVehicles(ctx context.Context, pred query.Node, skip, take int) ([]vehicle.Vehicle, error) {
	q, err := r.filtered(ctx, pred)
	if err != nil {
		return nil, err
	}
	var items []vehicle.Vehicle
	err = q.Preload("Client").
		Order("vehicles.license_plate ASC").
		Offset(skip).
		Limit(take).
		Find(&items).Error
	return items, err
}

func (r *DBVehicleRepo) CountVehicles(ctx context.Context, pred query.Node) (int64, error) {
	q, err := r.filtered(ctx, pred)
	if err != nil {
		return 0, err
	}
	var n int64
	err = q.Count(&n).Error
	return n, err
}

func (r *DBVehicleRepo) CreateVehicle(ctx context.Context, v *vehicle.Vehicle) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error
}

func (r *DBVehicleRepo) UpdateVehicle(ctx context.Context, v *vehicle.Vehicle) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(v).Error
}

func (r *DBVehicleRepo) DeleteVehicle(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&vehicle.Vehicle{}, "vehicle_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBVehicleRepo) WithTx(tx *gorm.DB) VehicleRepo {
	if tx == nil {
		return r
	}
	return &DBVehicleRepo{
		db: tx,
	}
}
