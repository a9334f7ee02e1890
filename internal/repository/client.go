package repository

import (
	"context"

	"github.com/nextgencars/backend/internal/domain/client"
	"github.com/nextgencars/backend/internal/domain/query"
	"gorm.io/gorm"
)

var clientFields = fieldMap{
	"first_name":   {expr: "clients.first_name"},
	"last_name":    {expr: "clients.last_name"},
	"company_name": {expr: "clients.company_name"},
	"email":        {expr: "clients.email"},
	"phone":        {expr: "clients.phone"},
}

type ClientRepo interface {
	GetClientByID(ctx context.Context, id uint) (client.Client, error)
	ListClients(ctx context.Context, pred query.Node, skip, take int) ([]client.Client, error)
	CountClients(ctx context.Context, pred query.Node) (int64, error)
	CreateClient(ctx context.Context, c *client.Client) error
	UpdateClient(ctx context.Context, c *client.Client) error
	DeleteClient(ctx context.Context, id uint) error
	WithTx(tx *gorm.DB) ClientRepo
}

type DBClientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) *DBClientRepo {
	return &DBClientRepo{
		db: db,
	}
}

func (r *DBClientRepo) filtered(ctx context.Context, pred query.Node) (*gorm.DB, error) {
	q := r.db.WithContext(ctx).Model(&client.Client{})
	if pred == nil {
		return q, nil
	}
	cond, args, err := compilePredicate(pred, clientFields)
	if err != nil {
		return nil, err
	}
	return q.Where(cond, args...), nil
}

func (r *DBClientRepo) GetClientByID(ctx context.Context, id uint) (client.Client, error) {
	var c client.Client
	err := r.db.WithContext(ctx).First(&c, "client_id = ?", id).Error
	return c, err
}

func (r *DBClientRepo) ListClients(ctx context.Context, pred query.Node, skip, take int) ([]client.Client, error) {
	q, err := r.filtered(ctx, pred)
	if err != nil {
		return nil, err
	}
	var items []client.Client
	err = q.Order("COALESCE(clients.company_name, clients.last_name) ASC").
		Order("clients.client_id ASC").
		Offset(skip).
		Limit(take).
		Find(&items).Error
	return items, err
}

func (r *DBClientRepo) CountClients(ctx context.Context, pred query.Node) (int64, error) {
	q, err := r.filtered(ctx, pred)
	if err != nil {
		return 0, err
	}
	var n int64
	err = q.Count(&n).Error
	return n, err
}

func (r *DBClientRepo) CreateClient(ctx context.Context, c *client.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *DBClientRepo) UpdateClient(ctx context.Context, c *client.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *DBClientRepo) DeleteClient(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&client.Client{}, "client_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBClientRepo) WithTx(tx *gorm.DB) ClientRepo {
	if tx == nil {
		return r
	}
	return &DBClientRepo{
		db: tx,
	}
}
