package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	WorkOrder  WorkOrderRepo
	Client     ClientRepo
	Vehicle    VehicleRepo
	User       UserRepo
	Audit      AuditRepo
	Attachment AttachmentRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		WorkOrder:  NewWorkOrderRepo(db),
		Client:     NewClientRepo(db),
		Vehicle:    NewVehicleRepo(db),
		User:       NewUserRepo(db),
		Audit:      NewAuditRepo(db),
		Attachment: NewAttachmentRepo(db),
		db:         db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		WorkOrder:  r.WorkOrder.WithTx(tx),
		Client:     r.Client.WithTx(tx),
		Vehicle:    r.Vehicle.WithTx(tx),
		User:       r.User.WithTx(tx),
		Audit:      r.Audit.WithTx(tx),
		Attachment: r.Attachment.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn against repositories bound to one transaction.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		// repos assembled from mocks have no connection
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
