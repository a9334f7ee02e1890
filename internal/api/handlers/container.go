package handlers

import (
	"github.com/nextgencars/backend/internal/application"
)

type Handlers struct {
	Attachment *AttachmentHandler
	Audit      *AuditHandler
	Client     *ClientHandler
	Dashboard  *DashboardHandler
	User       *UserHandler
	Vehicle    *VehicleHandler
	WorkOrder  *WorkOrderHandler
	WS         *WSHandler
}

func New(svc *application.Services, hub Subscriber) *Handlers {
	return &Handlers{
		Attachment: NewAttachmentHandler(svc.Attachment),
		Audit:      NewAuditHandler(svc.Audit),
		Client:     NewClientHandler(svc.Client),
		Dashboard:  NewDashboardHandler(svc.Dashboard),
		User:       NewUserHandler(svc.User),
		Vehicle:    NewVehicleHandler(svc.Vehicle),
		WorkOrder:  NewWorkOrderHandler(svc.WorkOrder),
		WS:         NewWSHandler(hub),
	}
}
