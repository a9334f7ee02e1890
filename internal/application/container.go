package application

import (
	"time"

	"github.com/nextgencars/backend/internal/events"
	"github.com/nextgencars/backend/internal/repository"
)

// Deps are the optional collaborators; nil members fall back to no-ops.
type Deps struct {
	Events     events.Publisher
	Stats      StatsCache
	Store      ObjectStore
	PresignTTL time.Duration
}

type Services struct {
	Audit      *AuditService
	Attachment *AttachmentService
	Client     *ClientService
	Dashboard  *DashboardService
	User       *UserService
	Vehicle    *VehicleService
	WorkOrder  *WorkOrderService
}

func New(repos *repository.Repos, deps Deps) *Services {
	attachments := NewAttachmentService(repos, deps.Store, deps.PresignTTL)
	workOrders := NewWorkOrderService(repos, deps.Events, deps.Stats)
	workOrders.purger = attachments

	return &Services{
		Audit:      NewAuditService(repos),
		Attachment: attachments,
		Client:     NewClientService(repos, deps.Stats),
		Dashboard:  NewDashboardService(repos, deps.Stats),
		User:       NewUserService(repos),
		Vehicle:    NewVehicleService(repos, deps.Stats),
		WorkOrder:  workOrders,
	}
}
