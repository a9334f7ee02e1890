package workorder

import (
	"time"

	"github.com/nextgencars/backend/internal/domain/client"
	"github.com/nextgencars/backend/internal/domain/user"
	"github.com/nextgencars/backend/internal/domain/vehicle"
	"gorm.io/datatypes"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return Priority(s), true
	}
	return "", false
}

// WorkOrder is a billable unit of service work on one client's vehicle.
// Vehicle.ClientID must equal ClientID.
type WorkOrder struct {
	WorkOrderID    uint       `gorm:"primaryKey;column:work_order_id;autoIncrement" json:"work_order_id"`
	Title          string     `gorm:"size:200;not null" json:"title"`
	Description    *string    `gorm:"type:text" json:"description"`
	Status         Status     `gorm:"type:work_order_status;not null;default:'OPEN';index" json:"status"`
	Priority       Priority   `gorm:"type:work_order_priority;not null;default:'MEDIUM'" json:"priority"`
	ScheduledStart *time.Time `gorm:"index" json:"scheduled_start"`
	ScheduledEnd   *time.Time `json:"scheduled_end"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `gorm:"index" json:"end_date"`
	KmAtService    *int       `json:"km_at_service"`
	EstimatedCost  *float64   `gorm:"type:numeric(12,2)" json:"estimated_cost"`
	TotalCost      *float64   `gorm:"type:numeric(12,2)" json:"total_cost"`
	// Tasks is the checklist payload, stored as sent.
	Tasks datatypes.JSON `gorm:"type:jsonb" json:"tasks" swaggertype:"array,object"`

	ClientID       uint  `gorm:"not null;index" json:"client_id"`
	VehicleID      uint  `gorm:"not null;index" json:"vehicle_id"`
	AssignedUserID *uint `gorm:"index" json:"assigned_user_id"`

	Client       *client.Client   `gorm:"foreignKey:ClientID;references:ClientID;constraint:OnDelete:RESTRICT" json:"client,omitempty"`
	Vehicle      *vehicle.Vehicle `gorm:"foreignKey:VehicleID;references:VehicleID;constraint:OnDelete:RESTRICT" json:"vehicle,omitempty"`
	AssignedUser *user.User       `gorm:"foreignKey:AssignedUserID;references:UserID;constraint:OnDelete:SET NULL" json:"assigned_user,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WorkOrder) TableName() string {
	return "work_orders"
}

// Task documents the checklist entries clients store in Tasks. The server
// never validates the payload against it.
type Task struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Done  bool    `json:"done"`
	Notes *string `json:"notes,omitempty"`
}
