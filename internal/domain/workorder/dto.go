package workorder

import (
	"strings"
	"time"

	"github.com/nextgencars/backend/pkg/errcode"
	"github.com/nextgencars/backend/pkg/types"
	"gorm.io/datatypes"
)

type CreateWorkOrderInput struct {
	Title          string         `json:"title" binding:"required" example:"Brake service"`
	Description    *string        `json:"description,omitempty"`
	Status         *string        `json:"status,omitempty" example:"OPEN"`
	Priority       *string        `json:"priority,omitempty" example:"MEDIUM"`
	ScheduledStart *time.Time     `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time     `json:"scheduled_end,omitempty"`
	StartDate      *time.Time     `json:"start_date,omitempty"`
	EndDate        *time.Time     `json:"end_date,omitempty"`
	KmAtService    *int           `json:"km_at_service,omitempty" binding:"omitempty,min=0"`
	EstimatedCost  *float64       `json:"estimated_cost,omitempty"`
	TotalCost      *float64       `json:"total_cost,omitempty"`
	Tasks          datatypes.JSON `json:"tasks,omitempty" swaggertype:"array,object"`
	ClientID       uint           `json:"client_id" binding:"required" example:"1"`
	VehicleID      uint           `json:"vehicle_id" binding:"required" example:"1"`
	AssignedUserID *uint          `json:"assigned_user_id,omitempty"`
}

// Build turns the input into a new order, defaulting status to OPEN and
// priority to MEDIUM.
func (in CreateWorkOrderInput) Build() (*WorkOrder, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, errcode.New(errcode.BadUserInput, "title is required")
	}
	wo := &WorkOrder{
		Title:          title,
		Description:    in.Description,
		Status:         StatusOpen,
		Priority:       PriorityMedium,
		ScheduledStart: in.ScheduledStart,
		ScheduledEnd:   in.ScheduledEnd,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		KmAtService:    in.KmAtService,
		EstimatedCost:  in.EstimatedCost,
		TotalCost:      in.TotalCost,
		Tasks:          in.Tasks,
		ClientID:       in.ClientID,
		VehicleID:      in.VehicleID,
		AssignedUserID: in.AssignedUserID,
	}
	if in.Status != nil {
		st, ok := ParseStatus(*in.Status)
		if !ok {
			return nil, errcode.New(errcode.BadUserInput, "unknown status %q", *in.Status)
		}
		wo.Status = st
	}
	if in.Priority != nil {
		p, ok := ParsePriority(*in.Priority)
		if !ok {
			return nil, errcode.New(errcode.BadUserInput, "unknown priority %q", *in.Priority)
		}
		wo.Priority = p
	}
	return wo, nil
}

// UpdateWorkOrderInput is a partial update: omitted fields are left as
// persisted, null clears nullable columns.
type UpdateWorkOrderInput struct {
	Title          types.Optional[string]         `json:"title" swaggertype:"string"`
	Description    types.Optional[string]         `json:"description" swaggertype:"string"`
	Status         types.Optional[string]         `json:"status" swaggertype:"string"`
	Priority       types.Optional[string]         `json:"priority" swaggertype:"string"`
	ScheduledStart types.Optional[time.Time]      `json:"scheduled_start" swaggertype:"string"`
	ScheduledEnd   types.Optional[time.Time]      `json:"scheduled_end" swaggertype:"string"`
	StartDate      types.Optional[time.Time]      `json:"start_date" swaggertype:"string"`
	EndDate        types.Optional[time.Time]      `json:"end_date" swaggertype:"string"`
	KmAtService    types.Optional[int]            `json:"km_at_service" swaggertype:"integer"`
	EstimatedCost  types.Optional[float64]        `json:"estimated_cost" swaggertype:"number"`
	TotalCost      types.Optional[float64]        `json:"total_cost" swaggertype:"number"`
	Tasks          types.Optional[datatypes.JSON] `json:"tasks" swaggertype:"array,object"`
	ClientID       types.Optional[uint]           `json:"client_id" swaggertype:"integer"`
	VehicleID      types.Optional[uint]           `json:"vehicle_id" swaggertype:"integer"`
	AssignedUserID types.Optional[uint]           `json:"assigned_user_id" swaggertype:"integer"`
}

// RequestedStatus parses the status change, nil when none was asked for.
func (in UpdateWorkOrderInput) RequestedStatus() (*Status, error) {
	if !in.Status.Set {
		return nil, nil
	}
	if in.Status.Null {
		return nil, errcode.New(errcode.BadUserInput, "status cannot be null")
	}
	st, ok := ParseStatus(in.Status.Value)
	if !ok {
		return nil, errcode.New(errcode.BadUserInput, "unknown status %q", in.Status.Value)
	}
	return &st, nil
}

// ApplyTo merges the input into wo. Status is applied as given; callers run
// CheckTransition against the persisted status first.
func (in UpdateWorkOrderInput) ApplyTo(wo *WorkOrder) error {
	if in.Title.Set {
		title := strings.TrimSpace(in.Title.Value)
		if in.Title.Null || title == "" {
			return errcode.New(errcode.BadUserInput, "title cannot be empty")
		}
		wo.Title = title
	}
	st, err := in.RequestedStatus()
	if err != nil {
		return err
	}
	if st != nil {
		wo.Status = *st
	}
	if in.Priority.Set {
		p, ok := ParsePriority(in.Priority.Value)
		if in.Priority.Null || !ok {
			return errcode.New(errcode.BadUserInput, "unknown priority %q", in.Priority.Value)
		}
		wo.Priority = p
	}
	if in.ClientID.Set {
		if in.ClientID.Null {
			return errcode.New(errcode.BadUserInput, "client_id cannot be null")
		}
		wo.ClientID = in.ClientID.Value
	}
	if in.VehicleID.Set {
		if in.VehicleID.Null {
			return errcode.New(errcode.BadUserInput, "vehicle_id cannot be null")
		}
		wo.VehicleID = in.VehicleID.Value
	}

	in.Description.ApplyTo(&wo.Description)
	in.ScheduledStart.ApplyTo(&wo.ScheduledStart)
	in.ScheduledEnd.ApplyTo(&wo.ScheduledEnd)
	in.StartDate.ApplyTo(&wo.StartDate)
	in.EndDate.ApplyTo(&wo.EndDate)
	in.KmAtService.ApplyTo(&wo.KmAtService)
	in.EstimatedCost.ApplyTo(&wo.EstimatedCost)
	in.TotalCost.ApplyTo(&wo.TotalCost)
	in.AssignedUserID.ApplyTo(&wo.AssignedUserID)
	if in.Tasks.Set {
		wo.Tasks = in.Tasks.Value
		if in.Tasks.Null {
			wo.Tasks = nil
		}
	}
	return nil
}

// Page is one slice of a listing plus the unpaginated total.
type Page struct {
	Items []WorkOrder `json:"items"`
	Total int64       `json:"total"`
}

// ListRequest is the body of a search call.
type ListRequest struct {
	Filter *Filter `json:"filter"`
	Skip   *int    `json:"skip"`
	Take   *int    `json:"take"`
}

type RevenueResponse struct {
	Revenue float64 `json:"revenue"`
}
