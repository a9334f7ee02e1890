// Package events fans work-order changes out to live subscribers.
package events

import (
	"context"
	"strings"
	"time"

	"github.com/nextgencars/backend/internal/domain/workorder"
)

type Type string

const (
	WorkOrderCreated Type = "work_order.created"
	WorkOrderUpdated Type = "work_order.updated"
	WorkOrderDeleted Type = "work_order.deleted"
)

// Name is the part after the dot, used in topic names.
func (t Type) Name() string {
	if i := strings.LastIndexByte(string(t), '.'); i >= 0 {
		return string(t)[i+1:]
	}
	return string(t)
}

type Event struct {
	Type        Type                 `json:"type"`
	WorkOrderID uint                 `json:"work_order_id"`
	WorkOrder   *workorder.WorkOrder `json:"work_order,omitempty"`
	ActorID     uint                 `json:"actor_id,omitempty"`
	At          time.Time            `json:"at"`
}

func New(t Type, id uint, wo *workorder.WorkOrder, actorID uint) Event {
	return Event{
		Type:        t,
		WorkOrderID: id,
		WorkOrder:   wo,
		ActorID:     actorID,
		At:          time.Now().UTC(),
	}
}

// Publisher delivers an event. Implementations never block the caller for
// long and report failures through the log only.
type Publisher interface {
	Publish(ctx context.Context, e Event)
}

// Multi publishes to every member in order.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, e Event) {
	for _, p := range m {
		if p != nil {
			p.Publish(ctx, e)
		}
	}
}

type Nop struct{}

func (Nop) Publish(context.Context, Event) {}
