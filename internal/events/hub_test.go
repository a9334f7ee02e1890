package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_FanOut(t *testing.T) {
	h := NewHub()
	a, cancelA := h.Subscribe()
	b, cancelB := h.Subscribe()
	defer cancelA()
	defer cancelB()

	h.Publish(context.Background(), New(WorkOrderCreated, 7, nil, 1))

	got := <-a
	assert.Equal(t, WorkOrderCreated, got.Type)
	assert.Equal(t, uint(7), got.WorkOrderID)
	assert.Equal(t, uint(7), (<-b).WorkOrderID)
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	require.Equal(t, 1, h.Subscribers())

	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)
	assert.Equal(t, 0, h.Subscribers())
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub()
	_, cancel := h.Subscribe()
	defer cancel()

	for i := 0; i < subscriberBuffer*2; i++ {
		h.Publish(context.Background(), New(WorkOrderUpdated, uint(i), nil, 0))
	}
}

func TestHub_Close(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	h.Close()

	_, ok := <-ch
	assert.False(t, ok)
	cancel()

	late, _ := h.Subscribe()
	_, ok = <-late
	assert.False(t, ok)
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "created", WorkOrderCreated.Name())
	assert.Equal(t, "deleted", WorkOrderDeleted.Name())
}
