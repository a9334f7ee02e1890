package workorder

import (
	"testing"

	"github.com/nextgencars/backend/pkg/errcode"
	"github.com/stretchr/testify/assert"
)

func statusPtr(s Status) *Status { return &s }

func TestCheckTransition(t *testing.T) {
	tests := []struct {
		name      string
		current   Status
		requested *Status
		wantErr   bool
	}{
		{"closed to open", StatusClosed, statusPtr(StatusOpen), true},
		{"closed to in progress", StatusClosed, statusPtr(StatusInProgress), true},
		{"canceled to on hold", StatusCanceled, statusPtr(StatusOnHold), true},
		{"closed to canceled", StatusClosed, statusPtr(StatusCanceled), false},
		{"canceled to closed", StatusCanceled, statusPtr(StatusClosed), false},
		{"closed unchanged", StatusClosed, statusPtr(StatusClosed), false},
		{"closed without status", StatusClosed, nil, false},
		{"open to closed", StatusOpen, statusPtr(StatusClosed), false},
		{"on hold to open", StatusOnHold, statusPtr(StatusOpen), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTransition(tt.current, tt.requested)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, errcode.ErrBadUserInput)
			assert.Contains(t, err.Error(), string(tt.current))
			assert.Contains(t, err.Error(), string(*tt.requested))
		})
	}
}

func TestParseStatus(t *testing.T) {
	st, ok := ParseStatus("IN_PROGRESS")
	assert.True(t, ok)
	assert.Equal(t, StatusInProgress, st)

	_, ok = ParseStatus("open")
	assert.False(t, ok)
}
