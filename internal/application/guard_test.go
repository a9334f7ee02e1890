package application

import (
	"context"
	"testing"

	"github.com/nextgencars/backend/internal/domain/user"
	"github.com/nextgencars/backend/internal/domain/vehicle"
	"github.com/nextgencars/backend/pkg/errcode"
	"github.com/nextgencars/backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		caller  *types.Claims
		allowed user.RoleSet
		want    errcode.Code
	}{
		{"anonymous", nil, user.ReadRoles, errcode.Unauthenticated},
		{"unknown role", caller("owner"), user.ReadRoles, errcode.Forbidden},
		{"wrong case", caller("Admin"), user.ReadRoles, errcode.Forbidden},
		{"empty role", caller(""), user.ReadRoles, errcode.Forbidden},
		{"mechanic reads", caller("mechanic"), user.ReadRoles, ""},
		{"mechanic mutates", caller("mechanic"), user.MutateRoles, errcode.Forbidden},
		{"frontdesk mutates", caller("frontdesk"), user.MutateRoles, ""},
		{"admin mutates", caller("admin"), user.MutateRoles, ""},
		{"frontdesk admin-only", caller("frontdesk"), user.AdminRoles, errcode.Forbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := RequireRole(tt.caller, tt.allowed)
			if tt.want == "" {
				assert.NoError(t, err)
				assert.Equal(t, user.Role(tt.caller.Role), role)
				return
			}
			assert.Equal(t, tt.want, errcode.CodeOf(err))
		})
	}
}

func TestCheckVehicleOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("match", func(t *testing.T) {
		_, m := setupRepoMocks(t)
		m.Vehicle.EXPECT().GetVehicleByID(ctx, uint(5)).Return(vehicle.Vehicle{VehicleID: 5, ClientID: 2}, nil)
		assert.NoError(t, CheckVehicleOwnership(ctx, m.Vehicle, 2, 5))
	})

	t.Run("mismatch", func(t *testing.T) {
		_, m := setupRepoMocks(t)
		m.Vehicle.EXPECT().GetVehicleByID(ctx, uint(5)).Return(vehicle.Vehicle{VehicleID: 5, ClientID: 3}, nil)
		err := CheckVehicleOwnership(ctx, m.Vehicle, 2, 5)
		assert.ErrorIs(t, err, errcode.ErrBadUserInput)
	})

	t.Run("missing vehicle", func(t *testing.T) {
		_, m := setupRepoMocks(t)
		m.Vehicle.EXPECT().GetVehicleByID(ctx, uint(5)).Return(vehicle.Vehicle{}, gorm.ErrRecordNotFound)
		err := CheckVehicleOwnership(ctx, m.Vehicle, 2, 5)
		assert.ErrorIs(t, err, errcode.ErrNotFound)
	})
}
