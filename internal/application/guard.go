package application

import (
	"context"
	"errors"

	"github.com/nextgencars/backend/internal/domain/user"
	"github.com/nextgencars/backend/internal/repository"
	"github.com/nextgencars/backend/pkg/errcode"
	"github.com/nextgencars/backend/pkg/types"
	"gorm.io/gorm"
)

// RequireRole admits caller when its role claim is one of the known roles
// and belongs to allowed. It runs before anything else in every operation.
func RequireRole(caller *types.Claims, allowed user.RoleSet) (user.Role, error) {
	if caller == nil {
		return "", errcode.New(errcode.Unauthenticated, "authentication required")
	}
	role, err := user.ParseRole(caller.Role)
	if err != nil {
		return "", errcode.New(errcode.Forbidden, "unrecognized role %q", caller.Role)
	}
	if !allowed.Has(role) {
		return "", errcode.New(errcode.Forbidden, "role %s is not permitted to perform this operation", role)
	}
	return role, nil
}

// CheckVehicleOwnership fails with NOT_FOUND for an unknown vehicle and with
// BAD_USER_INPUT when the vehicle belongs to another client.
func CheckVehicleOwnership(ctx context.Context, vehicles repository.VehicleRepo, clientID, vehicleID uint) error {
	v, err := vehicles.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		return lookupErr(err, "vehicle", vehicleID)
	}
	if v.ClientID != clientID {
		return errcode.New(errcode.BadUserInput, "vehicle %d does not belong to client %d", vehicleID, clientID)
	}
	return nil
}

// lookupErr turns a repository miss into NOT_FOUND and anything else into
// INTERNAL.
func lookupErr(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errcode.New(errcode.NotFound, "%s %d not found", what, id)
	}
	return errcode.Wrap(err, "load %s %d", what, id)
}

func badInput(err error) error {
	return errcode.New(errcode.BadUserInput, "%s", err.Error())
}

func actorID(caller *types.Claims) uint {
	if caller == nil {
		return 0
	}
	return caller.UserID
}
