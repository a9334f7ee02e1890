package application

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/nextgencars/backend/internal/domain/client"
	"github.com/nextgencars/backend/internal/domain/query"
	"github.com/nextgencars/backend/internal/domain/vehicle"
	"github.com/nextgencars/backend/pkg/errcode"
	"github.com/nextgencars/backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestClientService_List(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewClientService(repos, nil)

	m.Client.EXPECT().ListClients(gomock.Any(), nil, 0, 25).Return([]client.Client{{ClientID: 1}}, nil)
	m.Client.EXPECT().CountClients(gomock.Any(), nil).Return(int64(1), nil)

	page, err := svc.List(context.Background(), caller("mechanic"), "  ", nil, nil)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Total)

	_, err = svc.List(context.Background(), nil, "", nil, nil)
	assert.ErrorIs(t, err, errcode.ErrUnauthenticated)
}

func TestClientService_Get_IncludesVehicles(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewClientService(repos, nil)
	ctx := context.Background()

	m.Client.EXPECT().GetClientByID(ctx, uint(2)).Return(client.Client{ClientID: 2, Type: client.TypeCompany}, nil)
	m.Vehicle.EXPECT().ListVehicles(ctx, query.Eq{Field: "client_id", Value: uint(2)}, 0, -1).Return(nil, nil)

	got, err := svc.Get(ctx, caller("frontdesk"), 2)
	require.NoError(t, err)
	assert.Equal(t, uint(2), got.ClientID)
	assert.NotNil(t, got.Vehicles)
}

func TestClientService_Get_NotFound(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewClientService(repos, nil)

	m.Client.EXPECT().GetClientByID(gomock.Any(), uint(2)).Return(client.Client{}, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), caller("admin"), 2)
	assert.ErrorIs(t, err, errcode.ErrNotFound)
}

func TestClientService_Create(t *testing.T) {
	repos, m := setupRepoMocks(t)
	stats := &fakeStats{}
	audits := captureAudit(t)
	svc := NewClientService(repos, stats)
	ctx := context.Background()

	t.Run("company without name", func(t *testing.T) {
		_, err := svc.Create(ctx, caller("admin"), client.CreateClientInput{Type: "COMPANY"})
		assert.ErrorIs(t, err, errcode.ErrBadUserInput)
	})

	t.Run("mechanic", func(t *testing.T) {
		_, err := svc.Create(ctx, caller("mechanic"), client.CreateClientInput{Type: "PERSONAL", LastName: ptrString("Lee")})
		assert.ErrorIs(t, err, errcode.ErrForbidden)
	})

	t.Run("ok", func(t *testing.T) {
		m.Client.EXPECT().CreateClient(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *client.Client) error {
			c.ClientID = 7
			return nil
		})
		c, err := svc.Create(ctx, caller("frontdesk"), client.CreateClientInput{Type: "PERSONAL", LastName: ptrString("Lee")})
		require.NoError(t, err)
		assert.Equal(t, uint(7), c.ClientID)
		assert.Equal(t, 1, stats.invalidated)
		require.Len(t, *audits, 1)
		assert.Equal(t, "client_id=7", (*audits)[0].ResourceID)
	})
}

func TestClientService_Update(t *testing.T) {
	repos, m := setupRepoMocks(t)
	captureAudit(t)
	svc := NewClientService(repos, nil)
	ctx := context.Background()

	current := client.Client{ClientID: 2, Type: client.TypePersonal, FirstName: ptrString("Anna"), Email: ptrString("a@b.de")}
	m.Client.EXPECT().GetClientByID(ctx, uint(2)).Return(current, nil).Times(2)
	m.Client.EXPECT().UpdateClient(ctx, gomock.Any()).Return(nil)

	got, err := svc.Update(ctx, caller("admin"), 2, client.UpdateClientInput{Email: types.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, got.Email)
	assert.Equal(t, "Anna", *got.FirstName)

	// switching to COMPANY without a company name fails validation
	_, err = svc.Update(ctx, caller("admin"), 2, client.UpdateClientInput{Type: types.Some("COMPANY")})
	assert.ErrorIs(t, err, errcode.ErrBadUserInput)
}

func TestClientService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked by work orders", func(t *testing.T) {
		repos, m := setupRepoMocks(t)
		svc := NewClientService(repos, nil)
		m.Client.EXPECT().GetClientByID(ctx, uint(2)).Return(client.Client{ClientID: 2}, nil)
		m.WorkOrder.EXPECT().CountByClient(ctx, uint(2)).Return(int64(3), nil)

		ok, err := svc.Delete(ctx, caller("admin"), 2)
		assert.False(t, ok)
		assert.ErrorIs(t, err, errcode.ErrBadUserInput)
	})

	t.Run("ok", func(t *testing.T) {
		repos, m := setupRepoMocks(t)
		captureAudit(t)
		svc := NewClientService(repos, nil)
		m.Client.EXPECT().GetClientByID(ctx, uint(2)).Return(client.Client{ClientID: 2}, nil)
		m.WorkOrder.EXPECT().CountByClient(ctx, uint(2)).Return(int64(0), nil)
		m.Client.EXPECT().DeleteClient(ctx, uint(2)).Return(nil)

		ok, err := svc.Delete(ctx, caller("frontdesk"), 2)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestVehicleService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown client", func(t *testing.T) {
		repos, m := setupRepoMocks(t)
		svc := NewVehicleService(repos, nil)
		m.Client.EXPECT().GetClientByID(ctx, uint(9)).Return(client.Client{}, gorm.ErrRecordNotFound)

		_, err := svc.Create(ctx, caller("admin"), vehicle.CreateVehicleInput{ClientID: 9, Make: "VW", Model: "Golf", LicensePlate: "hh ab 1"})
		assert.ErrorIs(t, err, errcode.ErrNotFound)
	})

	t.Run("missing fields", func(t *testing.T) {
		repos, _ := setupRepoMocks(t)
		svc := NewVehicleService(repos, nil)

		_, err := svc.Create(ctx, caller("admin"), vehicle.CreateVehicleInput{ClientID: 9, Make: "VW"})
		assert.ErrorIs(t, err, errcode.ErrBadUserInput)
	})

	t.Run("ok", func(t *testing.T) {
		repos, m := setupRepoMocks(t)
		captureAudit(t)
		svc := NewVehicleService(repos, nil)
		m.Client.EXPECT().GetClientByID(ctx, uint(9)).Return(client.Client{ClientID: 9}, nil)
		m.Vehicle.EXPECT().CreateVehicle(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, v *vehicle.Vehicle) error {
			assert.Equal(t, "HH AB 1", v.LicensePlate)
			v.VehicleID = 4
			return nil
		})

		v, err := svc.Create(ctx, caller("frontdesk"), vehicle.CreateVehicleInput{ClientID: 9, Make: "VW", Model: "Golf", LicensePlate: " hh  ab 1 "})
		require.NoError(t, err)
		assert.Equal(t, uint(4), v.VehicleID)
	})
}

func TestVehicleService_Update_ClientChange(t *testing.T) {
	ctx := context.Background()
	current := vehicle.Vehicle{VehicleID: 4, ClientID: 1, Make: "VW", Model: "Golf", LicensePlate: "HH AB 1"}

	t.Run("blocked while referenced", func(t *testing.T) {
		repos, m := setupRepoMocks(t)
		svc := NewVehicleService(repos, nil)
		m.Vehicle.EXPECT().GetVehicleByID(ctx, uint(4)).Return(current, nil)
		m.Client.EXPECT().GetClientByID(ctx, uint(2)).Return(client.Client{ClientID: 2}, nil)
		m.WorkOrder.EXPECT().CountByVehicle(ctx, uint(4)).Return(int64(1), nil)

		_, err := svc.Update(ctx, caller("admin"), 4, vehicle.UpdateVehicleInput{ClientID: types.Some(uint(2))})
		assert.ErrorIs(t, err, errcode.ErrBadUserInput)
	})

	t.Run("km only", func(t *testing.T) {
		repos, m := setupRepoMocks(t)
		captureAudit(t)
		svc := NewVehicleService(repos, nil)
		m.Vehicle.EXPECT().GetVehicleByID(ctx, uint(4)).Return(current, nil)
		m.Vehicle.EXPECT().UpdateVehicle(ctx, gomock.Any()).Return(nil)

		v, err := svc.Update(ctx, caller("admin"), 4, vehicle.UpdateVehicleInput{Km: types.Some(120000)})
		require.NoError(t, err)
		require.NotNil(t, v.Km)
		assert.Equal(t, 120000, *v.Km)
	})
}

func TestVehicleService_Delete_BlockedByWorkOrders(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewVehicleService(repos, nil)
	ctx := context.Background()

	m.Vehicle.EXPECT().GetVehicleByID(ctx, uint(4)).Return(vehicle.Vehicle{VehicleID: 4}, nil)
	m.WorkOrder.EXPECT().CountByVehicle(ctx, uint(4)).Return(int64(2), nil)

	ok, err := svc.Delete(ctx, caller("admin"), 4)
	assert.False(t, ok)
	assert.ErrorIs(t, err, errcode.ErrBadUserInput)
}
