//go:build integration
// +build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/nextgencars/backend/internal/domain/client"
	"github.com/nextgencars/backend/internal/domain/query"
	"github.com/nextgencars/backend/internal/domain/vehicle"
	"github.com/nextgencars/backend/internal/domain/workorder"
	"github.com/nextgencars/backend/internal/repository"
	"github.com/nextgencars/backend/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	repos  *repository.Repos
	plates int
)

func TestMain(m *testing.M) {
	db, teardown := testutils.SetupPostgresForIntegration()
	repos = repository.NewRepositories(db)
	code := m.Run()
	teardown()
	os.Exit(code)
}

func strPtr(s string) *string { return &s }

func seedOrder(t *testing.T, ctx context.Context, title string, status workorder.Status) *workorder.WorkOrder {
	t.Helper()
	c := &client.Client{Type: client.TypeCompany, CompanyName: strPtr("Integration " + title)}
	require.NoError(t, repos.Client.CreateClient(ctx, c))

	plates++
	v := &vehicle.Vehicle{ClientID: c.ClientID, Make: "VW", Model: "Golf", LicensePlate: fmt.Sprintf("HH IT %d", plates)}
	require.NoError(t, repos.Vehicle.CreateVehicle(ctx, v))

	wo := &workorder.WorkOrder{
		Title:     title,
		Status:    status,
		Priority:  workorder.PriorityMedium,
		ClientID:  c.ClientID,
		VehicleID: v.VehicleID,
	}
	require.NoError(t, repos.WorkOrder.CreateWorkOrder(ctx, wo))
	return wo
}

func TestWorkOrderRepo_Integration(t *testing.T) {
	ctx := context.Background()

	t.Run("get preloads relations", func(t *testing.T) {
		wo := seedOrder(t, ctx, "preload", workorder.StatusOpen)

		got, err := repos.WorkOrder.GetWorkOrderByID(ctx, wo.WorkOrderID)
		require.NoError(t, err)
		require.NotNil(t, got.Vehicle)
		assert.Equal(t, wo.VehicleID, got.Vehicle.VehicleID)
		require.NotNil(t, got.Client)
		assert.Equal(t, wo.ClientID, got.Client.ClientID)
	})

	t.Run("missing id is ErrRecordNotFound", func(t *testing.T) {
		_, err := repos.WorkOrder.GetWorkOrderByID(ctx, 999999)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})

	t.Run("contains search is case insensitive and escapes wildcards", func(t *testing.T) {
		seedOrder(t, ctx, "Oil change 100%", workorder.StatusOpen)
		seedOrder(t, ctx, "Oil change 1000", workorder.StatusOpen)

		items, err := repos.WorkOrder.ListWorkOrders(ctx, query.ContainsFold{Field: workorder.FieldTitle, Value: "OIL CHANGE 100%"}, 0, 10)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Oil change 100%", items[0].Title)
	})

	t.Run("closed revenue respects bounds", func(t *testing.T) {
		end := time.Date(2031, 3, 15, 12, 0, 0, 0, time.UTC)
		wo := seedOrder(t, ctx, "revenue", workorder.StatusClosed)
		total := 250.0
		wo.TotalCost = &total
		wo.EndDate = &end
		require.NoError(t, repos.WorkOrder.UpdateWorkOrder(ctx, wo))

		from := time.Date(2031, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2031, 4, 1, 0, 0, 0, 0, time.UTC)
		sum, err := repos.WorkOrder.SumClosedRevenue(ctx, &from, &to)
		require.NoError(t, err)
		assert.InDelta(t, 250.0, sum, 0.001)

		later := time.Date(2031, 5, 1, 0, 0, 0, 0, time.UTC)
		sum, err = repos.WorkOrder.SumClosedRevenue(ctx, &later, nil)
		require.NoError(t, err)
		assert.Zero(t, sum)
	})

	t.Run("transaction rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		var id uint
		err := repos.ExecTx(func(tx *repository.Repos) error {
			c := &client.Client{Type: client.TypePersonal, FirstName: strPtr("Rollback")}
			if err := tx.Client.CreateClient(ctx, c); err != nil {
				return err
			}
			id = c.ClientID
			return boom
		})
		require.ErrorIs(t, err, boom)
		require.NotZero(t, id)

		_, err = repos.Client.GetClientByID(ctx, id)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})
}
