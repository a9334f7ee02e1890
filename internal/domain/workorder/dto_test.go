package workorder

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/nextgencars/backend/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestBuildDefaults(t *testing.T) {
	wo, err := CreateWorkOrderInput{Title: " Oil change ", ClientID: 1, VehicleID: 2}.Build()
	require.NoError(t, err)
	assert.Equal(t, "Oil change", wo.Title)
	assert.Equal(t, StatusOpen, wo.Status)
	assert.Equal(t, PriorityMedium, wo.Priority)
}

func TestBuildRejectsBadEnums(t *testing.T) {
	_, err := CreateWorkOrderInput{Title: "x", Status: sp("DONE")}.Build()
	assert.ErrorIs(t, err, errcode.ErrBadUserInput)

	_, err = CreateWorkOrderInput{Title: "x", Priority: sp("critical")}.Build()
	assert.ErrorIs(t, err, errcode.ErrBadUserInput)

	_, err = CreateWorkOrderInput{Title: "   "}.Build()
	assert.ErrorIs(t, err, errcode.ErrBadUserInput)
}

func decodeUpdate(t *testing.T, body string) UpdateWorkOrderInput {
	t.Helper()
	var in UpdateWorkOrderInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func TestApplyToLeavesOmittedFields(t *testing.T) {
	desc := "front pads worn"
	km := 120000
	wo := &WorkOrder{Title: "Brakes", Description: &desc, KmAtService: &km, Status: StatusOpen, Priority: PriorityHigh, ClientID: 1, VehicleID: 2}

	in := decodeUpdate(t, `{"title":"Brakes + discs"}`)
	require.NoError(t, in.ApplyTo(wo))

	assert.Equal(t, "Brakes + discs", wo.Title)
	require.NotNil(t, wo.Description)
	assert.Equal(t, desc, *wo.Description)
	require.NotNil(t, wo.KmAtService)
	assert.Equal(t, km, *wo.KmAtService)
	assert.Equal(t, PriorityHigh, wo.Priority)
	assert.Equal(t, uint(1), wo.ClientID)
}

func TestApplyToExplicitNullClears(t *testing.T) {
	desc := "x"
	user := uint(5)
	wo := &WorkOrder{Title: "t", Description: &desc, AssignedUserID: &user, Tasks: datatypes.JSON(`[]`)}

	in := decodeUpdate(t, `{"description":null,"assigned_user_id":null,"tasks":null}`)
	require.NoError(t, in.ApplyTo(wo))

	assert.Nil(t, wo.Description)
	assert.Nil(t, wo.AssignedUserID)
	assert.Nil(t, wo.Tasks)
}

func TestApplyToValues(t *testing.T) {
	wo := &WorkOrder{Title: "t", Status: StatusOpen, Priority: PriorityMedium}
	in := decodeUpdate(t, `{
		"status":"IN_PROGRESS",
		"priority":"URGENT",
		"start_date":"2024-02-01T09:00:00Z",
		"total_cost":249.9,
		"tasks":[{"id":"1","label":"Drain oil","done":true}]
	}`)
	require.NoError(t, in.ApplyTo(wo))

	assert.Equal(t, StatusInProgress, wo.Status)
	assert.Equal(t, PriorityUrgent, wo.Priority)
	require.NotNil(t, wo.StartDate)
	assert.True(t, wo.StartDate.Equal(time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)))
	require.NotNil(t, wo.TotalCost)
	assert.InDelta(t, 249.9, *wo.TotalCost, 0.0001)
	assert.JSONEq(t, `[{"id":"1","label":"Drain oil","done":true}]`, string(wo.Tasks))
}

func TestApplyToRejectsNullRequiredFields(t *testing.T) {
	for _, body := range []string{
		`{"title":null}`,
		`{"title":"  "}`,
		`{"status":null}`,
		`{"status":"REOPENED"}`,
		`{"priority":null}`,
		`{"client_id":null}`,
		`{"vehicle_id":null}`,
	} {
		wo := &WorkOrder{Title: "t", Status: StatusOpen, Priority: PriorityLow}
		err := decodeUpdate(t, body).ApplyTo(wo)
		assert.ErrorIs(t, err, errcode.ErrBadUserInput, body)
	}
}

func TestRequestedStatus(t *testing.T) {
	st, err := decodeUpdate(t, `{}`).RequestedStatus()
	require.NoError(t, err)
	assert.Nil(t, st)

	st, err = decodeUpdate(t, `{"status":"CANCELED"}`).RequestedStatus()
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, StatusCanceled, *st)
}
