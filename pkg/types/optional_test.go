package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patch struct {
	Title Optional[string] `json:"title"`
	Km    Optional[int]    `json:"km_at_service"`
	Notes Optional[string] `json:"notes"`
}

func TestOptionalThreeStates(t *testing.T) {
	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Brakes","km_at_service":null}`), &p))

	assert.True(t, p.Title.HasValue())
	assert.Equal(t, "Brakes", p.Title.Value)

	assert.True(t, p.Km.Set)
	assert.True(t, p.Km.Null)

	assert.False(t, p.Notes.Set)
}

func TestOptionalApplyTo(t *testing.T) {
	km := 1200
	dst := &km

	Optional[int]{}.ApplyTo(&dst)
	require.NotNil(t, dst)
	assert.Equal(t, 1200, *dst)

	Some(90000).ApplyTo(&dst)
	require.NotNil(t, dst)
	assert.Equal(t, 90000, *dst)

	Null[int]().ApplyTo(&dst)
	assert.Nil(t, dst)
}

func TestOptionalRejectsWrongType(t *testing.T) {
	var p patch
	err := json.Unmarshal([]byte(`{"km_at_service":"lots"}`), &p)
	assert.Error(t, err)
}
