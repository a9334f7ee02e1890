package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"admin", "frontdesk", "mechanic"} {
		r, err := ParseRole(s)
		assert.NoError(t, err)
		assert.Equal(t, Role(s), r)
	}

	for _, s := range []string{"", "Admin", "MECHANIC", "owner", " admin"} {
		_, err := ParseRole(s)
		assert.ErrorIs(t, err, ErrUnknownRole, s)
	}
}

func TestRoleSets(t *testing.T) {
	assert.True(t, ReadRoles.Has(RoleMechanic))
	assert.True(t, MutateRoles.Has(RoleFrontdesk))
	assert.False(t, MutateRoles.Has(RoleMechanic))
	assert.False(t, AdminRoles.Has(RoleFrontdesk))
}
