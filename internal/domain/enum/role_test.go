package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleSuperAdmin.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleUser.IsValid())

	assert.False(t, Role("").IsValid())
	assert.False(t, Role("owner").IsValid())
}

func TestRoleIn(t *testing.T) {
	assert.True(t, RoleAdmin.In(RoleSuperAdmin, RoleAdmin))
	assert.False(t, RoleUser.In(RoleSuperAdmin, RoleAdmin))
	assert.False(t, RoleUser.In())
}

func TestRolePermissions(t *testing.T) {
	assert.True(t, RoleSuperAdmin.CanManageUsers())
	assert.False(t, RoleAdmin.CanManageUsers())
	assert.False(t, RoleUser.CanManageUsers())

	assert.True(t, RoleSuperAdmin.CanMutate())
	assert.True(t, RoleAdmin.CanMutate())
	assert.False(t, RoleUser.CanMutate())
}
