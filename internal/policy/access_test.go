package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hostel-be-svc/internal/apperrors"
)

func TestRequireAdmin(t *testing.T) {
	admin := Actor{UserID: 1, Role: RoleAdmin}
	tenant := Actor{UserID: 2, TenantID: 5, Role: RoleTenant}

	assert.NoError(t, RequireAdmin(admin))

	err := RequireAdmin(tenant)
	assert.Error(t, err)
	assert.True(t, apperrors.IsPermission(err))
}

func TestRequireTenant(t *testing.T) {
	tenant := Actor{UserID: 2, TenantID: 5, Role: RoleTenant}
	admin := Actor{UserID: 1, Role: RoleAdmin}
	noProfile := Actor{UserID: 3, Role: RoleTenant}

	assert.NoError(t, RequireTenant(tenant))
	assert.True(t, apperrors.IsPermission(RequireTenant(admin)))
	assert.True(t, apperrors.IsPermission(RequireTenant(noProfile)))
}

func TestRequireOwner(t *testing.T) {
	owner := Actor{UserID: 2, TenantID: 5, Role: RoleTenant}
	other := Actor{UserID: 3, TenantID: 6, Role: RoleTenant}

	assert.NoError(t, RequireOwner(owner, 5))
	assert.True(t, apperrors.IsPermission(RequireOwner(other, 5)))
}

func TestRequireOwner_AdminDoesNotPass(t *testing.T) {
	admin := Actor{UserID: 1, Role: RoleAdmin}

	err := RequireOwner(admin, 5)
	assert.Error(t, err)
	assert.True(t, apperrors.IsPermission(err))
}
