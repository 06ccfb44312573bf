package policy

import (
	"hostel-be-svc/internal/apperrors"
)

// Role is the access level of an authenticated caller
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleTenant Role = "tenant"
)

// Actor is the authenticated caller of a workflow operation. It is built
// once per request from the verified token and passed explicitly into
// every service call, so access decisions are pure functions of
// (actor, operation) with no ambient state.
type Actor struct {
	UserID   uint
	TenantID uint
	Role     Role
}

// IsAdmin reports whether the actor holds the administrator role
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// RequireAdmin returns a PermissionError unless the actor is an administrator
func RequireAdmin(a Actor) error {
	if !a.IsAdmin() {
		return &apperrors.PermissionError{Message: "administrator privileges required"}
	}
	return nil
}

// RequireTenant returns a PermissionError unless the actor has a tenant profile
func RequireTenant(a Actor) error {
	if a.Role != RoleTenant || a.TenantID == 0 {
		return &apperrors.PermissionError{Message: "tenant profile required"}
	}
	return nil
}

// RequireOwner returns a PermissionError unless the actor is the tenant
// owning the record. Administrators do not pass this check: operations
// admins may perform on others' records declare RequireAdmin instead.
func RequireOwner(a Actor, tenantID uint) error {
	if err := RequireTenant(a); err != nil {
		return err
	}
	if a.TenantID != tenantID {
		return &apperrors.PermissionError{Message: "you do not own this record"}
	}
	return nil
}
