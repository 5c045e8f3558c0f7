package domain

import (
	"slices"
	"time"
)

// Well-known identities of the default roles. Users fall back to
// FallbackRoleID when their role is deleted.
const (
	AdminRoleID   = "admin"
	ManagerRoleID = "manager"
	UserRoleID    = "user"

	AdminRoleName   = "Admin"
	ManagerRoleName = "Manager"
	UserRoleName    = "User"

	FallbackRoleID = UserRoleID
)

// Role is a named permission set. ID is stable across renames; Name is the
// unique display name callers address the role by.
type Role struct {
	ID          string
	Name        string
	Permissions []Permission // Normalized, catalog order
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Has reports whether the role grants p.
func (r Role) Has(p Permission) bool {
	return slices.Contains(r.Permissions, p)
}

// IsDefault reports whether the role is one of Admin, Manager or User, either
// by identity or by display name.
func (r Role) IsDefault() bool {
	switch r.ID {
	case AdminRoleID, ManagerRoleID, UserRoleID:
		return true
	}
	return IsDefaultRoleName(r.Name)
}

// IsDefaultRoleName reports whether name is one of the default role names.
func IsDefaultRoleName(name string) bool {
	switch name {
	case AdminRoleName, ManagerRoleName, UserRoleName:
		return true
	}
	return false
}

// RoleInput is the caller-supplied shape of a role on create and update.
type RoleInput struct {
	Name        string       `validate:"required,max=64"`
	Permissions []Permission `validate:"dive,required"`
}
