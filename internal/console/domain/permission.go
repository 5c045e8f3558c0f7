package domain

import (
	"fmt"
	"slices"
)

// Permission is a capability token from the fixed catalog below.
type Permission string

const (
	PermViewUsers          Permission = "VIEW_USERS"
	PermCreateUsers        Permission = "CREATE_USERS"
	PermEditUsers          Permission = "EDIT_USERS"
	PermDeleteUsers        Permission = "DELETE_USERS"
	PermViewRoles          Permission = "VIEW_ROLES"
	PermManageRoles        Permission = "MANAGE_ROLES"
	PermViewDashboardStats Permission = "VIEW_DASHBOARD_STATS"
	PermViewAuditLogs      Permission = "VIEW_AUDIT_LOGS"
)

var catalog = []Permission{
	PermViewUsers,
	PermCreateUsers,
	PermEditUsers,
	PermDeleteUsers,
	PermViewRoles,
	PermManageRoles,
	PermViewDashboardStats,
	PermViewAuditLogs,
}

// Permissions returns a copy of the catalog in display order.
func Permissions() []Permission {
	return slices.Clone(catalog)
}

// Valid reports whether p belongs to the catalog.
func (p Permission) Valid() bool {
	return slices.Contains(catalog, p)
}

func (p Permission) String() string { return string(p) }

// NormalizePermissions collapses duplicates and orders the set the way the
// catalog does. Unknown tokens are rejected with ErrInvalidInput. A nil or
// empty input yields an empty, non-nil set.
func NormalizePermissions(in []Permission) ([]Permission, error) {
	seen := make(map[Permission]struct{}, len(in))
	for _, p := range in {
		if !p.Valid() {
			return nil, fmt.Errorf("%w: unknown permission %q", ErrInvalidInput, p)
		}
		seen[p] = struct{}{}
	}

	out := make([]Permission, 0, len(seen))
	for _, p := range catalog {
		if _, ok := seen[p]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// ParsePermissions converts raw tokens into permissions, normalizing them.
func ParsePermissions(raw []string) ([]Permission, error) {
	perms := make([]Permission, len(raw))
	for i, s := range raw {
		perms[i] = Permission(s)
	}
	return NormalizePermissions(perms)
}
