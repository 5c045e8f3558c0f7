package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/stellar/internal/console/domain"
	"github.com/aussiebroadwan/stellar/internal/console/store"
)

// Page names a top-level console view.
type Page string

const (
	PageDashboard Page = "dashboard"
	PageUsers     Page = "users"
	PageRoles     Page = "roles"
	PageAuditLog  Page = "audit-log"
)

// landingOrder is the order in which the console picks the first page a
// viewer may open.
var landingOrder = []struct {
	page Page
	perm domain.Permission
}{
	{PageDashboard, domain.PermViewDashboardStats},
	{PageUsers, domain.PermViewUsers},
	{PageRoles, domain.PermViewRoles},
	{PageAuditLog, domain.PermViewAuditLogs},
}

// Authorizer answers permission questions for a session's current user.
// Nothing is cached: the user's role and the role's permission set are
// read from the store on every call.
type Authorizer struct {
	Store store.Store
}

// Permissions returns the permission set of the role currently bound to
// userID. An empty userID or an unknown user has no permissions.
func (a *Authorizer) Permissions(ctx context.Context, userID string) ([]domain.Permission, error) {
	if userID == "" {
		return []domain.Permission{}, nil
	}

	u, err := a.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []domain.Permission{}, nil
		}
		return nil, err
	}

	role, err := a.Store.Roles().GetRoleByID(ctx, u.RoleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []domain.Permission{}, nil
		}
		return nil, err
	}
	return role.Permissions, nil
}

// HasPermission reports whether userID's current role grants p. With no
// current user every check is false.
func (a *Authorizer) HasPermission(ctx context.Context, userID string, p domain.Permission) (bool, error) {
	perms, err := a.Permissions(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, have := range perms {
		if have == p {
			return true, nil
		}
	}
	return false, nil
}

// LandingPage returns the first page userID may view, or the dashboard
// when none is permitted.
func (a *Authorizer) LandingPage(ctx context.Context, userID string) (Page, error) {
	perms, err := a.Permissions(ctx, userID)
	if err != nil {
		return "", err
	}
	return landingFor(perms), nil
}

func landingFor(perms []domain.Permission) Page {
	role := domain.Role{Permissions: perms}
	for _, l := range landingOrder {
		if role.Has(l.perm) {
			return l.page
		}
	}
	return PageDashboard
}
