package consolesdk

import (
	"context"
	"net/http"
)

// ListRoles returns every role in creation order.
// Requires: VIEW_ROLES
func (s *Session) ListRoles(ctx context.Context) ([]Role, error) {
	var out ListRolesResponse
	if err := s.call(ctx, http.MethodGet, "/v1/roles", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Roles, nil
}

// CreateRole registers a new role.
// Requires: MANAGE_ROLES
func (s *Session) CreateRole(ctx context.Context, req RoleRequest) (*Role, error) {
	var out Role
	if err := s.call(ctx, http.MethodPost, "/v1/roles", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRole renames and rescopes the role currently called name.
// Requires: MANAGE_ROLES
func (s *Session) UpdateRole(ctx context.Context, name string, req RoleRequest) (*Role, error) {
	var out Role
	if err := s.call(ctx, http.MethodPut, "/v1/roles/"+escape(name), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRole removes a role; its users fall back to the User role.
// Requires: MANAGE_ROLES
func (s *Session) DeleteRole(ctx context.Context, name string) error {
	return s.call(ctx, http.MethodDelete, "/v1/roles/"+escape(name), nil, nil, http.StatusNoContent)
}
