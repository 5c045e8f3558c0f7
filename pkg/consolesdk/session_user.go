package consolesdk

import (
	"context"
	"net/http"
)

// ListUsers returns the directory in insertion order.
// Requires: VIEW_USERS
func (s *Session) ListUsers(ctx context.Context) ([]User, error) {
	var out ListUsersResponse
	if err := s.call(ctx, http.MethodGet, "/v1/users", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// CreateUser adds a user to the directory.
// Requires: CREATE_USERS
func (s *Session) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	var out User
	if err := s.call(ctx, http.MethodPost, "/v1/users", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser applies a partial update. A missing user is a 404 APIError.
// Requires: EDIT_USERS
func (s *Session) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	var out User
	if err := s.call(ctx, http.MethodPatch, "/v1/users/"+escape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes a user. A missing user is a 404 APIError.
// Requires: DELETE_USERS
func (s *Session) DeleteUser(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, "/v1/users/"+escape(id), nil, nil, http.StatusNoContent)
}
