package http

import (
	"net/http"

	"github.com/aussiebroadwan/stellar/internal/console/domain"
	"github.com/aussiebroadwan/stellar/internal/console/service"
	"github.com/aussiebroadwan/stellar/pkg/consolesdk"
	"github.com/aussiebroadwan/stellar/pkg/httpx"
	"github.com/aussiebroadwan/stellar/pkg/slogx"
)

// UsersHandler handles the user directory endpoints.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleList handles GET /v1/users
//
//	@Summary		List users
//	@Description	Returns every user in the directory. Requires VIEW_USERS.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	consolesdk.ListUsersResponse	"List of users"
//	@Failure		401	{object}	consolesdk.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	consolesdk.ErrorResponse		"error, error_description"
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.UserService.List(ctx)
	if err != nil {
		writeError(w, slogx.FromContext(ctx), err, "list users")
		return
	}

	response := consolesdk.ListUsersResponse{Users: make([]consolesdk.User, len(users))}
	for i, u := range users {
		response.Users[i] = toUser(u)
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleCreate handles POST /v1/users
//
//	@Summary		Create user
//	@Description	Adds a user. Role defaults to User and status to Active. Requires CREATE_USERS.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		consolesdk.CreateUserRequest	true	"New user"
//	@Success		201		{object}	consolesdk.User					"Created user"
//	@Failure		400		{object}	consolesdk.ErrorResponse		"error, error_description, details"
//	@Failure		401		{object}	consolesdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	consolesdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	consolesdk.ErrorResponse		"role_not_found"
//	@Failure		500		{object}	consolesdk.ErrorResponse		"error, error_description"
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req consolesdk.CreateUserRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	ident, _ := identityFromContext(ctx)
	u, err := h.UserService.Create(ctx, ident.Ref(), domain.UserDraft{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Status: domain.UserStatus(req.Status),
	})
	if err != nil {
		writeError(w, log, err, "create user")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUser(u))
}

// HandleUpdate handles PATCH /v1/users/{id}
//
//	@Summary		Update user
//	@Description	Applies a partial update; absent fields are unchanged. Requires EDIT_USERS.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"User ID"
//	@Param			request	body		consolesdk.UpdateUserRequest	true	"Fields to change"
//	@Success		200		{object}	consolesdk.User					"Updated user"
//	@Failure		400		{object}	consolesdk.ErrorResponse		"error, error_description, details"
//	@Failure		401		{object}	consolesdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	consolesdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	consolesdk.ErrorResponse		"user_not_found, role_not_found"
//	@Failure		500		{object}	consolesdk.ErrorResponse		"error, error_description"
//	@Router			/v1/users/{id} [patch].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	id := r.PathValue("id")

	var req consolesdk.UpdateUserRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	patch := domain.UserPatch{Name: req.Name, Email: req.Email, Role: req.Role}
	if req.Status != nil {
		s := domain.UserStatus(*req.Status)
		patch.Status = &s
	}

	ident, _ := identityFromContext(ctx)
	u, err := h.UserService.Update(ctx, ident.Ref(), id, patch)
	if err != nil {
		writeError(w, log, err, "update user")
		return
	}
	if u == nil {
		writeUserNotFound(w, id)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(*u))
}

// HandleDelete handles DELETE /v1/users/{id}
//
//	@Summary		Delete user
//	@Description	Removes a user from the directory. Requires DELETE_USERS.
//	@Tags			Users
//	@Security		BearerAuth
//	@Param			id	path	string	true	"User ID"
//	@Success		204	"User deleted"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	consolesdk.ErrorResponse	"user_not_found"
//	@Failure		500	{object}	consolesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	id := r.PathValue("id")

	ident, _ := identityFromContext(ctx)
	ok, err := h.UserService.Delete(ctx, ident.Ref(), id)
	if err != nil {
		writeError(w, log, err, "delete user")
		return
	}
	if !ok {
		writeUserNotFound(w, id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
