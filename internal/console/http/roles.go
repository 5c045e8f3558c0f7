package http

import (
	"net/http"

	"github.com/aussiebroadwan/stellar/internal/console/domain"
	"github.com/aussiebroadwan/stellar/internal/console/service"
	"github.com/aussiebroadwan/stellar/pkg/consolesdk"
	"github.com/aussiebroadwan/stellar/pkg/httpx"
	"github.com/aussiebroadwan/stellar/pkg/slogx"
)

// RolesHandler handles the role registry endpoints.
type RolesHandler struct {
	RolesService *service.RolesService
}

// HandleList handles GET /v1/roles
//
//	@Summary		List all roles
//	@Description	Returns every role with its permissions, in creation order. Requires VIEW_ROLES.
//	@Tags			Roles
//	@Produce		json
//	@Success		200	{object}	consolesdk.ListRolesResponse	"List of roles"
//	@Failure		401	{object}	consolesdk.ErrorResponse		"Unauthorized - missing or invalid token"
//	@Failure		403	{object}	consolesdk.ErrorResponse		"Forbidden - missing required permission"
//	@Failure		500	{object}	consolesdk.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/roles [get].
func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roles, err := h.RolesService.List(ctx)
	if err != nil {
		writeError(w, slogx.FromContext(ctx), err, "retrieve roles")
		return
	}

	response := consolesdk.ListRolesResponse{Roles: make([]consolesdk.Role, len(roles))}
	for i, role := range roles {
		response.Roles[i] = toRole(role)
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleCreate handles POST /v1/roles
//
//	@Summary		Create role
//	@Description	Registers a role. Names are unique and case-sensitive; the permission set may be empty. Requires MANAGE_ROLES.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		consolesdk.RoleRequest		true	"Role"
//	@Success		201		{object}	consolesdk.Role				"Created role"
//	@Failure		400		{object}	consolesdk.ErrorResponse	"Invalid name or unknown permission"
//	@Failure		401		{object}	consolesdk.ErrorResponse	"Unauthorized - missing or invalid token"
//	@Failure		403		{object}	consolesdk.ErrorResponse	"Forbidden - missing required permission"
//	@Failure		409		{object}	consolesdk.ErrorResponse	"A role with that name exists"
//	@Failure		500		{object}	consolesdk.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/roles [post].
func (h *RolesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, ok := decodeRole(w, r)
	if !ok {
		return
	}

	ident, _ := identityFromContext(ctx)
	role, err := h.RolesService.Create(ctx, ident.Ref(), in)
	if err != nil {
		writeError(w, slogx.FromContext(ctx), err, "create role")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toRole(role))
}

// HandleUpdate handles PUT /v1/roles/{name}
//
//	@Summary		Update role
//	@Description	Renames the role and replaces its permission set. Users bound to it see the new name. Requires MANAGE_ROLES.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Param			name	path		string						true	"Current role name"
//	@Param			request	body		consolesdk.RoleRequest		true	"New name and permissions"
//	@Success		200		{object}	consolesdk.Role				"Updated role"
//	@Failure		400		{object}	consolesdk.ErrorResponse	"Invalid name or unknown permission"
//	@Failure		401		{object}	consolesdk.ErrorResponse	"Unauthorized - missing or invalid token"
//	@Failure		403		{object}	consolesdk.ErrorResponse	"Forbidden - missing required permission"
//	@Failure		404		{object}	consolesdk.ErrorResponse	"No role with that name"
//	@Failure		409		{object}	consolesdk.ErrorResponse	"The new name is taken"
//	@Failure		500		{object}	consolesdk.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/roles/{name} [put].
func (h *RolesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, ok := decodeRole(w, r)
	if !ok {
		return
	}

	ident, _ := identityFromContext(ctx)
	role, err := h.RolesService.Update(ctx, ident.Ref(), r.PathValue("name"), in)
	if err != nil {
		writeError(w, slogx.FromContext(ctx), err, "update role")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRole(role))
}

// HandleDelete handles DELETE /v1/roles/{name}
//
//	@Summary		Delete role
//	@Description	Removes a role and moves its users to the User role. Admin, Manager and User cannot be deleted. Requires MANAGE_ROLES.
//	@Tags			Roles
//	@Param			name	path	string	true	"Role name"
//	@Success		204		"Role deleted"
//	@Failure		401		{object}	consolesdk.ErrorResponse	"Unauthorized - missing or invalid token"
//	@Failure		403		{object}	consolesdk.ErrorResponse	"Forbidden - missing required permission"
//	@Failure		404		{object}	consolesdk.ErrorResponse	"No role with that name"
//	@Failure		409		{object}	consolesdk.ErrorResponse	"Default roles are protected"
//	@Failure		500		{object}	consolesdk.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/roles/{name} [delete].
func (h *RolesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ident, _ := identityFromContext(ctx)
	if err := h.RolesService.Delete(ctx, ident.Ref(), r.PathValue("name")); err != nil {
		writeError(w, slogx.FromContext(ctx), err, "delete role")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandlePermissions handles GET /v1/permissions
//
//	@Summary		List permissions
//	@Description	Returns the fixed permission catalog in display order.
//	@Tags			Roles
//	@Produce		json
//	@Success		200	{object}	consolesdk.PermissionsResponse	"Permission catalog"
//	@Failure		401	{object}	consolesdk.ErrorResponse		"Unauthorized - missing or invalid token"
//	@Security		BearerAuth
//	@Router			/v1/permissions [get].
func (h *RolesHandler) HandlePermissions(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, consolesdk.PermissionsResponse{
		Permissions: permStrings(h.RolesService.ListPermissions()),
	})
}

func decodeRole(w http.ResponseWriter, r *http.Request) (domain.RoleInput, bool) {
	var req consolesdk.RoleRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return domain.RoleInput{}, false
	}

	in := domain.RoleInput{Name: req.Name, Permissions: make([]domain.Permission, len(req.Permissions))}
	for i, p := range req.Permissions {
		in.Permissions[i] = domain.Permission(p)
	}
	return in, true
}
