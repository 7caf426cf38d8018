package http

import (
	"net/http"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/domain"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/service"
	"github.com/aussiebroadwan/orgrole/pkg/authsdk"
	"github.com/aussiebroadwan/orgrole/pkg/httpx"
)

const maxRoleSetBytes = 64 << 10

type RolesHandler struct {
	RolesService *service.RolesService
}

// ServeHTTP handles the list roles endpoint
//
//	@Summary		List available roles
//	@Description	Returns the organization's provider-supplied roles when a valid set has been synchronized,
//	@Description	otherwise the built-in catalog. Only the caller's active organization may be queried.
//	@Tags			Roles
//	@Produce		json
//	@Param			org	query		string						false	"Organization id"
//	@Success		200	{object}	authsdk.ListRolesResponse	"Available roles"
//	@Failure		401	{object}	authsdk.ErrorResponse		"Unauthorized - missing or invalid token"
//	@Failure		403	{object}	authsdk.ErrorResponse		"Forbidden - another organization"
//	@Failure		503	{object}	authsdk.ErrorResponse		"Profile store unavailable"
//	@Security		BearerAuth
//	@Router			/v1/roles [get].
func (h *RolesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	orgID := caller.OrgID
	if q := r.URL.Query().Get("org"); q != "" && q != orgID {
		authsdk.ErrForbidden.WithDescription("roles of another organization are not visible").WriteError(w)
		return
	}

	roles, source, err := h.RolesService.AvailableRoles(ctx, orgID)
	if err != nil {
		writeServiceError(ctx, w, "failed to list roles", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.ListRolesResponse{
		OrgID:  orgID,
		Source: string(source),
		Roles:  toRoleInfos(roles),
	})
}

type SyncRolesHandler struct {
	RolesService *service.RolesService
}

// ServeHTTP handles the provider role sync endpoint
//
//	@Summary		Replace an organization's provider roles
//	@Description	Atomically replaces the custom roles supplied by the role provider for an organization.
//	@Description	An empty list clears them so the catalog applies again. Requires the org:admin token role in the same organization.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Param			org		path		string						true	"Organization id"
//	@Param			request	body		authsdk.SyncRolesRequest	true	"Role set"
//	@Success		200		{object}	authsdk.ListRolesResponse	"Roles now in effect"
//	@Failure		400		{object}	authsdk.ErrorResponse		"Malformed request"
//	@Failure		401		{object}	authsdk.ErrorResponse		"Unauthorized - missing or invalid token"
//	@Failure		403		{object}	authsdk.ErrorResponse		"Forbidden - not an administrator of this organization"
//	@Failure		422		{object}	authsdk.ErrorResponse		"Invalid role set"
//	@Failure		503		{object}	authsdk.ErrorResponse		"Profile store unavailable"
//	@Security		BearerAuth
//	@Router			/v1/orgs/{org}/roles [put].
func (h *SyncRolesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	orgID := r.PathValue("org")
	if orgID != caller.OrgID {
		authsdk.ErrForbidden.WithDescription("roles can only be changed in the caller's active organization").WriteError(w)
		return
	}

	var req authsdk.SyncRolesRequest
	if err := httpx.DecodeJSON(w, r, maxRoleSetBytes, &req); err != nil {
		authsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	roles := make([]domain.RoleDefinition, len(req.Roles))
	for i, ri := range req.Roles {
		roles[i] = domain.RoleDefinition{Key: ri.Key, Name: ri.Name, Description: ri.Description}
	}

	if err := h.RolesService.SyncProviderRoles(ctx, orgID, roles); err != nil {
		writeServiceError(ctx, w, "failed to sync provider roles", err)
		return
	}

	available, source, err := h.RolesService.AvailableRoles(ctx, orgID)
	if err != nil {
		writeServiceError(ctx, w, "failed to list roles", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.ListRolesResponse{
		OrgID:  orgID,
		Source: string(source),
		Roles:  toRoleInfos(available),
	})
}

func toRoleInfos(roles []domain.RoleDefinition) []authsdk.RoleInfo {
	out := make([]authsdk.RoleInfo, len(roles))
	for i, r := range roles {
		out[i] = toRoleInfo(r)
	}
	return out
}

func toRoleInfo(r domain.RoleDefinition) authsdk.RoleInfo {
	return authsdk.RoleInfo{Key: r.Key, Name: r.Name, Description: r.Description}
}
