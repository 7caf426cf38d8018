package http

import (
	"net/http"

	"github.com/aussiebroadwan/orgrole/pkg/authsdk"
	"github.com/aussiebroadwan/orgrole/pkg/httpx"
)

type WhoAmIHandler struct{}

// ServeHTTP handles the whoami endpoint
//
//	@Summary		Describe the caller
//	@Description	Returns the verified identity from the bearer token together with the resolved organizational role.
//	@Tags			Identity
//	@Produce		json
//	@Success		200	{object}	authsdk.WhoAmIResponse	"Caller identity"
//	@Failure		401	{object}	authsdk.ErrorResponse	"Unauthorized - missing or invalid token"
//	@Failure		503	{object}	authsdk.ErrorResponse	"Profile store unavailable"
//	@Security		BearerAuth
//	@Router			/v1/whoami [get].
func (h *WhoAmIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.WhoAmIResponse{
		Subject:     caller.Subject,
		Email:       caller.Email,
		OrgID:       caller.OrgID,
		OrgSlug:     caller.OrgSlug,
		Role:        toRoleInfo(caller.Role.RoleDefinition),
		RoleSource:  string(caller.Role.Source),
		ProfileRole: caller.ProfileRole,
	})
}
