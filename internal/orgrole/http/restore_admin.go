package http

import (
	"net/http"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/service"
	"github.com/aussiebroadwan/orgrole/pkg/authsdk"
	"github.com/aussiebroadwan/orgrole/pkg/httpx"
	"github.com/aussiebroadwan/orgrole/pkg/slogx"
)

const maxRestoreAdminBytes = 4 << 10

type RestoreAdminHandler struct {
	RepairService *service.RepairService
}

// ServeHTTP handles the admin role repair endpoint
//
//	@Summary		Restore a user's admin role
//	@Description	Finds the first profile with exactly the given email and sets its role to "admin".
//	@Description	A missing user is reported with outcome "not_found" and leaves the store untouched.
//	@Description	Only subjects listed in admin.operators may call it.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.RestoreAdminRequest		true	"User email"
//	@Success		200		{object}	authsdk.RestoreAdminResponse	"Repair outcome"
//	@Failure		400		{object}	authsdk.ErrorResponse			"Malformed request"
//	@Failure		401		{object}	authsdk.ErrorResponse			"Unauthorized - missing or invalid token"
//	@Failure		403		{object}	authsdk.ErrorResponse			"Forbidden - caller is not a deployment operator"
//	@Failure		503		{object}	authsdk.ErrorResponse			"Profile store unavailable"
//	@Security		BearerAuth
//	@Router			/v1/admin/restore-admin [post].
func (h *RestoreAdminHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.RestoreAdminRequest
	if err := httpx.DecodeJSON(w, r, maxRestoreAdminBytes, &req); err != nil {
		authsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}
	if req.Email == "" {
		authsdk.ErrInvalidRequest.WithDescription("email is required").WriteError(w)
		return
	}

	operator, _ := httpx.ClaimsFromContext(ctx)
	log.Info("admin role repair requested", "operator", operator.Subject, "target_email", req.Email)

	result, err := h.RepairService.RestoreAdmin(ctx, req.Email)
	if err != nil {
		writeServiceError(ctx, w, "admin role repair failed", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.RestoreAdminResponse{
		Outcome: string(result.Outcome),
		Email:   result.Email,
		Message: result.Message(),
	})
}
