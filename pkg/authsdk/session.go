package authsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListRoles returns the roles available in orgID, or the catalog when orgID
// is empty.
func (s *Session) ListRoles(ctx context.Context, orgID string) (*ListRolesResponse, error) {
	path := "/v1/roles"
	if orgID != "" {
		path += "?" + url.Values{"org": {orgID}}.Encode()
	}

	var out ListRolesResponse
	if err := s.client.do(ctx, http.MethodGet, path, s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// WhoAmI returns the verified identity and resolved role of the caller.
func (s *Session) WhoAmI(ctx context.Context) (*WhoAmIResponse, error) {
	var out WhoAmIResponse
	if err := s.client.do(ctx, http.MethodGet, "/v1/whoami", s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RestoreAdmin resets the role of the user with the given email to admin.
// A missing user is reported through the response outcome, not an error.
// Requires an administrator role.
func (s *Session) RestoreAdmin(ctx context.Context, email string) (*RestoreAdminResponse, error) {
	var out RestoreAdminResponse
	req := RestoreAdminRequest{Email: email}
	if err := s.client.do(ctx, http.MethodPost, "/v1/admin/restore-admin", s.token, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SyncRoles replaces the provider roles of orgID and returns the roles now
// in effect. Requires an administrator role in orgID.
func (s *Session) SyncRoles(ctx context.Context, orgID string, roles []RoleInfo) (*ListRolesResponse, error) {
	path := "/v1/orgs/" + url.PathEscape(orgID) + "/roles"

	var out ListRolesResponse
	if err := s.client.do(ctx, http.MethodPut, path, s.token, SyncRolesRequest{Roles: roles}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
