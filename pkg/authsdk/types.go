package authsdk

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	// Error is the machine readable error code (e.g., "invalid_request")
	Error string `json:"error" example:"invalid_request"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description" example:"email is required"`
}

// ============================================================================
// Role Types
// ============================================================================

// RoleInfo describes one organizational role.
type RoleInfo struct {
	Key         string `json:"key" example:"org:admin"`
	Name        string `json:"name" example:"Admin"`
	Description string `json:"description" example:"Full access to the organization, including member and role management."`
}

// ListRolesResponse is returned by GET /v1/roles.
type ListRolesResponse struct {
	// OrgID echoes the organization the roles were resolved for, if any.
	OrgID string `json:"org_id,omitempty" example:"org_2abc"`

	// Source is "provider" when the organization has synchronized custom
	// roles, otherwise "catalog".
	Source string     `json:"source" example:"catalog"`
	Roles  []RoleInfo `json:"roles"`
}

// SyncRolesRequest replaces an organization's provider roles.
type SyncRolesRequest struct {
	Roles []RoleInfo `json:"roles"`
}

// ============================================================================
// Identity Types
// ============================================================================

// WhoAmIResponse is returned by GET /v1/whoami.
type WhoAmIResponse struct {
	Subject string `json:"sub" example:"user_2abc"`
	Email   string `json:"email,omitempty" example:"a@x.com"`
	OrgID   string `json:"org_id,omitempty" example:"org_2abc"`
	OrgSlug string `json:"org_slug,omitempty" example:"acme"`

	// Role is the caller's effective organizational role.
	Role RoleInfo `json:"role"`

	// RoleSource is "provider", "catalog" or "fallback".
	RoleSource string `json:"role_source" example:"catalog"`

	// ProfileRole is the role stored on the caller's profile, if one exists.
	ProfileRole string `json:"profile_role,omitempty" example:"admin"`
}

// ============================================================================
// Repair Types
// ============================================================================

const (
	OutcomeRepaired = "repaired"
	OutcomeNotFound = "not_found"
)

// RestoreAdminRequest asks the service to reset a user's role to admin.
type RestoreAdminRequest struct {
	Email string `json:"email" example:"a@x.com"`
}

// RestoreAdminResponse reports the repair outcome.
type RestoreAdminResponse struct {
	Outcome string `json:"outcome" example:"repaired"`
	Email   string `json:"email" example:"a@x.com"`
	Message string `json:"message" example:"Restored admin role for a@x.com"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status" example:"ok"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty" example:"1h23m45s"`

	// Version is the service version string
	Version string `json:"version,omitempty" example:"v1.0.0"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	// Database indicates the profile store connection status
	Database string `json:"database" example:"ok"`

	// TrustAnchor reports whether the provider's signing key set can be fetched
	TrustAnchor string `json:"trust_anchor" example:"ok"`
}
