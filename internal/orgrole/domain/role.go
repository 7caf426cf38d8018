package domain

// RoleDefinition is an organizational role. Key is the value stored on
// profiles, so it must never be reused for a different role once deployed.
type RoleDefinition struct {
	Key         string // Namespaced identifier, e.g. "org:admin"
	Name        string
	Description string
}

// ProviderRole is a custom role the identity provider has synchronized for
// a single organization.
type ProviderRole struct {
	OrgID string
	RoleDefinition
}
