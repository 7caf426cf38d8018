// Package catalog holds the compiled-in organizational role definitions used
// whenever the identity provider has not supplied custom roles.
package catalog

import (
	"slices"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/domain"
)

const (
	// RoleAdmin can manage the organization, its members and their roles.
	RoleAdmin = "org:admin"

	// RoleMember is the baseline role every organization member holds.
	RoleMember = "org:member"
)

// Ordered as presented to users. Keys are referenced by value from stored
// profiles; append new entries rather than renaming existing ones.
var roles = []domain.RoleDefinition{
	{Key: RoleAdmin, Name: "Admin", Description: "Full access to the organization, including member and role management."},
	{Key: RoleMember, Name: "Member", Description: "Read and contribute to organization resources."},
}

// All returns every role definition in catalog order. The returned slice is
// a copy and may be modified by the caller.
func All() []domain.RoleDefinition {
	return slices.Clone(roles)
}

// Lookup returns the definition for key. It reports false for unknown keys
// and never substitutes a default.
func Lookup(key string) (domain.RoleDefinition, bool) {
	for _, r := range roles {
		if r.Key == key {
			return r, true
		}
	}
	return domain.RoleDefinition{}, false
}

// Baseline is the entry substituted when a role key cannot be recognized.
func Baseline() domain.RoleDefinition {
	r, _ := Lookup(RoleMember)
	return r
}
