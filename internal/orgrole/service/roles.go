package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/catalog"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/domain"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/store"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/telemetry"
	"github.com/aussiebroadwan/orgrole/pkg/slogx"
)

const roleKeyPrefix = "org:"

// RoleSource records where a resolved role definition came from.
type RoleSource string

const (
	SourceProvider RoleSource = "provider"
	SourceCatalog  RoleSource = "catalog"
	SourceFallback RoleSource = "fallback"
)

// ResolvedRole is a role definition together with its origin.
type ResolvedRole struct {
	domain.RoleDefinition
	Source RoleSource
}

type RolesService struct {
	Store store.Store
}

// AvailableRoles returns the organization's provider roles when a
// well-formed set has been synchronized, otherwise the catalog.
func (s *RolesService) AvailableRoles(ctx context.Context, orgID string) ([]domain.RoleDefinition, RoleSource, error) {
	provider, err := s.providerRoles(ctx, orgID)
	if err != nil {
		return nil, "", err
	}
	if len(provider) > 0 {
		return provider, SourceProvider, nil
	}
	return catalog.All(), SourceCatalog, nil
}

// Resolve maps a role key to its definition: provider match, then catalog
// match, then the catalog baseline.
func (s *RolesService) Resolve(ctx context.Context, orgID, key string) (ResolvedRole, error) {
	provider, err := s.providerRoles(ctx, orgID)
	if err != nil {
		return ResolvedRole{}, err
	}

	for _, r := range provider {
		if r.Key == key {
			return ResolvedRole{RoleDefinition: r, Source: SourceProvider}, nil
		}
	}

	if def, ok := catalog.Lookup(key); ok {
		return ResolvedRole{RoleDefinition: def, Source: SourceCatalog}, nil
	}

	if key != "" {
		slogx.FromContext(ctx).Debug("unrecognized role key, using baseline",
			"org_id", orgID, "role", key)
	}
	return ResolvedRole{RoleDefinition: catalog.Baseline(), Source: SourceFallback}, nil
}

// SyncProviderRoles replaces the organization's provider role set in a
// single transaction. An empty set clears it, reverting to the catalog.
func (s *RolesService) SyncProviderRoles(ctx context.Context, orgID string, roles []domain.RoleDefinition) error {
	log := slogx.FromContext(ctx)

	if orgID == "" {
		telemetry.ProviderRoleSyncsTotal.WithLabelValues("invalid").Inc()
		return fmt.Errorf("%w: organization id is required", ErrInvalidRoleSet)
	}
	if err := ValidateRoleSet(roles); err != nil {
		telemetry.ProviderRoleSyncsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.ProviderRoles().DeleteByOrg(ctx, orgID); err != nil {
			return err
		}
		for i, r := range roles {
			pr := domain.ProviderRole{OrgID: orgID, RoleDefinition: r}
			if err := tx.ProviderRoles().CreateProviderRole(ctx, pr, i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		telemetry.ProviderRoleSyncsTotal.WithLabelValues("error").Inc()
		log.Error("failed to sync provider roles", "org_id", orgID, "err", err)
		return fmt.Errorf("%w: %w", ErrProfileStoreUnavailable, err)
	}

	telemetry.ProviderRoleSyncsTotal.WithLabelValues("ok").Inc()
	log.Info("provider roles synced", "org_id", orgID, "count", len(roles))
	return nil
}

// ValidateRoleSet checks every key is namespaced and unique and every role
// has a display name.
func ValidateRoleSet(roles []domain.RoleDefinition) error {
	seen := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		if !strings.HasPrefix(r.Key, roleKeyPrefix) || len(r.Key) == len(roleKeyPrefix) {
			return fmt.Errorf("%w: key %q must look like %q", ErrInvalidRoleSet, r.Key, roleKeyPrefix+"<name>")
		}
		if r.Name == "" {
			return fmt.Errorf("%w: role %q has no name", ErrInvalidRoleSet, r.Key)
		}
		if _, dup := seen[r.Key]; dup {
			return fmt.Errorf("%w: duplicate key %q", ErrInvalidRoleSet, r.Key)
		}
		seen[r.Key] = struct{}{}
	}
	return nil
}

// providerRoles returns the organization's provider set, or nil when there is
// none or the stored set is malformed.
func (s *RolesService) providerRoles(ctx context.Context, orgID string) ([]domain.RoleDefinition, error) {
	if orgID == "" {
		return nil, nil
	}

	rows, err := s.Store.ProviderRoles().ListByOrg(ctx, orgID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrProfileStoreUnavailable, err)
	}

	defs := make([]domain.RoleDefinition, 0, len(rows))
	for _, r := range rows {
		defs = append(defs, r.RoleDefinition)
	}

	if err := ValidateRoleSet(defs); err != nil {
		slogx.FromContext(ctx).Warn("ignoring malformed provider roles", "org_id", orgID, "err", err)
		return nil, nil
	}
	return defs, nil
}
