package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/catalog"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/domain"
	"github.com/stretchr/testify/require"
)

var customRoles = []domain.RoleDefinition{
	{Key: "org:owner", Name: "Owner", Description: "Owns the organization."},
	{Key: "org:billing", Name: "Billing", Description: "Manages invoices."},
}

func TestAvailableRoles(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &RolesService{Store: s}

	t.Run("catalog without provider roles", func(t *testing.T) {
		roles, src, err := svc.AvailableRoles(ctx, "org_1")
		require.NoError(t, err)
		require.Equal(t, SourceCatalog, src)
		require.Equal(t, catalog.All(), roles)
	})

	t.Run("catalog without organization", func(t *testing.T) {
		_, src, err := svc.AvailableRoles(ctx, "")
		require.NoError(t, err)
		require.Equal(t, SourceCatalog, src)
	})

	t.Run("provider roles once synced", func(t *testing.T) {
		require.NoError(t, svc.SyncProviderRoles(ctx, "org_1", customRoles))

		roles, src, err := svc.AvailableRoles(ctx, "org_1")
		require.NoError(t, err)
		require.Equal(t, SourceProvider, src)
		require.Equal(t, customRoles, roles)

		_, src, err = svc.AvailableRoles(ctx, "org_2")
		require.NoError(t, err)
		require.Equal(t, SourceCatalog, src)
	})

	t.Run("malformed stored set falls back to catalog", func(t *testing.T) {
		bad := domain.ProviderRole{OrgID: "org_bad", RoleDefinition: domain.RoleDefinition{Key: "owner", Name: "Owner"}}
		require.NoError(t, s.ProviderRoles().CreateProviderRole(ctx, bad, 0))

		_, src, err := svc.AvailableRoles(ctx, "org_bad")
		require.NoError(t, err)
		require.Equal(t, SourceCatalog, src)
	})

	t.Run("store failure", func(t *testing.T) {
		broken := &RolesService{Store: &brokenStore{err: errConnRefused}}
		_, _, err := broken.AvailableRoles(ctx, "org_1")
		require.ErrorIs(t, err, ErrProfileStoreUnavailable)
	})
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	svc := &RolesService{Store: newTestStore(t)}
	require.NoError(t, svc.SyncProviderRoles(ctx, "org_custom", customRoles))

	tests := []struct {
		name   string
		org    string
		key    string
		want   string
		source RoleSource
	}{
		{"catalog admin", "org_1", "org:admin", "org:admin", SourceCatalog},
		{"catalog member", "org_1", "org:member", "org:member", SourceCatalog},
		{"unknown key uses baseline", "org_1", "org:nonexistent", "org:member", SourceFallback},
		{"empty key uses baseline", "", "", "org:member", SourceFallback},
		{"provider match", "org_custom", "org:billing", "org:billing", SourceProvider},
		{"catalog still backs provider orgs", "org_custom", "org:admin", "org:admin", SourceCatalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Resolve(ctx, tt.org, tt.key)
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Key)
			require.Equal(t, tt.source, got.Source)
		})
	}
}

func TestSyncProviderRoles(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &RolesService{Store: s}

	t.Run("replaces previous set", func(t *testing.T) {
		require.NoError(t, svc.SyncProviderRoles(ctx, "org_1", customRoles))
		require.NoError(t, svc.SyncProviderRoles(ctx, "org_1", customRoles[:1]))

		rows, err := s.ProviderRoles().ListByOrg(ctx, "org_1")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, "org:owner", rows[0].Key)
	})

	t.Run("empty set clears", func(t *testing.T) {
		require.NoError(t, svc.SyncProviderRoles(ctx, "org_1", nil))

		rows, err := s.ProviderRoles().ListByOrg(ctx, "org_1")
		require.NoError(t, err)
		require.Empty(t, rows)
	})

	t.Run("rejects malformed sets without touching the store", func(t *testing.T) {
		require.NoError(t, svc.SyncProviderRoles(ctx, "org_2", customRoles))

		bad := [][]domain.RoleDefinition{
			{{Key: "owner", Name: "Owner"}},
			{{Key: "org:", Name: "Empty"}},
			{{Key: "org:owner"}},
			{{Key: "org:owner", Name: "Owner"}, {Key: "org:owner", Name: "Owner again"}},
		}
		for _, set := range bad {
			require.ErrorIs(t, svc.SyncProviderRoles(ctx, "org_2", set), ErrInvalidRoleSet)
		}

		rows, err := s.ProviderRoles().ListByOrg(ctx, "org_2")
		require.NoError(t, err)
		require.Len(t, rows, len(customRoles))
	})

	t.Run("requires organization", func(t *testing.T) {
		require.ErrorIs(t, svc.SyncProviderRoles(ctx, "", customRoles), ErrInvalidRoleSet)
	})
}
