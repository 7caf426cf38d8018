package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/domain"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/store"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/store/drivers/sqlite"
	"github.com/aussiebroadwan/orgrole/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedProfile(t *testing.T, s store.Store, email, role string, createdAt time.Time) domain.UserProfile {
	t.Helper()

	p := domain.UserProfile{
		ID:        idx.NewAt(createdAt).String(),
		Email:     email,
		Role:      role,
		CreatedAt: createdAt,
	}
	require.NoError(t, s.Profiles().CreateProfile(context.Background(), p))
	return p
}

// brokenStore fails every transaction and profile lookup.
type brokenStore struct {
	store.Store
	err error
}

func (b *brokenStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return b.err
}

func (b *brokenStore) Profiles() store.Profiles { return brokenProfiles{err: b.err} }

func (b *brokenStore) ProviderRoles() store.ProviderRoles { return brokenProviderRoles{err: b.err} }

type brokenProfiles struct {
	store.Profiles
	err error
}

func (b brokenProfiles) FindFirstByEmail(ctx context.Context, email string) (domain.UserProfile, error) {
	return domain.UserProfile{}, b.err
}

type brokenProviderRoles struct {
	store.ProviderRoles
	err error
}

func (b brokenProviderRoles) ListByOrg(ctx context.Context, orgID string) ([]domain.ProviderRole, error) {
	return nil, b.err
}

var errConnRefused = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
