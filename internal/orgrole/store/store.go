package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrNestedTx is returned when a transaction is opened on a Tx.
	ErrNestedTx = errors.New("store: nested transaction")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Sub-repositories are exposed as methods so a Tx can hand
// out the same repos bound to the transaction.
type Store interface {
	Profiles() Profiles
	ProviderRoles() ProviderRoles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Profiles interface {
	// GetProfileByID returns a profile by id.
	GetProfileByID(ctx context.Context, id string) (domain.UserProfile, error)

	// FindFirstByEmail returns the earliest created profile whose email is
	// exactly email, breaking ties on the lowest id. Inside a Tx the row is
	// locked where the driver supports it.
	FindFirstByEmail(ctx context.Context, email string) (domain.UserProfile, error)

	// CreateProfile inserts a new profile (id is provided by app via ULID).
	CreateProfile(ctx context.Context, p domain.UserProfile) error

	// UpdateRole overwrites the role and bumps updated_at.
	UpdateRole(ctx context.Context, id string, role string) error
}

type ProviderRoles interface {
	// ListByOrg returns the organization's provider roles in sync order.
	ListByOrg(ctx context.Context, orgID string) ([]domain.ProviderRole, error)

	// CreateProviderRole inserts one role at the given position.
	CreateProviderRole(ctx context.Context, r domain.ProviderRole, position int) error

	// DeleteByOrg removes every provider role for the organization.
	DeleteByOrg(ctx context.Context, orgID string) error
}
