// Package postgres is the Profile Store driver for PostgreSQL, backed by
// pgx through database/sql and sqlx.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/domain"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/store"
)

type Store struct {
	db *sqlx.DB
}

// NewStore opens a pgx connection pool for dsn and verifies it is reachable.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Store{db: db}, nil
}

// NewStoreFromDB wraps an existing handle. The caller keeps ownership of
// connection settings.
func NewStoreFromDB(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &txStore{tx: tx}, nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Profiles() store.Profiles           { return &profilesRepo{db: s.db} }
func (s *Store) ProviderRoles() store.ProviderRoles { return &providerRolesRepo{db: s.db} }

type txStore struct {
	tx *sqlx.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }
func (t *txStore) ApplyMigrations() error         { return nil }

func (t *txStore) Tx(context.Context) (store.Tx, error) {
	return nil, store.ErrNestedTx
}

func (t *txStore) WithTx(context.Context, func(store.Tx) error) error {
	return store.ErrNestedTx
}

func (t *txStore) Profiles() store.Profiles {
	return &profilesRepo{db: t.tx, lockRows: true}
}

func (t *txStore) ProviderRoles() store.ProviderRoles {
	return &providerRolesRepo{db: t.tx}
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

type profileRow struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r profileRow) toDomain() domain.UserProfile {
	return domain.UserProfile{
		ID:        r.ID,
		Email:     r.Email,
		Role:      r.Role,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type providerRoleRow struct {
	OrgID       string `db:"org_id"`
	Key         string `db:"key"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

func (r providerRoleRow) toDomain() domain.ProviderRole {
	return domain.ProviderRole{
		OrgID: r.OrgID,
		RoleDefinition: domain.RoleDefinition{
			Key:         r.Key,
			Name:        r.Name,
			Description: r.Description,
		},
	}
}
