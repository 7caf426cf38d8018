package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/store"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/store/drivers/sqlite/gen"
)

// repos binds the repositories to a query runner, either the pool or a tx.
type repos struct {
	q *gen.Queries
}

func (r repos) Profiles() store.Profiles           { return &profilesRepo{q: r.q} }
func (r repos) ProviderRoles() store.ProviderRoles { return &providerRolesRepo{q: r.q} }

// txStore is a store.Tx over a single sqlite transaction. Lifecycle methods
// that only make sense on the root Store are inert here.
type txStore struct {
	repos
	sqlTx *sql.Tx
}

func (t *txStore) Commit() error   { return t.sqlTx.Commit() }
func (t *txStore) Rollback() error { return t.sqlTx.Rollback() }

func (*txStore) Tx(context.Context) (store.Tx, error)               { return nil, store.ErrNestedTx }
func (*txStore) WithTx(context.Context, func(store.Tx) error) error { return store.ErrNestedTx }

func (*txStore) Ping(context.Context) error { return nil }
func (*txStore) ApplyMigrations() error     { return nil }
func (*txStore) Close() error               { return nil }
