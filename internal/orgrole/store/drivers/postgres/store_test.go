package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/domain"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/store"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/store/drivers/postgres"
)

var profileCols = []string{"id", "email", "role", "created_at", "updated_at"}

func newMockStore(t *testing.T) (*postgres.Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return postgres.NewStoreFromDB(sqlx.NewDb(db, "sqlmock")), mock
}

func TestProfiles_FindFirstByEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC, id ASC")).
			WithArgs("a@x.com").
			WillReturnRows(sqlmock.NewRows(profileCols).AddRow("01A", "a@x.com", "org:member", now, now))

		p, err := s.Profiles().FindFirstByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		require.Equal(t, "01A", p.ID)
		require.Equal(t, "org:member", p.Role)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery("FROM profiles").
			WithArgs("ghost@x.com").
			WillReturnRows(sqlmock.NewRows(profileCols))

		_, err := s.Profiles().FindFirstByEmail(ctx, "ghost@x.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("driver error is passed through", func(t *testing.T) {
		s, mock := newMockStore(t)
		boom := errors.New("connection reset")
		mock.ExpectQuery("FROM profiles").WillReturnError(boom)

		_, err := s.Profiles().FindFirstByEmail(ctx, "a@x.com")
		require.ErrorIs(t, err, boom)
		require.NotErrorIs(t, err, store.ErrNotFound)
	})
}

func TestProfiles_UpdateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("updates one row", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE profiles SET role = $1")).
			WithArgs("admin", "01A").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Profiles().UpdateRole(ctx, "01A", "admin"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows affected", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec("UPDATE profiles").
			WithArgs("admin", "nope").
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.ErrorIs(t, s.Profiles().UpdateRole(ctx, "nope", "admin"), store.ErrNotFound)
	})
}

func TestProfiles_CreateProfile(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("INSERT INTO profiles").
		WithArgs("01A", "a@x.com", "org:member", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Profiles().CreateProfile(context.Background(), domain.UserProfile{
		ID: "01A", Email: "a@x.com", Role: "org:member",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_LocksLookupAndCommits(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT 1 FOR UPDATE")).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows(profileCols).AddRow("01A", "a@x.com", "org:member", now, now))
	mock.ExpectExec("UPDATE profiles").
		WithArgs("admin", "01A").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.WithTx(ctx, func(tx store.Tx) error {
		p, err := tx.Profiles().FindFirstByEmail(ctx, "a@x.com")
		if err != nil {
			return err
		}
		return tx.Profiles().UpdateRole(ctx, p.ID, "admin")
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s, mock := newMockStore(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := s.WithTx(ctx, func(tx store.Tx) error { return boom })
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_BeginFails(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	called := false
	err := s.WithTx(context.Background(), func(tx store.Tx) error {
		called = true
		return nil
	})
	require.Error(t, err)
	require.False(t, called)
}

func TestProviderRoles(t *testing.T) {
	ctx := context.Background()
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM provider_roles WHERE org_id = $1 ORDER BY position ASC")).
		WithArgs("org_1").
		WillReturnRows(sqlmock.NewRows([]string{"org_id", "key", "name", "description"}).
			AddRow("org_1", "org:owner", "Owner", "").
			AddRow("org_1", "org:billing", "Billing", "Manages invoices"))

	roles, err := s.ProviderRoles().ListByOrg(ctx, "org_1")
	require.NoError(t, err)
	require.Len(t, roles, 2)
	require.Equal(t, "org:owner", roles[0].Key)
	require.Equal(t, "Manages invoices", roles[1].Description)

	mock.ExpectExec("DELETE FROM provider_roles").
		WithArgs("org_1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	require.NoError(t, s.ProviderRoles().DeleteByOrg(ctx, "org_1"))

	mock.ExpectExec("INSERT INTO provider_roles").
		WithArgs("org_1", "org:owner", "Owner", "", 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.ProviderRoles().CreateProviderRole(ctx, roles[0], 0))

	require.NoError(t, mock.ExpectationsWereMet())
}
