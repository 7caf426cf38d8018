package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/domain"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/store"
)

type profilesRepo struct {
	db sqlx.ExtContext
	// lockRows adds FOR UPDATE to lookups made inside a transaction.
	lockRows bool
}

const profileColumns = `id, email, role, created_at, updated_at`

func (r *profilesRepo) GetProfileByID(ctx context.Context, id string) (domain.UserProfile, error) {
	var row profileRow
	err := sqlx.GetContext(ctx, r.db, &row,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	if err != nil {
		return domain.UserProfile{}, mapNotFound(err)
	}
	return row.toDomain(), nil
}

func (r *profilesRepo) FindFirstByEmail(ctx context.Context, email string) (domain.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles
		WHERE email = $1
		ORDER BY created_at ASC, id ASC
		LIMIT 1`
	if r.lockRows {
		query += ` FOR UPDATE`
	}

	var row profileRow
	if err := sqlx.GetContext(ctx, r.db, &row, query, email); err != nil {
		return domain.UserProfile{}, mapNotFound(err)
	}
	return row.toDomain(), nil
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.UserProfile) error {
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (id, email, role, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Email, p.Role, createdAt, updatedAt)
	return err
}

func (r *profilesRepo) UpdateRole(ctx context.Context, id string, role string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET role = $1, updated_at = now() WHERE id = $2`, role, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
