package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/domain"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/store"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/store/drivers/sqlite/gen"
)

type profilesRepo struct {
	q *gen.Queries
}

func (r *profilesRepo) GetProfileByID(ctx context.Context, id string) (domain.UserProfile, error) {
	row, err := r.q.GetProfileByID(ctx, id)
	if err != nil {
		return domain.UserProfile{}, mapNotFound(err)
	}
	return mapProfile(row), nil
}

// FindFirstByEmail relies on SQLite's database-level write lock for
// isolation inside a transaction; there is no row locking to request.
func (r *profilesRepo) FindFirstByEmail(ctx context.Context, email string) (domain.UserProfile, error) {
	row, err := r.q.FindFirstProfileByEmail(ctx, email)
	if err != nil {
		return domain.UserProfile{}, mapNotFound(err)
	}
	return mapProfile(row), nil
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.UserProfile) error {
	now := time.Now().UTC()
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	return r.q.CreateProfile(ctx, gen.CreateProfileParams{
		ID:        p.ID,
		Email:     p.Email,
		Role:      p.Role,
		CreatedAt: createdAt.UTC(),
		UpdatedAt: updatedAt.UTC(),
	})
}

func (r *profilesRepo) UpdateRole(ctx context.Context, id string, role string) error {
	n, err := r.q.UpdateProfileRole(ctx, gen.UpdateProfileRoleParams{
		Role: role,
		ID:   id,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
