package sqlite

import (
	"context"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/domain"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/store/drivers/sqlite/gen"
)

type providerRolesRepo struct {
	q *gen.Queries
}

func (r *providerRolesRepo) ListByOrg(ctx context.Context, orgID string) ([]domain.ProviderRole, error) {
	rows, err := r.q.ListProviderRolesByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ProviderRole, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapProviderRole(row))
	}
	return out, nil
}

func (r *providerRolesRepo) CreateProviderRole(ctx context.Context, role domain.ProviderRole, position int) error {
	return r.q.CreateProviderRole(ctx, gen.CreateProviderRoleParams{
		OrgID:       role.OrgID,
		Key:         role.Key,
		Name:        role.Name,
		Description: role.Description,
		Position:    int64(position),
	})
}

func (r *providerRolesRepo) DeleteByOrg(ctx context.Context, orgID string) error {
	return r.q.DeleteProviderRolesByOrg(ctx, orgID)
}
