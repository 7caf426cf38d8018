package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/domain"
)

type providerRolesRepo struct {
	db sqlx.ExtContext
}

func (r *providerRolesRepo) ListByOrg(ctx context.Context, orgID string) ([]domain.ProviderRole, error) {
	var rows []providerRoleRow
	err := sqlx.SelectContext(ctx, r.db, &rows,
		`SELECT org_id, key, name, description FROM provider_roles WHERE org_id = $1 ORDER BY position ASC`,
		orgID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ProviderRole, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *providerRolesRepo) CreateProviderRole(ctx context.Context, role domain.ProviderRole, position int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO provider_roles (org_id, key, name, description, position) VALUES ($1, $2, $3, $4, $5)`,
		role.OrgID, role.Key, role.Name, role.Description, position)
	return err
}

func (r *providerRolesRepo) DeleteByOrg(ctx context.Context, orgID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM provider_roles WHERE org_id = $1`, orgID)
	return err
}
