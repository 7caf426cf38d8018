package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/store"
	"github.com/aussiebroadwan/orgrole/pkg/jwtx"
)

// Caller is a verified token holder with their organizational role resolved.
type Caller struct {
	Subject string
	Email   string
	OrgID   string
	OrgSlug string

	// Role is resolved from the token's org_role claim.
	Role ResolvedRole

	// ProfileRole is the role stored on the caller's profile, empty when no
	// profile matches the token email. Profiles are not scoped to an
	// organization, so it is informational and never grants access.
	ProfileRole string
}

type IdentityService struct {
	Store store.Store
	Roles *RolesService
}

// Resolve builds the Caller for verified claims.
func (s *IdentityService) Resolve(ctx context.Context, claims jwtx.Claims) (Caller, error) {
	role, err := s.Roles.Resolve(ctx, claims.OrgID, claims.OrgRole)
	if err != nil {
		return Caller{}, err
	}

	caller := Caller{
		Subject: claims.Subject,
		Email:   claims.Email,
		OrgID:   claims.OrgID,
		OrgSlug: claims.OrgSlug,
		Role:    role,
	}

	if claims.Email == "" {
		return caller, nil
	}

	profile, err := s.Store.Profiles().FindFirstByEmail(ctx, claims.Email)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return Caller{}, fmt.Errorf("%w: %w", ErrProfileStoreUnavailable, err)
	default:
		caller.ProfileRole = profile.Role
	}

	return caller, nil
}
