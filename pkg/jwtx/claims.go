package jwtx

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultLeeway absorbs small clock drift between us and the provider.
const DefaultLeeway = 30 * time.Second

// Claims are the identity-token claims issued by the external identity
// provider. Only the fields we resolve roles from are decoded; everything
// else in the payload is ignored.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the signed-in user, when the provider's token template includes it.
	Email string `json:"email,omitempty"`

	// Active organization the session is scoped to.
	OrgID   string `json:"org_id,omitempty"`
	OrgSlug string `json:"org_slug,omitempty"`

	// Provider role key for the active organization, e.g. "org:admin".
	OrgRole string `json:"org_role,omitempty"`
}

// ParsePayload decodes a JWT payload that has already had its signature
// verified.
func ParsePayload(payload []byte) (Claims, error) {
	var c Claims
	if err := json.Unmarshal(payload, &c); err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return c, nil
}

// ValidateIssuer checks the issuer claim is exactly expected. No case
// folding or trailing-slash normalization is applied.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateAudience checks if at least one expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil // nothing to enforce
	}

	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}

	return ErrAudience
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	return c.ValidateExpiryWithLeeway(0)
}

// ValidateExpiryWithLeeway adds a small grace period for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(leeway time.Duration) error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}

	return nil
}
