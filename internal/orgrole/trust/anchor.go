// Package trust holds the trust anchor for externally issued identity tokens
// and the verifier that enforces it.
package trust

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/orgrole/pkg/jwtx"
)

// DefaultApplicationID is the audience our tokens are minted for.
const DefaultApplicationID = "convex"

var (
	ErrMisconfiguredTrustAnchor = errors.New("trust: misconfigured trust anchor")
	ErrUntrustedIssuer          = errors.New("trust: untrusted issuer")
	ErrWrongAudience            = errors.New("trust: wrong audience")
	ErrInvalidSignature         = errors.New("trust: invalid token signature")
	ErrTokenExpired             = errors.New("trust: token expired")
	ErrKeySetUnavailable        = errors.New("trust: signing key set unavailable")
)

// TrustAnchor pins the single identity provider we accept tokens from.
type TrustAnchor struct {
	// IssuerDomain must equal the token's iss claim exactly.
	IssuerDomain string
	// ApplicationID must appear in the token's aud claim.
	ApplicationID string
	// JWKSURL overrides where the provider's signing keys are fetched from.
	JWKSURL string
}

// Validate reports whether the anchor can be used to verify tokens.
func (a TrustAnchor) Validate() error {
	if a.IssuerDomain == "" {
		return fmt.Errorf("%w: issuer domain is required", ErrMisconfiguredTrustAnchor)
	}
	if a.ApplicationID == "" {
		return fmt.Errorf("%w: application id is required", ErrMisconfiguredTrustAnchor)
	}
	return nil
}

// KeySetURL returns the JWKS location, defaulting to the provider's well-known path.
func (a TrustAnchor) KeySetURL() string {
	if a.JWKSURL != "" {
		return a.JWKSURL
	}
	return strings.TrimSuffix(a.IssuerDomain, "/") + "/.well-known/jwks.json"
}

// CheckClaims asserts the issuer and audience claims match the anchor.
// Both comparisons are exact.
func (a TrustAnchor) CheckClaims(claims *jwtx.Claims) error {
	if err := claims.ValidateIssuer(a.IssuerDomain); err != nil {
		return fmt.Errorf("%w: got %q", ErrUntrustedIssuer, claims.Issuer)
	}
	if err := claims.ValidateAudience([]string{a.ApplicationID}); err != nil {
		return fmt.Errorf("%w: %q not in %v", ErrWrongAudience, a.ApplicationID, []string(claims.Audience))
	}
	return nil
}
