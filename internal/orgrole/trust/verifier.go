package trust

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/aussiebroadwan/orgrole/pkg/jwtx"
)

const keySetCheckTimeout = 5 * time.Second

// Verifier validates bearer identity tokens against a TrustAnchor.
type Verifier struct {
	anchor TrustAnchor
	keys   oidc.KeySet
	client *http.Client
}

// NewVerifier builds a verifier over an explicit key set. It fails if the
// anchor is misconfigured so the process never starts half-trusting.
func NewVerifier(anchor TrustAnchor, keys oidc.KeySet) (*Verifier, error) {
	if err := anchor.Validate(); err != nil {
		return nil, err
	}
	if keys == nil {
		return nil, fmt.Errorf("%w: key set is required", ErrMisconfiguredTrustAnchor)
	}
	return &Verifier{
		anchor: anchor,
		keys:   keys,
		client: &http.Client{Timeout: keySetCheckTimeout},
	}, nil
}

// NewRemoteVerifier builds a verifier that fetches signing keys from the
// provider's JWKS endpoint on demand. The context bounds key refreshes.
func NewRemoteVerifier(ctx context.Context, anchor TrustAnchor) (*Verifier, error) {
	if err := anchor.Validate(); err != nil {
		return nil, err
	}
	return NewVerifier(anchor, oidc.NewRemoteKeySet(ctx, anchor.KeySetURL()))
}

// Anchor returns the trust anchor the verifier enforces.
func (v *Verifier) Anchor() TrustAnchor { return v.anchor }

// Verify checks the token signature, then issuer and audience, then expiry.
func (v *Verifier) Verify(ctx context.Context, raw string) (jwtx.Claims, error) {
	payload, err := v.keys.VerifySignature(ctx, raw)
	if err != nil {
		return jwtx.Claims{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	claims, err := jwtx.ParsePayload(payload)
	if err != nil {
		return jwtx.Claims{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	if err := v.anchor.CheckClaims(&claims); err != nil {
		return jwtx.Claims{}, err
	}

	if err := claims.ValidateExpiryWithLeeway(jwtx.DefaultLeeway); err != nil {
		if errors.Is(err, jwtx.ErrExpired) || errors.Is(err, jwtx.ErrNotYetValid) {
			return jwtx.Claims{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return jwtx.Claims{}, err
	}

	return claims, nil
}
