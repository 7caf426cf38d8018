package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/orgrole/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestParsePayload(t *testing.T) {
	t.Run("single string audience", func(t *testing.T) {
		c, err := jwtx.ParsePayload([]byte(`{
			"iss": "https://clerk.example.com",
			"sub": "user_123",
			"aud": "convex",
			"email": "a@x.com",
			"org_id": "org_1",
			"org_role": "org:admin"
		}`))
		require.NoError(t, err)
		require.Equal(t, "https://clerk.example.com", c.Issuer)
		require.Equal(t, "user_123", c.Subject)
		require.Equal(t, jwt.ClaimStrings{"convex"}, c.Audience)
		require.Equal(t, "a@x.com", c.Email)
		require.Equal(t, "org_1", c.OrgID)
		require.Equal(t, "org:admin", c.OrgRole)
	})

	t.Run("array audience", func(t *testing.T) {
		c, err := jwtx.ParsePayload([]byte(`{"aud": ["web", "convex"]}`))
		require.NoError(t, err)
		require.Equal(t, jwt.ClaimStrings{"web", "convex"}, c.Audience)
	})

	t.Run("garbage payload", func(t *testing.T) {
		_, err := jwtx.ParsePayload([]byte(`not-json`))
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "https://clerk.example.com",
		},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("https://clerk.example.com"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("trailing slash is a mismatch", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateIssuer("https://clerk.example.com/"), jwtx.ErrIssuer)
	})

	t.Run("case differs", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateIssuer("https://CLERK.example.com"), jwtx.ErrIssuer)
	})
}

func TestValidateAudience(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience: []string{"convex", "web"},
		},
	}

	t.Run("contains match", func(t *testing.T) {
		require.NoError(t, c.ValidateAudience([]string{"convex"}))
	})

	t.Run("no match", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateAudience([]string{"Convex"}), jwtx.ErrAudience)
	})

	t.Run("empty expected list", func(t *testing.T) {
		require.NoError(t, c.ValidateAudience(nil))
	})
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid token", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			},
		}
		require.NoError(t, claims.ValidateExpiry())
	})

	t.Run("expired token", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				NotBefore: jwt.NewNumericDate(now.Add(time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrNotYetValid)
	})

	t.Run("expired within leeway", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-10 * time.Second)),
			},
		}
		require.NoError(t, claims.ValidateExpiryWithLeeway(jwtx.DefaultLeeway))
	})

	t.Run("expired beyond leeway", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-2 * time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiryWithLeeway(jwtx.DefaultLeeway), jwtx.ErrExpired)
	})
}
