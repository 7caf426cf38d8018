package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/orgrole/pkg/httpx"
	"github.com/aussiebroadwan/orgrole/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var stubVerifier = jwtx.VerifierFunc(func(ctx context.Context, token string) (jwtx.Claims, error) {
	switch token {
	case "good":
		return jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user_1"}}, nil
	case "expired":
		return jwtx.Claims{}, jwtx.ErrExpired
	default:
		return jwtx.Claims{}, jwtx.ErrIssuer
	}
})

func TestAuthnMiddleware(t *testing.T) {
	var seen jwtx.Claims
	h := httpx.AuthnMiddleware(stubVerifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = httpx.ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	serve := func(authz string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid token", func(t *testing.T) {
		rec := serve("Bearer good")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user_1", seen.Subject)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := serve("")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), `error="invalid_token"`)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		require.Equal(t, http.StatusUnauthorized, serve("Basic dXNlcjpwYXNz").Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		rec := serve("Bearer forged")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "token verification failed")
	})

	t.Run("expired token", func(t *testing.T) {
		rec := serve("Bearer expired")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "token expired")
	})
}

func TestRequireAnyRole(t *testing.T) {
	h := httpx.RequireAnyRole("org:admin", "admin")(okHandler())

	serve := func(roles []string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if roles != nil {
			req = req.WithContext(httpx.WithRoles(req.Context(), roles))
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, serve([]string{"org:admin"}))
	require.Equal(t, http.StatusOK, serve([]string{"org:member", "admin"}))
	require.Equal(t, http.StatusForbidden, serve([]string{"org:member"}))
	require.Equal(t, http.StatusForbidden, serve([]string{"org:Admin"}))
	require.Equal(t, http.StatusForbidden, serve(nil))
}

func TestRequireSubject(t *testing.T) {
	serve := func(h http.Handler, sub string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if sub != "" {
			req = req.WithContext(context.WithValue(req.Context(), httpx.CtxKeyUserID, sub))
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	h := httpx.RequireSubject("operator_1")(okHandler())
	require.Equal(t, http.StatusOK, serve(h, "operator_1"))
	require.Equal(t, http.StatusForbidden, serve(h, "operator_2"))
	require.Equal(t, http.StatusForbidden, serve(h, ""))

	none := httpx.RequireSubject()(okHandler())
	require.Equal(t, http.StatusForbidden, serve(none, "operator_1"))
}

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(okHandler(), mark("first"), mark("second"), mark("third"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, "first,second,third", strings.Join(order, ","))
}
