package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/service"
	"github.com/aussiebroadwan/orgrole/pkg/authsdk"
	"github.com/aussiebroadwan/orgrole/pkg/httpx"
	"github.com/aussiebroadwan/orgrole/pkg/slogx"
)

type callerKey struct{}

// CallerMiddleware resolves the verified claims into a service.Caller and
// exposes the token's resolved role key to httpx.RequireAnyRole. It must run
// after httpx.AuthnMiddleware.
func CallerMiddleware(identity *service.IdentityService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			claims, ok := httpx.ClaimsFromContext(ctx)
			if !ok {
				httpx.WriteBearerError(w, "missing bearer token")
				return
			}

			caller, err := identity.Resolve(ctx, claims)
			if err != nil {
				writeServiceError(ctx, w, "failed to resolve caller", err)
				return
			}

			ctx = slogx.With(ctx, "sub", caller.Subject, "org_id", caller.OrgID)
			ctx = context.WithValue(ctx, callerKey{}, caller)
			ctx = httpx.WithRoles(ctx, []string{caller.Role.Key})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerFromContext returns the caller stored by CallerMiddleware.
func CallerFromContext(ctx context.Context) (service.Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(service.Caller)
	return c, ok
}

func requireCaller(w http.ResponseWriter, r *http.Request) (service.Caller, bool) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		slogx.FromContext(r.Context()).Error("handler mounted without caller middleware")
		authsdk.ErrServerError.WriteError(w)
	}
	return caller, ok
}
