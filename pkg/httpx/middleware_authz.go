package httpx

import (
	"net/http"
	"slices"
)

// RequireAnyRole the caller must hold at least one of the provided role keys.
// Comparison is exact string equality.
func RequireAnyRole(required ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, have := range rolesFromCtx(r.Context()) {
				if slices.Contains(required, have) {
					next.ServeHTTP(w, r)
					return
				}
			}

			WriteJSON(w, http.StatusForbidden, map[string]string{
				"error":             "forbidden",
				"error_description": "This operation requires an administrator role.",
			})
		})
	}
}

// RequireSubject the authenticated subject must be one of allowed. With no
// subjects configured every request is refused.
func RequireSubject(allowed ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sub, _ := r.Context().Value(CtxKeyUserID).(string)
			if sub != "" && slices.Contains(allowed, sub) {
				next.ServeHTTP(w, r)
				return
			}

			WriteJSON(w, http.StatusForbidden, map[string]string{
				"error":             "forbidden",
				"error_description": "This operation is restricted to deployment operators.",
			})
		})
	}
}
