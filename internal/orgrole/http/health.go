package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/store"
	"github.com/aussiebroadwan/orgrole/pkg/authsdk"
	"github.com/aussiebroadwan/orgrole/pkg/httpx"
)

const readinessTimeout = 3 * time.Second

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	StartTime time.Time
	Version   string
	Store     store.Store
	Keys      KeySetChecker
}

// Livez godoc
//
//	@Summary		Liveness Check Endpoint
//	@Description	Reports uptime and version. Answers 200 while the process is serving.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func (h *HealthHandler) Livez(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.response("ok", nil))
}

// Readyz godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Pings the profile store and fetches the provider's signing key set.
//	@Description	Any failing dependency makes the service report degraded with 503.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	authsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	checks := &authsdk.HealthChecks{
		Database:    probe(ctx, h.Store.Ping),
		TrustAnchor: probe(ctx, h.Keys.CheckKeySet),
	}

	if checks.Database != "ok" || checks.TrustAnchor != "ok" {
		httpx.WriteJSON(w, http.StatusServiceUnavailable, h.response("degraded", checks))
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.response("ok", checks))
}

func (h *HealthHandler) response(status string, checks *authsdk.HealthChecks) authsdk.HealthResponse {
	return authsdk.HealthResponse{
		Status:  status,
		Uptime:  time.Since(h.StartTime).String(),
		Version: h.Version,
		Checks:  checks,
	}
}

func probe(ctx context.Context, check func(context.Context) error) string {
	if err := check(ctx); err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}
