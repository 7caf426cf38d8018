package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/orgrole/internal/orgrole/catalog"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/service"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/store"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/telemetry"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/trust"
	"github.com/aussiebroadwan/orgrole/pkg/httpx"
	"github.com/aussiebroadwan/orgrole/pkg/jwtx"
	"github.com/aussiebroadwan/orgrole/pkg/slogx"

	_ "github.com/aussiebroadwan/orgrole/api/orgrole" // Swagger docs
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// KeySetChecker reports whether the provider's signing keys can be fetched.
type KeySetChecker interface {
	CheckKeySet(ctx context.Context) error
}

// Options configures a Router.
type Options struct {
	BuildVersion string

	// Operators are the token subjects allowed to call /v1/admin routes.
	// Tenant roles never grant access there.
	Operators []string
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	keys         KeySetChecker
	buildVersion string
	operators    []string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	RolesService    *service.RolesService
	RepairService   *service.RepairService
	IdentityService *service.IdentityService
}

// NewRouter wires the services over st. Verification results of v are
// counted on /metrics and /readyz probes v's key set.
func NewRouter(
	v *trust.Verifier,
	st store.Store,
	logger *slog.Logger,
	opts Options,
) *Router {
	roles := &service.RolesService{Store: st}

	r := &Router{
		Mux:             http.NewServeMux(),
		verifier:        instrumentVerifier(v),
		keys:            v,
		buildVersion:    opts.BuildVersion,
		operators:       opts.Operators,
		startTime:       time.Now(),
		logger:          logger,
		store:           st,
		RolesService:    roles,
		RepairService:   &service.RepairService{Store: st},
		IdentityService: &service.IdentityService{Store: st, Roles: roles},
	}

	// Instrument sits directly on the mux so it can read the matched pattern.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		telemetry.Instrument,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerRoles()
	r.registerIdentity()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Organization Role Service API
//	@version		0.1.0
//	@description	Verifies externally issued identity tokens, resolves organizational roles and exposes
//	@description	an admin-only repair operation that restores a user's admin role by email.
//	@description
//	@description				Tokens are verified against the identity provider's published JWKS.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/orgrole
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Identity token issued by the provider. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authenticated verifies the bearer token, applies the per-user limit and
// only then resolves the caller against the store. Gates run last.
func (r *Router) authenticated(h http.Handler, limit httpx.RateLimitConfig, gates ...httpx.Middleware) http.Handler {
	chain := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(limit),
		CallerMiddleware(r.IdentityService),
	}
	return httpx.Chain(h, append(chain, gates...)...)
}

func (r *Router) registerRoles() {
	list := &RolesHandler{RolesService: r.RolesService}
	sync := &SyncRolesHandler{RolesService: r.RolesService}

	// GET /v1/roles - any verified caller, own organization only
	r.Mux.Handle("GET /v1/roles",
		r.authenticated(list, httpx.ModerateLimit),
	)

	// PUT /v1/orgs/{org}/roles - org:admin of that organization
	r.Mux.Handle("PUT /v1/orgs/{org}/roles",
		r.authenticated(sync, httpx.StrictLimit,
			httpx.RequireAnyRole(catalog.RoleAdmin),
		),
	)
}

func (r *Router) registerIdentity() {
	h := &WhoAmIHandler{}

	r.Mux.Handle("GET /v1/whoami",
		r.authenticated(h, httpx.ModerateLimit),
	)
}

func (r *Router) registerAdmin() {
	h := &RestoreAdminHandler{RepairService: r.RepairService}

	// POST /v1/admin/restore-admin - deployment operators only; tenant roles do not apply
	r.Mux.Handle("POST /v1/admin/restore-admin",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.StrictLimit),
			httpx.RequireSubject(r.operators...),
		),
	)
}

func (r *Router) registerSystem() {
	health := &HealthHandler{
		StartTime: r.startTime,
		Version:   r.buildVersion,
		Store:     r.store,
		Keys:      r.keys,
	}

	// Health check endpoints - public limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(http.HandlerFunc(health.Livez),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(http.HandlerFunc(health.Readyz),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
