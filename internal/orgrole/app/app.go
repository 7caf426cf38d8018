package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	httpapi "github.com/aussiebroadwan/orgrole/internal/orgrole/http"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/store"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/store/drivers/postgres"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/store/drivers/sqlite"
	"github.com/aussiebroadwan/orgrole/internal/orgrole/trust"
	"github.com/aussiebroadwan/orgrole/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application is the orgrole HTTP service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	verifier *trust.Verifier

	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from cfg and installs it as the
// default. A nil out writes to stdout.
func NewLogger(cfg Config, out io.Writer) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "orgrole",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Output:  out,
	})
}

// New validates cfg and initializes the store, the token verifier and the
// HTTP server. A misconfigured trust anchor is reported here, before any
// request is served.
func New(ctx context.Context, cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg:    cfg,
		logger: NewLogger(cfg, nil),
	}

	db, err := OpenStore(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	app.db = db
	app.logger.Info("database ready", "driver", cfg.Database.Driver)

	anchor := cfg.Trust.Anchor()
	verifier, err := trust.NewRemoteVerifier(ctx, anchor)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize token verifier: %w", err)
	}
	app.verifier = verifier
	app.logger.Info("trust anchor configured",
		"issuer", anchor.IssuerDomain,
		"application_id", anchor.ApplicationID,
		"jwks_url", anchor.KeySetURL(),
	)
	if len(cfg.Admin.Operators) == 0 {
		app.logger.Warn("no admin operators configured, POST /v1/admin/restore-admin will refuse every caller")
	}

	app.initHTTP()
	return app, nil
}

// OpenStore connects to the configured profile store and applies pending
// migrations.
func OpenStore(ctx context.Context, cfg DatabaseConfig) (store.Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		db  store.Store
		err error
	)
	switch cfg.Driver {
	case DriverPostgres:
		db, err = postgres.NewStore(ctx, cfg.DSN)
	default:
		db, err = sqlite.NewStore(cfg.DSN)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return db, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *Application) Run(ctx context.Context) error {
	app.logger.Info("orgrole service starting", "port", app.cfg.Server.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		app.logger.Info("shutdown signal received")
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down orgrole service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.Server.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("orgrole service stopped")
	return nil
}

// Handler exposes the HTTP handler, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.verifier, app.db, app.logger, httpapi.Options{
		BuildVersion: BuildVersion,
		Operators:    app.cfg.Admin.Operators,
	})
	router.ApplyRoutes()
	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
