package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/stellar/internal/console/http"
	"github.com/aussiebroadwan/stellar/internal/console/service"
	"github.com/aussiebroadwan/stellar/internal/console/session"
	"github.com/aussiebroadwan/stellar/internal/console/store"
	"github.com/aussiebroadwan/stellar/internal/console/store/drivers/sqlite"
	"github.com/aussiebroadwan/stellar/pkg/slogx"
	"github.com/redis/go-redis/v9"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the console: store, session store, services and the
// HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	sessions session.Store
	redis    *redis.Client // nil unless the redis session driver is used
	keys     *SessionKeys

	// Services
	auditService     *service.AuditService
	rolesService     *service.RolesService
	userService      *service.UserService
	sessionService   *service.SessionService
	authorizer       *service.Authorizer
	dashboardService *service.DashboardService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "console",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	ctx := slogx.WithContext(context.Background(), app.logger)

	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}
	if err := app.initSessions(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	keys, err := InitSessionKeys(cfg, httpapi.TokenAudience, app.logger)
	if err != nil {
		_ = app.closeBackends()
		return nil, fmt.Errorf("failed to initialize session keys: %w", err)
	}
	app.keys = keys

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the router, mostly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("console starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down console...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.closeBackends(); err != nil {
		return err
	}

	app.logger.Info("console stopped")
	return nil
}

func (app *Application) closeBackends() error {
	var errs []error
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis client", "error", err)
			errs = append(errs, err)
		}
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// initDatabase opens the in-memory database, applies migrations and seeds
// the default roles (plus demo data when enabled).
func (app *Application) initDatabase(ctx context.Context) error {
	db, err := sqlite.NewMemoryStore()
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	version, dirty, err := db.SchemaVersion()
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	app.logger.Info("database ready", "schema_version", version, "dirty", dirty)

	seed := &service.SeedService{Store: db}
	if err := seed.Seed(ctx, app.cfg.SeedDemo); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to seed database: %w", err)
	}
	return nil
}

// initSessions selects the session store driver.
func (app *Application) initSessions(ctx context.Context) error {
	switch app.cfg.SessionDriver {
	case SessionDriverRedis:
		client := redis.NewClient(&redis.Options{Addr: app.cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return fmt.Errorf("failed to reach redis at %s: %w", app.cfg.RedisAddr, err)
		}
		app.redis = client
		app.sessions = session.NewRedisStore(client, app.cfg.RedisPrefix)
		app.logger.Info("session store ready", "driver", "redis", "addr", app.cfg.RedisAddr)
	default:
		app.sessions = session.NewMemoryStore()
		app.logger.Info("session store ready", "driver", "memory")
	}
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.auditService = &service.AuditService{Store: app.db}
	app.rolesService = &service.RolesService{Store: app.db, Audit: app.auditService}
	app.userService = &service.UserService{Store: app.db, Audit: app.auditService}
	app.sessionService = &service.SessionService{
		Store:    app.db,
		Sessions: app.sessions,
		Audit:    app.auditService,
	}
	app.authorizer = &service.Authorizer{Store: app.db}
	app.dashboardService = &service.DashboardService{Store: app.db}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys.KeySet,
		app.keys.Signer,
		app.keys.Verifier,
		app.cfg.Issuer,
		BuildVersion,
		app.db,
		app.sessions,
		app.logger,
	)
	router.TokenTTL = app.cfg.TokenTTL
	router.Delay = app.cfg.ArtificialDelay

	// Wire services to router
	router.SessionService = app.sessionService
	router.UserService = app.userService
	router.RolesService = app.rolesService
	router.AuditService = app.auditService
	router.Authorizer = app.authorizer
	router.DashboardService = app.dashboardService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
