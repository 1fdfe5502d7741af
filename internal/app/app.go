// Package app wires the persistence engine, stores, and services together
// and owns their lifecycle.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/socialsched/socialsched/internal/cli"
	"github.com/socialsched/socialsched/internal/kv"
	kvsqlite "github.com/socialsched/socialsched/internal/kv/drivers/sqlite"
	"github.com/socialsched/socialsched/internal/service"
	"github.com/socialsched/socialsched/internal/store"
	"github.com/socialsched/socialsched/pkg/slogx"
)

const BuildVersion = "v0.1.0"

// Application bundles the wired core with its UI collaborator.
type Application struct {
	cfg    Config
	logger *slog.Logger

	engine   kv.Store
	store    *store.Store
	sessions *service.SessionManager
	auth     *service.AuthService
}

// New opens the durable store, applies migrations, and builds the
// services. Call Close when done.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "socialsched",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	engine, err := kvsqlite.NewStore(cfg.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := engine.ApplyMigrations(); err != nil {
		_ = engine.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}
	app.engine = engine

	app.store = store.New(engine, app.logger)
	app.sessions = service.NewSessionManager(app.store, app.logger).
		WithTTLs(cfg.SessionTTL, cfg.RememberTTL)
	app.auth = service.NewAuthService(app.store, app.sessions, app.logger, cfg.BcryptCost)

	return app, nil
}

// Run restores any stored session and hands control to the interactive
// front end until the user exits or ctx is cancelled.
func (app *Application) Run(ctx context.Context) error {
	ctx = slogx.WithContext(ctx, app.logger)

	app.auth.Init(ctx)
	app.logger.Info("socialsched starting", "version", BuildVersion, "db", app.cfg.DatabaseFile)

	front := cli.New(app.auth, app.store, app.logger)
	return front.Run(ctx)
}

// Close releases the underlying storage engine.
func (app *Application) Close() error {
	if app.engine == nil {
		return nil
	}
	return app.engine.Close()
}
