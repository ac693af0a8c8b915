// Package cli provides Cobra commands for the quarterdeck gateway and its
// operator tooling.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/quarterdeckhq/quarterdeck/internal/application/usecase"
	"github.com/quarterdeckhq/quarterdeck/internal/config"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/build"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/repository"
	"github.com/quarterdeckhq/quarterdeck/internal/i18n"
	"github.com/quarterdeckhq/quarterdeck/internal/infrastructure/persistence/sqlite"
	"github.com/quarterdeckhq/quarterdeck/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	BuildInfo build.Info
	DB        *sql.DB
	Events    repository.ActionEventRepository
	Keymaps   *config.KeymapGateway
	Locales   *i18n.Provider

	// History serves the read-and-purge commands. The serve command builds
	// its own instance wired to the hub so recorded actions broadcast.
	History *usecase.ActionHistoryUseCase

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("QUARTERDECK_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logger := logging.NewFromConfigValues(logLevel, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	// The connection creates the state directory and runs migrations.
	db, err := sqlite.NewConnection(ctx, cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug().Str("db_path", cfg.History.Path).Msg("database connected")

	events := sqlite.NewActionEventRepository(db)

	locales, err := i18n.New(mgr)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("load locales: %w", err)
	}

	return &App{
		Config:  cfg,
		Manager: mgr,
		DB:      db,
		Events:  events,
		Keymaps: config.NewKeymapGateway(mgr),
		Locales: locales,
		History: usecase.NewActionHistoryUseCase(events, nil),
		ctx:     ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
