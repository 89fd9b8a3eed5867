// Package cli wires the layout engine to SQLite storage and the config file
// for the workbench command line.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/workbench/internal/cli/styles"
	"github.com/bnema/workbench/internal/infrastructure/config"
	"github.com/bnema/workbench/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/workbench/internal/logging"
)

// Options are the values of the root command flags. Empty values fall back
// to the config file.
type Options struct {
	ConfigFile  string
	DBPath      string
	WorkspaceID string
	ProfileID   string
	LogLevel    string
}

// App holds CLI dependencies.
type App struct {
	Config   *config.Config
	Manager  *config.Manager
	Settings *config.SettingsService
	Theme    *styles.Theme
	Trace    *logging.StartupTrace

	workspaceID string
	profileID   string
	db          *sqlite.LazyDB

	// Context with logger
	ctx context.Context
}

// NewApp loads the config file and prepares a lazily opened database.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager(config.WithConfigFile(opts.ConfigFile))
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logLevel := cfg.Logging.Level
	if opts.LogLevel != "" {
		logLevel = opts.LogLevel
	}
	logger := logging.NewFromConfigValues(logLevel, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	trace := logging.NewStartupTrace(&logger)
	trace.Mark("config_loaded")

	dbPath := cfg.Database.Path
	if opts.DBPath != "" {
		dbPath = opts.DBPath
	}

	workspaceID := firstNonEmpty(opts.WorkspaceID, cfg.Storage.WorkspaceID)
	profileID := firstNonEmpty(opts.ProfileID, cfg.Storage.ProfileID)

	ctx = logging.WithScope(ctx, workspaceID, profileID)
	logging.FromContext(ctx).Debug().
		Str("config_file", mgr.GetConfigFile()).
		Str("db_path", dbPath).
		Msg("cli app initialized")

	return &App{
		Config:      cfg,
		Manager:     mgr,
		Settings:    config.NewSettingsService(mgr),
		Theme:       styles.NewTheme(),
		Trace:       trace,
		workspaceID: workspaceID,
		profileID:   profileID,
		db:          sqlite.NewLazyDB(dbPath),
		ctx:         ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// DBPath returns the sqlite file layout state is stored in.
func (a *App) DBPath() string {
	return a.db.Path()
}

// WorkspaceID returns the workspace layout state is read from.
func (a *App) WorkspaceID() string {
	return a.workspaceID
}

// ProfileID returns the profile layout state is read from.
func (a *App) ProfileID() string {
	return a.profileID
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
