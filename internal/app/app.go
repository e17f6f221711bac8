package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vk/bikeshare/internal/config"
	"github.com/vk/bikeshare/internal/ctxlog"
	"github.com/vk/bikeshare/internal/report"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	catalog  *config.Model
	sections []report.Section
	pageSize int

	// Replaceable in tests.
	clock     report.Clock
	sessionID func() string
}

// NewApp is the constructor for the main application. Console output goes to
// outW and diagnostics to logW. Sections default to coreSections.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, sections ...report.Section) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var paths []string
	if cfg.ConfigPath != "" {
		paths = append(paths, cfg.ConfigPath)
	}
	catalog, err := loader.Load(ctx, paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load city catalog: %w", err)
	}
	if cfg.DataDir != "" {
		logger.Debug("Data directory overridden.", "catalog", catalog.DataDir, "override", cfg.DataDir)
		catalog.DataDir = cfg.DataDir
	}
	logger.Debug("City catalog loaded.", "cities", catalog.CityNames(), "data_dir", catalog.DataDir)

	if len(sections) == 0 {
		sections = coreSections
	}
	logger.Debug("Report sections registered.", "count", len(sections))

	return &App{
		outW:      outW,
		logger:    logger,
		catalog:   catalog,
		sections:  sections,
		pageSize:  cfg.PageSize,
		sessionID: uuid.NewString,
	}, nil
}

// Catalog returns the loaded city catalog. This is primarily for testing.
func (a *App) Catalog() *config.Model {
	return a.catalog
}
