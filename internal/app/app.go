package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/microunit/internal/config"
	"github.com/vk/microunit/registry"
)

// App encapsulates the harness dependencies, configuration, and lifecycle.
// The run report goes to outW; structured logs go to errW so the report
// format stays clean.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	settings config.Settings
}

// NewApp is the constructor for the harness application. It returns a
// fully initialized App with its own isolated logger and a populated
// registry: the suites given explicitly, or the shared default registry
// (filled by init-time self-registration) when none are passed.
//
// A failure to load the settings file is a fatal startup error and
// panics; the entrypoint recovers it into a clean exit message.
func NewApp(outW, errW io.Writer, appConfig *Config, suites ...registry.Suite) *App {
	ctx := context.Background()

	var fileSettings config.Settings
	if appConfig.ConfigPath != "" {
		loaded, err := config.Load(ctx, appConfig.ConfigPath)
		if err != nil {
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		fileSettings = *loaded
	}

	flagSettings := config.Settings{
		Order:     appConfig.Order,
		LogLevel:  appConfig.LogLevel,
		LogFormat: appConfig.LogFormat,
	}
	settings := config.Resolve(flagSettings, fileSettings)

	logger := newLogger(settings.LogLevel, settings.LogFormat, errW)
	logger.Debug("Logger configured successfully.",
		"log_level", settings.LogLevel, "log_format", settings.LogFormat)

	reg := registry.Default()
	if len(suites) > 0 {
		reg = registry.NewRegistry()
		for _, suite := range suites {
			suite.Register(reg)
		}
		logger.Debug("Explicit suites registered.", "count", len(suites))
	}
	logger.Debug("Registry ready.", "cases", reg.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		settings: settings,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
