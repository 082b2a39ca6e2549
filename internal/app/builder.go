package app

import (
	"go.trai.ch/rebind/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/rebind/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/rebind/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry

	configLoader ports.ConfigLoader
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, log ports.Logger, telemetry ports.Telemetry, loader ports.ConfigLoader) *Components {
	return &Components{
		App:          app,
		Logger:       log,
		Telemetry:    telemetry,
		configLoader: loader,
	}
}

// SetConfigFile changes the configuration file name read from the workspace
// root. An empty name keeps the current one.
func (c *Components) SetConfigFile(name string) {
	if name == "" {
		return
	}
	if l, ok := c.configLoader.(*config.FileConfigLoader); ok {
		l.Filename = name
	}
}

// SetVerbose enables debug output of the logger.
func (c *Components) SetVerbose(enable bool) {
	if l, ok := c.Logger.(*logger.Logger); ok {
		l.SetVerbose(enable)
	}
}

// Close flushes and releases the telemetry recorder.
func (c *Components) Close() error {
	if c.Telemetry == nil {
		return nil
	}
	return c.Telemetry.Close()
}
