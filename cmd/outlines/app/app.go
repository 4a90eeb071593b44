// Package app provides the application context and dependency management
// for the outlines CLI. It centralizes configuration, logging, and the
// pipeline options handed to the geometry operations.
package app

import (
	"github.com/rs/zerolog"

	"github.com/glacmap/outlines/pkg/geometry"
)

// App represents the outlines application with its dependencies. It holds
// the resolved configuration and logger shared by all commands.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version string.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// pipelineOptions builds the geometry options shared by the validate and
// join commands from the resolved configuration.
func (a *App) pipelineOptions() []geometry.Option {
	opts := []geometry.Option{
		geometry.WithLogger(a.logger),
		geometry.WithRGIVersion(a.config.RGIVersion),
	}
	if a.config.Workdir != "" {
		opts = append(opts, geometry.WithWorkdir(a.config.Workdir))
	}
	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
