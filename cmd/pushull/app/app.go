// Package app provides the application context and dependency management
// for the pushull CLI. It centralizes configuration, logging and the lazily
// created Weblate provider.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/pushull"
	"github.com/agentstation/pushull/pkg/errors"
)

// App represents the pushull application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Provider instance (lazy-initialized, singleton)
	mu       sync.RWMutex
	provider pushull.Provider
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the environment
// that can be customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
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

// Version returns the version information.
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

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// DefaultLocale returns the source locale of the project.
func (a *App) DefaultLocale() string {
	return a.config.DefaultLocale
}

// Locales returns the configured target locales.
func (a *App) Locales() []string {
	return a.config.Locales
}

// TranslationsDir returns the directory holding local XLIFF files.
func (a *App) TranslationsDir() string {
	return a.config.TranslationsDir
}

// Provider returns the provider, creating it from the configured DSN on
// first use. It is thread-safe and ensures only one instance is created.
func (a *App) Provider() (pushull.Provider, error) {
	a.mu.RLock()
	if a.provider != nil {
		p := a.provider
		a.mu.RUnlock()
		return p, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.provider != nil {
		return a.provider, nil
	}

	if err := a.config.Validate(); err != nil {
		return nil, err
	}

	p, err := pushull.NewFromDSN(a.config.DSN, a.config.DefaultLocale, a.buildProviderOptions()...)
	if err != nil {
		return nil, err
	}

	a.provider = p
	return p, nil
}

// Shutdown releases the cached remote state of the provider.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.RLock()
	p := a.provider
	a.mu.RUnlock()

	if p != nil {
		p.Reset()
	}
	return nil
}

// buildProviderOptions constructs provider options from the app configuration.
func (a *App) buildProviderOptions() []pushull.Option {
	opts := []pushull.Option{
		pushull.WithLogger(a.logger),
		pushull.WithUserAgent("pushull/" + a.version),
	}

	if a.config.Timeout > 0 {
		opts = append(opts, pushull.WithTimeout(a.config.Timeout))
	}
	if a.config.InsecureHTTP {
		opts = append(opts, pushull.WithInsecureHTTP())
	}
	if a.config.SkipTLSVerify {
		opts = append(opts, pushull.WithSkipTLSVerify())
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

// WithProvider sets a custom provider instance (useful for testing).
func WithProvider(p pushull.Provider) Option {
	return func(a *App) error {
		a.provider = p
		return nil
	}
}
