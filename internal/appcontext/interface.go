// Package appcontext provides the shared application context interface
// used by all commands.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/pushull"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/pushull/app implements it; tests use Mock.
type Interface interface {
	// Provider returns the Weblate provider, creating it lazily from the
	// configured DSN. Repeated calls return the same instance so the
	// component cache survives across a command.
	Provider() (pushull.Provider, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml, markdown).
	OutputFormat() string

	// DefaultLocale returns the source locale of the project.
	DefaultLocale() string

	// Locales returns the configured target locales.
	Locales() []string

	// TranslationsDir returns the directory holding local XLIFF files.
	TranslationsDir() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
