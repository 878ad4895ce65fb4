// Package constants provides shared constants used throughout the pushull codebase.
// This includes timeouts, file permissions, remote naming rules and other values
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the translation server
	DefaultHTTPTimeout = 30 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute

	// ShutdownTimeout bounds graceful shutdown after a failed command
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Remote naming constants
const (
	// Scheme is the DSN scheme understood by the provider factory
	Scheme = "pushull"

	// GlossarySlug is the reserved component slug Weblate creates for every project.
	// It is structural and never holds user messages.
	GlossarySlug = "glossary"

	// DomainDotPlaceholder replaces literal dots of a domain name in remote slugs,
	// since dots are significant in the server's URL routing.
	DomainDotPlaceholder = "_dot_"

	// IntlDomainSuffix marks ICU message format domains (messages+intl-icu).
	IntlDomainSuffix = "+intl-icu"

	// FileFormatXLIFF is the Weblate file_format value for uploaded templates
	FileFormatXLIFF = "xliff"

	// XLIFFExtension is the extension of translation files on both sides
	XLIFFExtension = ".xlf"

	// DefaultLocale is used when no default locale is configured
	DefaultLocale = "en"

	// DefaultTranslationsDir is where local catalogs live unless configured
	DefaultTranslationsDir = "translations"
)

// Upload behaviour for the translation file endpoint
const (
	// UploadMethodReplace replaces the remote translation with the uploaded file
	UploadMethodReplace = "replace"

	// UploadFuzzyProcess keeps fuzzy strings as needing edit
	UploadFuzzyProcess = "process"
)
