// Package sync provides options and results of push, pull and delete runs.
package sync

import (
	"os"
	"time"

	"golang.org/x/text/language"

	"github.com/agentstation/pushull/pkg/errors"
)

// Options controls a run started from the command line.
type Options struct {
	Domains []string      // Domains to process (empty means all)
	Locales []string      // Locales to process (empty means all found locally, or the default locale on pull)
	Dir     string        // Directory holding the local XLIFF files
	Timeout time.Duration // Timeout for the entire run, zero means none
	Commit  bool          // Commit touched components after a successful push
}

// Option is a function that configures Options.
type Option func(*Options)

// Defaults returns the default options.
func Defaults() *Options {
	return &Options{
		Dir: "translations",
	}
}

// Apply applies the given options.
func (o *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Validate checks that the options are usable. requireDir demands that Dir exists.
func (o *Options) Validate(requireDir bool) error {
	if o.Timeout < 0 {
		return &errors.ValidationError{
			Field:   "Timeout",
			Value:   o.Timeout,
			Message: "timeout must be non-negative",
		}
	}

	for _, locale := range o.Locales {
		if _, err := language.Parse(locale); err != nil {
			return &errors.ValidationError{
				Field:   "Locales",
				Value:   locale,
				Message: "invalid locale " + locale,
			}
		}
	}

	if o.Dir == "" {
		return &errors.ValidationError{Field: "Dir", Message: "translations directory is not set"}
	}
	if requireDir {
		info, err := os.Stat(o.Dir)
		if err != nil || !info.IsDir() {
			return &errors.ValidationError{
				Field:   "Dir",
				Value:   o.Dir,
				Message: "translations directory " + o.Dir + " does not exist",
			}
		}
	}
	return nil
}

// WithDomains restricts the run to domains.
func WithDomains(domains ...string) Option {
	return func(o *Options) {
		o.Domains = domains
	}
}

// WithLocales restricts the run to locales.
func WithLocales(locales ...string) Option {
	return func(o *Options) {
		o.Locales = locales
	}
}

// WithDir sets the translations directory.
func WithDir(dir string) Option {
	return func(o *Options) {
		o.Dir = dir
	}
}

// WithTimeout sets the run timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}

// WithCommit enables committing components after a push.
func WithCommit(commit bool) Option {
	return func(o *Options) {
		o.Commit = commit
	}
}
