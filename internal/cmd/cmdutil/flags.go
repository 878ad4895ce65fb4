// Package cmdutil provides shared flags and helpers for pushull commands.
package cmdutil

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/agentstation/pushull/internal/appcontext"
	"github.com/agentstation/pushull/internal/cmd/output"
	"github.com/agentstation/pushull/pkg/constants"
	"github.com/agentstation/pushull/pkg/sync"
)

// SyncFlags holds the flags shared by push, pull and delete.
type SyncFlags struct {
	Locales []string
	Dir     string
	Timeout time.Duration
	Commit  bool
}

// NewSyncFlagSet returns the flag set backing flags. withCommit adds --commit.
func NewSyncFlagSet(flags *SyncFlags, withCommit bool) *pflag.FlagSet {
	fs := pflag.NewFlagSet("sync", pflag.ContinueOnError)
	fs.StringSliceVarP(&flags.Locales, "locale", "l", nil,
		"Locales to sync (repeatable or comma separated)")
	fs.StringVarP(&flags.Dir, "dir", "d", "",
		"Translations directory (overrides config)")
	fs.DurationVar(&flags.Timeout, "run-timeout", constants.CommandTimeout,
		"Timeout of the whole run (0 disables it)")
	if withCommit {
		fs.BoolVar(&flags.Commit, "commit", false,
			"Commit the changed components to their repository afterwards")
	}
	return fs
}

// AddSyncFlags adds the sync flags to a command.
func AddSyncFlags(cmd *cobra.Command, withCommit bool) *SyncFlags {
	flags := &SyncFlags{}
	cmd.Flags().AddFlagSet(NewSyncFlagSet(flags, withCommit))
	return flags
}

// LocalesOr returns the locales given on the command line or fallback.
func (f *SyncFlags) LocalesOr(fallback []string) []string {
	if len(f.Locales) > 0 {
		return f.Locales
	}
	return fallback
}

// DirOr returns the directory given on the command line or fallback.
func (f *SyncFlags) DirOr(fallback string) string {
	if f.Dir != "" {
		return f.Dir
	}
	return fallback
}

// Options builds the run options over domains. Locales and the directory
// fall back to the configuration of app.
func (f *SyncFlags) Options(app appcontext.Interface, domains []string) *sync.Options {
	return sync.Defaults().Apply(
		sync.WithDomains(domains...),
		sync.WithLocales(f.LocalesOr(app.Locales())...),
		sync.WithDir(f.DirOr(app.TranslationsDir())),
		sync.WithTimeout(f.Timeout),
		sync.WithCommit(f.Commit),
	)
}

// RunContext bounds ctx by the run timeout of opts, if any.
func RunContext(ctx context.Context, opts *sync.Options) (context.Context, context.CancelFunc) {
	if opts.Timeout > 0 {
		return context.WithTimeout(ctx, opts.Timeout)
	}
	return context.WithCancel(ctx)
}

// OutputFormat resolves the output format of app, detecting it from the
// terminal when none is configured.
func OutputFormat(app appcontext.Interface) (output.Format, error) {
	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return "", err
	}
	if format == "" {
		return output.DetectFormat(""), nil
	}
	return format, nil
}
