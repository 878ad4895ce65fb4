// Package remove provides the delete command.
package remove

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/pushull/internal/appcontext"
	"github.com/agentstation/pushull/internal/cmd/cmdutil"
	"github.com/agentstation/pushull/internal/cmd/output"
	"github.com/agentstation/pushull/internal/files"
)

// NewCommand creates the delete command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var flags *cmdutil.SyncFlags

	cmd := &cobra.Command{
		Use:     "delete [domain...]",
		Aliases: []string{"rm"},
		GroupID: "core",
		Short:   "Delete the remote units of local messages",
		Long: `Delete reads the local translation files and removes the matching
units from Weblate. Components and translations are never created: domains
or locales missing remotely are skipped.`,
		Example: `  pushull delete messages -l de      # Delete the German messages units
  pushull delete -d ./obsolete       # Delete every message found in ./obsolete`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Execute(cmd.Context(), app, flags, args, cmd.OutOrStdout())
		},
	}

	flags = cmdutil.AddSyncFlags(cmd, false)

	return cmd
}

// Execute loads the local files matching domains and deletes their units remotely.
func Execute(ctx context.Context, app appcontext.Interface, flags *cmdutil.SyncFlags, domains []string, w io.Writer) error {
	logger := app.Logger()

	format, err := cmdutil.OutputFormat(app)
	if err != nil {
		return err
	}

	opts := flags.Options(app, domains)
	if err := opts.Validate(true); err != nil {
		return err
	}
	ctx, cancel := cmdutil.RunContext(ctx, opts)
	defer cancel()

	bag, err := files.Load(opts.Dir, opts.Domains, opts.Locales)
	if err != nil {
		return err
	}

	provider, err := app.Provider()
	if err != nil {
		return err
	}
	provider.OnUnitDeleted(func(domain, locale, key string) {
		logger.Debug().Str("domain", domain).Str("locale", locale).Str("key", key).Msg("Deleted unit")
	})

	result, err := provider.Delete(ctx, bag)
	if err != nil {
		return err
	}

	return output.FormatResult(w, result, format)
}
