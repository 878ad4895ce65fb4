// Package push provides the push command.
package push

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/pushull"
	"github.com/agentstation/pushull/internal/appcontext"
	"github.com/agentstation/pushull/internal/cmd/cmdutil"
	"github.com/agentstation/pushull/internal/cmd/output"
	"github.com/agentstation/pushull/internal/files"
	"github.com/agentstation/pushull/pkg/sync"
)

// NewCommand creates the push command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var flags *cmdutil.SyncFlags

	cmd := &cobra.Command{
		Use:     "push [domain...]",
		GroupID: "core",
		Short:   "Upload local translation files to Weblate",
		Long: `Push reads <domain>.<locale>.xlf files from the translations directory
and uploads them to the Weblate project of the configured DSN.

Missing components are created from the first uploaded file. Messages that
exist remotely but not locally are kept: they are merged into the uploaded
file.`,
		Example: `  pushull push                       # Push every local file
  pushull push messages validators   # Push two domains
  pushull push -l de,fr --commit     # Push German and French, then commit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Execute(cmd.Context(), app, flags, args, cmd.OutOrStdout())
		},
	}

	flags = cmdutil.AddSyncFlags(cmd, true)

	return cmd
}

// Execute loads the local files matching domains and writes them remotely.
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
	if bag.Len() == 0 {
		logger.Warn().Str("dir", opts.Dir).Msg("No translation files found")
	}

	provider, err := app.Provider()
	if err != nil {
		return err
	}
	provider.OnComponentCreated(func(domain string, component *pushull.Component) {
		logger.Info().Str("domain", domain).Str("component", component.Slug).Msg("Created component")
	})

	result, err := provider.Write(ctx, bag)
	if err != nil {
		return err
	}

	if opts.Commit {
		if err := commitChanges(ctx, provider, result); err != nil {
			return err
		}
	}

	return output.FormatResult(w, result, format)
}

// commitChanges commits the components touched by result.
func commitChanges(ctx context.Context, provider pushull.Provider, result *sync.Result) error {
	for _, dr := range result.Domains() {
		if !dr.HasChanges() {
			continue
		}
		if err := provider.Commit(ctx, dr.Domain); err != nil {
			return err
		}
	}
	return nil
}
