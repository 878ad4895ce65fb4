// Package pull provides the pull command.
package pull

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/pushull/internal/appcontext"
	"github.com/agentstation/pushull/internal/cmd/cmdutil"
	"github.com/agentstation/pushull/internal/cmd/output"
	"github.com/agentstation/pushull/internal/files"
	"github.com/agentstation/pushull/pkg/errors"
	"github.com/agentstation/pushull/pkg/xliff"
)

// NewCommand creates the pull command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var flags *cmdutil.SyncFlags

	cmd := &cobra.Command{
		Use:     "pull [domain...]",
		GroupID: "core",
		Short:   "Download translations from Weblate",
		Long: `Pull downloads the translations of every requested domain and locale
and writes them as <domain>.<locale>.xlf into the translations directory.

Without domains every component of the project is pulled. Locales come from
--locale or the configured locales.`,
		Example: `  pushull pull -l de,fr              # Pull every component
  pushull pull messages -l de        # Pull one domain
  pushull pull -l de -o markdown     # Print the written files as markdown`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Execute(cmd.Context(), app, flags, args, cmd.OutOrStdout())
		},
	}

	flags = cmdutil.AddSyncFlags(cmd, false)

	return cmd
}

// Execute reads domains for the requested locales and saves them locally.
func Execute(ctx context.Context, app appcontext.Interface, flags *cmdutil.SyncFlags, domains []string, w io.Writer) error {
	format, err := cmdutil.OutputFormat(app)
	if err != nil {
		return err
	}

	opts := flags.Options(app, domains)
	if len(opts.Locales) == 0 {
		return &errors.ValidationError{
			Field:   "locale",
			Message: "no locales given; use --locale or set PUSHULL_LOCALES",
		}
	}
	if err := opts.Validate(false); err != nil {
		return err
	}
	ctx, cancel := cmdutil.RunContext(ctx, opts)
	defer cancel()

	provider, err := app.Provider()
	if err != nil {
		return err
	}

	bag, err := provider.Read(ctx, opts.Domains, opts.Locales)
	if err != nil {
		return err
	}

	written, err := files.Save(opts.Dir, bag, xliff.EncodeOptions{
		DefaultLocale: app.DefaultLocale(),
	})
	if err != nil {
		return err
	}
	app.Logger().Info().Int("files", len(written)).Msg("Pull completed")

	return output.FormatFiles(w, written, format)
}
