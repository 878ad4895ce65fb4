// Package components provides commands managing remote components.
package components

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/pushull/internal/appcontext"
	"github.com/agentstation/pushull/internal/cmd/cmdutil"
	"github.com/agentstation/pushull/internal/cmd/emoji"
	"github.com/agentstation/pushull/internal/cmd/output"
)

// NewCommand creates the components command with its subcommands.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "components",
		Aliases: []string{"component"},
		GroupID: "management",
		Short:   "Manage the components of the project",
		Long: `Components lists and manages the Weblate components of the project.
Each component holds one translation domain.`,
		Example: `  pushull components list
  pushull components commit messages
  pushull components delete validators`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(NewListCommand(app))
	cmd.AddCommand(NewDeleteCommand(app))
	cmd.AddCommand(NewCommitCommand(app))

	return cmd
}

// NewListCommand creates the components list subcommand.
func NewListCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the components of the project",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := cmdutil.OutputFormat(app)
			if err != nil {
				return err
			}
			provider, err := app.Provider()
			if err != nil {
				return err
			}
			components, err := provider.Components(cmd.Context())
			if err != nil {
				return err
			}
			return output.FormatComponents(cmd.OutOrStdout(), components, format)
		},
	}
}

// NewDeleteCommand creates the components delete subcommand.
func NewDeleteCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <domain>",
		Aliases: []string{"rm"},
		Short:   "Delete the component of a domain with all its translations",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := app.Provider()
			if err != nil {
				return err
			}
			if err := provider.DeleteComponent(cmd.Context(), args[0]); err != nil {
				return err
			}
			app.Logger().Info().Str("domain", args[0]).Msg("Deleted component")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted component %s\n", emoji.Success, args[0])
			return err
		},
	}
}

// NewCommitCommand creates the components commit subcommand.
func NewCommitCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "commit <domain>",
		Short: "Commit pending changes of a component to its repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := app.Provider()
			if err != nil {
				return err
			}
			if err := provider.Commit(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Committed component %s\n", emoji.Success, args[0])
			return err
		},
	}
}
