package cli

import (
	"fmt"

	"github.com/AntonioJCosta/dosalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// newRenameCommand creates the 'rename' subcommand.
func newRenameCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old-name> <new-name>",
		Short: "Rename an alias, keeping its position.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd)
			if err != nil {
				return err
			}
			if err := svc.RenameAlias(args[0], args[1]); err != nil {
				return fmt.Errorf("could not rename alias: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor(fmt.Sprintf("Alias '%s' renamed to '%s'.", args[0], args[1])))
			printReloadHint(cmd)
			return nil
		},
	}
}
