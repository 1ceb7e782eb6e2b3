package cli

import (
	"fmt"

	"github.com/AntonioJCosta/dosalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// newDeleteCommand creates the 'delete' subcommand.
func newDeleteCommand(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete an alias.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd)
			if err != nil {
				return err
			}
			name := args[0]
			if _, err := svc.GetAlias(name); err != nil {
				return fmt.Errorf("could not delete alias: %w", err)
			}
			if !yes {
				ok, err := confirm(cmd, fmt.Sprintf("Delete alias '%s'?", name))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), ui.InfoColor("Aborted. No aliases were deleted."))
					return nil
				}
			}
			if err := svc.DeleteAlias(name); err != nil {
				return fmt.Errorf("could not delete alias: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor(fmt.Sprintf("Alias '%s' deleted.", name)))
			printReloadHint(cmd)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking for confirmation.")
	return cmd
}
