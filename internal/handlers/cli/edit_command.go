package cli

import (
	"fmt"

	"github.com/AntonioJCosta/dosalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// newEditCommand creates the 'edit' subcommand.
func newEditCommand(a *app) *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "edit <name> [command]...",
		Short: "Replace the commands of an alias.",
		Long: `Replaces the commands of an existing alias. The alias keeps its position.
With --stdin, commands are read one per line from standard input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commands, err := commandsFromArgsOrStdin(cmd, args[1:], fromStdin)
			if err != nil {
				return err
			}
			svc, err := a.service(cmd)
			if err != nil {
				return err
			}
			if err := svc.SetCommands(args[0], commands); err != nil {
				return fmt.Errorf("could not edit alias: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor(fmt.Sprintf("Alias '%s' updated.", args[0])))
			printReloadHint(cmd)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read commands from standard input, one per line.")
	return cmd
}
