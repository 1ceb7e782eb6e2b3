package cli

import (
	"fmt"

	"github.com/AntonioJCosta/dosalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// newAddCommand creates the 'add' subcommand.
func newAddCommand(a *app) *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "add <name> [command]...",
		Short: "Add an alias at the end of the list.",
		Long: `Adds a new alias. Each command argument becomes one chained command
(joined with $T in the alias file). Quote commands that contain spaces:

  dosalias add gs "git status"
  dosalias add up "cd .." "dir"

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
			if err := svc.AddAlias(args[0], commands); err != nil {
				return fmt.Errorf("could not add alias: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor(fmt.Sprintf("Alias '%s' added.", args[0])))
			printReloadHint(cmd)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read commands from standard input, one per line.")
	return cmd
}
