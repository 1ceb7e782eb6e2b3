package cli

import (
	"fmt"
	"strconv"

	"github.com/AntonioJCosta/dosalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// newReorderCommand creates the 'reorder' subcommand.
func newReorderCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <name>...",
		Short: "Set the order of all aliases.",
		Long: `Rewrites the alias file with the aliases in the given order.
Every existing alias must be listed exactly once.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd)
			if err != nil {
				return err
			}
			if err := svc.ReorderAliases(args); err != nil {
				return fmt.Errorf("could not reorder aliases: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor(fmt.Sprintf("%d aliases reordered.", len(args))))
			return nil
		},
	}
}

// newMoveCommand creates the 'move' subcommand.
func newMoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "move <name> <position>",
		Short: "Move an alias to a position in the list (1 is first).",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[1])
			if err != nil || position < 1 {
				return fmt.Errorf("invalid position %q: must be a number starting at 1", args[1])
			}
			svc, err := a.service(cmd)
			if err != nil {
				return err
			}
			if err := svc.MoveAlias(args[0], position-1); err != nil {
				return fmt.Errorf("could not move alias: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor(fmt.Sprintf("Alias '%s' moved to position %d.", args[0], position)))
			return nil
		},
	}
}
