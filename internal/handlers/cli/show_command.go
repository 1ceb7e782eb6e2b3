package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/dosalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// newShowCommand creates the 'show' subcommand.
func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one alias and its commands.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd)
			if err != nil {
				return err
			}
			al, err := svc.GetAlias(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s=%s\n",
				ui.AliasKeywordColor("DOSKEY"),
				ui.AliasNameColor(al.Name),
				colorCommands(al.Commands))
			for i, c := range al.Commands {
				fmt.Fprintf(out, "  %s %s\n", ui.DetailColor(fmt.Sprintf("%d.", i+1)), ui.AliasCmdColor(c))
			}
			return nil
		},
	}
}

// colorCommands renders a command sequence like formatCommands, with the
// separators dimmed.
func colorCommands(commands []string) string {
	parts := make([]string, len(commands))
	for i, c := range commands {
		parts[i] = ui.AliasCmdColor(c)
	}
	return strings.Join(parts, ui.SeparatorColor(" $T "))
}
