package cli

import (
	"fmt"
	"strconv"

	"github.com/AntonioJCosta/dosalias/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// newListCommand creates the 'list' subcommand.
func newListCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List aliases in file order.",
		Long:    `Displays every alias in the alias file, in the order cmd.exe defines them.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, a)
		},
	}
	return cmd
}

func runListCmd(cmd *cobra.Command, a *app) error {
	svc, err := a.service(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	aliases := svc.ListAliases()

	if len(aliases) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No aliases defined in "+svc.AliasFilePath()+"."))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Aliases (%d) in %s:", len(aliases), svc.AliasFilePath())))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Alias Name", "Commands"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for i, al := range aliases {
		table.Append([]string{strconv.Itoa(i + 1), al.Name, formatCommands(al.Commands)})
	}
	table.Render()
	return nil
}
