package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/dosalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// newImportCommand creates the 'import' subcommand.
func newImportCommand(a *app) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import aliases from a YAML file.",
		Long: `Adds the aliases listed in a YAML file to the end of the alias file.

  - alias: gs
    commands: ["git status"]
  - alias: up
    commands: ["cd ..", "dir"]

Aliases that already exist are skipped unless --overwrite is given, in which
case their commands are replaced and their position is kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.deps.NewImportProvider == nil {
				return fmt.Errorf("import provider not initialized")
			}
			provider, err := a.deps.NewImportProvider(args[0])
			if err != nil {
				return err
			}
			svc, err := a.service(cmd)
			if err != nil {
				return err
			}
			result, err := svc.ImportAliases(provider, overwrite)
			if err != nil {
				return fmt.Errorf("could not import aliases: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(result.Added)+len(result.Overwritten) == 0 && len(result.Skipped) == 0 {
				fmt.Fprintln(out, ui.InfoColor("No aliases found in "+args[0]+"."))
				return nil
			}
			if len(result.Added) > 0 {
				fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("%d alias(es) added: %s", len(result.Added), strings.Join(result.Added, ", "))))
			}
			if len(result.Overwritten) > 0 {
				fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("%d alias(es) replaced: %s", len(result.Overwritten), strings.Join(result.Overwritten, ", "))))
			}
			if len(result.Skipped) > 0 {
				fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("%d alias(es) skipped because they already exist: %s", len(result.Skipped), strings.Join(result.Skipped, ", "))))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace the commands of aliases that already exist.")
	return cmd
}
