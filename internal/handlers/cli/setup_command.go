package cli

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/dosalias/internal/core/ports"
	"github.com/AntonioJCosta/dosalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// newSetupCommand creates the 'setup' subcommand.
func newSetupCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Create the alias file and register it with cmd.exe.",
		Long: `Creates the alias file if it does not exist and sets
HKCU\Software\Microsoft\Command Processor\AutoRun to run it in every new cmd.exe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			result, err := svc.Setup(a.deps.AutoRun)
			if errors.Is(err, ports.ErrAutoRunUnsupported) {
				fmt.Fprintln(out, ui.InfoColor("Alias file ready: ")+ui.DetailColor(result.AliasFile))
				fmt.Fprintln(out, ui.WarningColor("The AutoRun hook can only be set on Windows; skipped."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.InfoColor("Alias file ready: ")+ui.DetailColor(result.AliasFile))
			if result.AutoRunChanged {
				fmt.Fprintln(out, ui.SuccessColor("AutoRun hook updated. New cmd.exe windows will load your aliases."))
			} else {
				fmt.Fprintln(out, ui.InfoColor("AutoRun hook already points at the alias file."))
			}
			return nil
		},
	}
}
