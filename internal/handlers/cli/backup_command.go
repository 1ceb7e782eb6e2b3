package cli

import (
	"fmt"

	"github.com/AntonioJCosta/dosalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// newBackupCommand creates the 'backup' subcommand.
func newBackupCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Copy the alias file to a timestamped backup.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd)
			if err != nil {
				return err
			}
			path, err := svc.Backup()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor("Backup written to ")+ui.DetailColor(path))
			return nil
		},
	}
}

// newOpenCommand creates the 'open' subcommand.
func newOpenCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open the folder containing the alias file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.deps.Opener == nil {
				return fmt.Errorf("directory opener not initialized")
			}
			path, err := a.aliasFilePath()
			if err != nil {
				return err
			}
			return a.deps.Opener.OpenContainingDirectory(path)
		},
	}
}
