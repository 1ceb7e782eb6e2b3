package cli

import (
	"fmt"
	"path/filepath"

	"github.com/AntonioJCosta/dosalias/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the 'config' subcommand group.
func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change dosalias settings.",
	}
	cmd.AddCommand(newConfigShowCommand(a))
	cmd.AddCommand(newConfigSetAliasFileCommand(a))
	cmd.AddCommand(newConfigSetBackupDirCommand(a))
	return cmd
}

func newConfigShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current settings.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}
			backupDir := s.BackupDir
			if backupDir == "" {
				backupDir = "(next to the alias file)"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.HeaderColor("Settings ")+ui.DetailColor(a.deps.Settings.Path()))
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Setting", "Value"})
			table.SetAutoWrapText(false)
			table.Append([]string{"alias_file", s.AliasFile})
			table.Append([]string{"backup_dir", backupDir})
			table.Render()
			return nil
		},
	}
}

func newConfigSetAliasFileCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-alias-file <path>",
		Short: "Manage a different alias file.",
		Long: `Saves the alias file location. Run 'dosalias setup' afterwards so the
AutoRun hook points at the new file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateSetting(cmd, a, "alias_file", args[0])
		},
	}
}

func newConfigSetBackupDirCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-backup-dir <path>",
		Short: "Write backups to a directory other than the alias file's.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateSetting(cmd, a, "backup_dir", args[0])
		},
	}
}

func updateSetting(cmd *cobra.Command, a *app, key, value string) error {
	abs, err := filepath.Abs(value)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", value, err)
	}
	s, err := a.deps.Settings.Load()
	if err != nil {
		return fmt.Errorf("could not load settings: %w", err)
	}
	switch key {
	case "alias_file":
		s.AliasFile = abs
	case "backup_dir":
		s.BackupDir = abs
	}
	if err := a.deps.Settings.Save(s); err != nil {
		return fmt.Errorf("could not save settings: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor(fmt.Sprintf("%s set to ", key))+ui.DetailColor(abs))
	return nil
}
