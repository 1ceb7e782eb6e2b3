package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/dosalias/internal/core/ports"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"
)

// ServiceFactory builds the alias management service for a resolved alias file.
type ServiceFactory func(ctx context.Context, aliasFile, backupDir string) (ports.AliasManagementService, error)

// Dependencies are the collaborators the commands need.
type Dependencies struct {
	Settings   ports.SettingsStore
	AutoRun    ports.AutoRunConfigurator
	Opener     ports.DirectoryOpener
	NewService ServiceFactory
	// NewImportProvider opens an alias list for 'import'.
	NewImportProvider func(path string) (ports.PredefinedAliasProvider, error)
}

// app resolves settings and builds the service on first use, so commands that
// only touch settings never read the alias file.
type app struct {
	deps          Dependencies
	aliasFileFlag string
	svc           ports.AliasManagementService
}

func (a *app) settings() (ports.Settings, error) {
	s, err := a.deps.Settings.Load()
	if err != nil {
		return ports.Settings{}, fmt.Errorf("could not load settings: %w", err)
	}
	if a.aliasFileFlag != "" {
		s.AliasFile = a.aliasFileFlag
	}
	return s, nil
}

func (a *app) aliasFilePath() (string, error) {
	s, err := a.settings()
	if err != nil {
		return "", err
	}
	return s.AliasFile, nil
}

func (a *app) service(cmd *cobra.Command) (ports.AliasManagementService, error) {
	if a.svc != nil {
		return a.svc, nil
	}
	s, err := a.settings()
	if err != nil {
		return nil, err
	}
	pslog.Ctx(cmd.Context()).Debug("using alias file", "path", s.AliasFile)
	svc, err := a.deps.NewService(cmd.Context(), s.AliasFile, s.BackupDir)
	if err != nil {
		return nil, fmt.Errorf("could not open alias file %s: %w", s.AliasFile, err)
	}
	a.svc = svc
	return svc, nil
}

// NewRootCommand builds the dosalias command tree.
func NewRootCommand(version string, deps Dependencies) *cobra.Command {
	a := &app{deps: deps}

	rootCmd := &cobra.Command{
		Use:   "dosalias",
		Short: "dosalias manages the DOSKEY aliases cmd.exe loads on startup.",
		Long: `dosalias keeps your cmd.exe DOSKEY aliases in a single alias file and
points the command processor's AutoRun hook at it, so every new shell has them.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps.Settings == nil {
				return fmt.Errorf("settings store not initialized for command %s", cmd.Name())
			}
			if deps.NewService == nil {
				return fmt.Errorf("alias management service not initialized for command %s", cmd.Name())
			}
			if a.aliasFileFlag != "" {
				abs, err := filepath.Abs(a.aliasFileFlag)
				if err != nil {
					return fmt.Errorf("invalid --alias-file %q: %w", a.aliasFileFlag, err)
				}
				a.aliasFileFlag = abs
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.aliasFileFlag, "alias-file", "", "Alias file to manage (overrides the saved setting).")

	rootCmd.AddCommand(newListCommand(a))
	rootCmd.AddCommand(newShowCommand(a))
	rootCmd.AddCommand(newAddCommand(a))
	rootCmd.AddCommand(newRenameCommand(a))
	rootCmd.AddCommand(newDeleteCommand(a))
	rootCmd.AddCommand(newEditCommand(a))
	rootCmd.AddCommand(newReorderCommand(a))
	rootCmd.AddCommand(newMoveCommand(a))
	rootCmd.AddCommand(newImportCommand(a))
	rootCmd.AddCommand(newSetupCommand(a))
	rootCmd.AddCommand(newBackupCommand(a))
	rootCmd.AddCommand(newOpenCommand(a))
	rootCmd.AddCommand(newConfigCommand(a))

	return rootCmd
}

// formatCommands renders a command sequence the way it appears in the alias file.
func formatCommands(commands []string) string {
	return strings.Join(commands, " $T ")
}
