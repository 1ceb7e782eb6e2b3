package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/AntonioJCosta/dosalias/internal/adapters/autorun"
	"github.com/AntonioJCosta/dosalias/internal/adapters/oscommand"
	"github.com/AntonioJCosta/dosalias/internal/adapters/predefinedaliases"
	"github.com/AntonioJCosta/dosalias/internal/core/ports"
	"github.com/AntonioJCosta/dosalias/internal/core/services/aliasmanagement"
	"github.com/AntonioJCosta/dosalias/internal/handlers/cli"
	"github.com/AntonioJCosta/dosalias/internal/handlers/ui"
	"github.com/AntonioJCosta/dosalias/internal/repositories/aliasfile"
	"github.com/AntonioJCosta/dosalias/internal/repositories/settings"
	"pkt.systems/psi"
	"pkt.systems/pslog"
)

// Version is set at build time
var Version = "dev"

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole, MinLevel: pslog.InfoLevel}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	appDir, err := settings.DefaultAppDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error initializing settings: %v", err)))
		return 1
	}
	settingsStore, err := settings.NewJSONStore(appDir, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error initializing settings: %v", err)))
		return 1
	}

	deps := cli.Dependencies{
		Settings: settingsStore,
		AutoRun:  autorun.NewConfigurator(logger),
		Opener:   oscommand.NewDirectoryOpener(oscommand.NewOSCommandExecutor()),
		NewService: func(ctx context.Context, aliasFile, backupDir string) (ports.AliasManagementService, error) {
			svcLog := pslog.Ctx(ctx)
			accessor, err := aliasfile.NewAliasFileAccessor(aliasFile, backupDir, svcLog)
			if err != nil {
				return nil, err
			}
			return aliasmanagement.NewService(accessor, svcLog)
		},
		NewImportProvider: predefinedaliases.NewYAMLProvider,
	}

	rootCmd := cli.NewRootCommand(Version, deps)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).Debug("dosalias command failed", "err", err)
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		return 1
	}
	return 0
}
