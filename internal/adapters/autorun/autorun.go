// Package autorun points the cmd.exe AutoRun registry value at the alias file.
package autorun

import (
	"strings"

	"github.com/AntonioJCosta/dosalias/internal/core/ports"
)

const (
	// KeyPath is the command processor key under HKEY_CURRENT_USER.
	KeyPath = `Software\Microsoft\Command Processor`
	// ValueName is the value cmd.exe runs on startup.
	ValueName = "AutoRun"
)

// ErrUnsupported is returned on platforms without a cmd.exe registry.
var ErrUnsupported = ports.ErrAutoRunUnsupported

// HookValue returns the AutoRun value for scriptPath. Paths with spaces are quoted
// so cmd.exe does not split them.
func HookValue(scriptPath string) string {
	if strings.ContainsAny(scriptPath, " &()") {
		return `"` + scriptPath + `"`
	}
	return scriptPath
}
