package oscommand

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/AntonioJCosta/dosalias/internal/core/ports"
)

// DirectoryOpener opens a file's directory in the platform file browser.
type DirectoryOpener struct {
	executor ports.CommandExecutor
	goos     string
}

// NewDirectoryOpener creates an opener for the running platform.
func NewDirectoryOpener(executor ports.CommandExecutor) ports.DirectoryOpener {
	return &DirectoryOpener{executor: executor, goos: runtime.GOOS}
}

// browserCommand returns the program used to show a directory on goos.
func browserCommand(goos string) string {
	switch goos {
	case "windows":
		return "explorer"
	case "darwin":
		return "open"
	default:
		return "xdg-open"
	}
}

// OpenContainingDirectory implements the ports.DirectoryOpener interface.
func (o *DirectoryOpener) OpenContainingDirectory(path string) error {
	dir := filepath.Dir(path)
	program := browserCommand(o.goos)
	_, _, err := o.executor.Execute(program, dir)
	if err != nil {
		// explorer.exe exits with status 1 even when it succeeds.
		var exitErr *exec.ExitError
		if o.goos == "windows" && errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil
		}
		return fmt.Errorf("failed to open %s: %w", dir, err)
	}
	return nil
}
