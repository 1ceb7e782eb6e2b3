package oscommand

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/AntonioJCosta/dosalias/internal/core/ports"
)

// OSCommandExecutor implements the CommandExecutor interface by running programs directly.
type OSCommandExecutor struct{}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{}
}

// Execute runs name with args and returns its stdout, stderr, and any error.
func (e *OSCommandExecutor) Execute(name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()

	if err != nil {
		// Include stderr in the error message for better diagnostics.
		return stdout, stderr, fmt.Errorf("executing '%s': %w. Stderr: %s", name, err, strings.TrimSpace(stderr))
	}
	return stdout, stderr, nil
}
