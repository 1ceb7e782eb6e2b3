//go:build !windows

package autorun

import (
	"github.com/AntonioJCosta/dosalias/internal/core/ports"
	"pkt.systems/pslog"
)

// UnsupportedConfigurator is used where there is no cmd.exe registry.
type UnsupportedConfigurator struct {
	log pslog.Logger
}

// NewConfigurator returns a configurator that always reports ErrUnsupported.
func NewConfigurator(logger pslog.Logger) ports.AutoRunConfigurator {
	return &UnsupportedConfigurator{log: logger}
}

// EnsureAutoRunConfigured implements the ports.AutoRunConfigurator interface.
func (u *UnsupportedConfigurator) EnsureAutoRunConfigured(scriptPath string) (bool, error) {
	if u.log != nil {
		u.log.Debug("auto-run hook skipped", "script", scriptPath)
	}
	return false, ErrUnsupported
}
