//go:build windows

package autorun

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/dosalias/internal/core/ports"
	"golang.org/x/sys/windows/registry"
	"pkt.systems/pslog"
)

// RegistryConfigurator writes the AutoRun value under HKEY_CURRENT_USER.
type RegistryConfigurator struct {
	log pslog.Logger
}

// NewConfigurator creates the Windows registry configurator.
func NewConfigurator(logger pslog.Logger) ports.AutoRunConfigurator {
	return &RegistryConfigurator{log: logger}
}

// EnsureAutoRunConfigured implements the ports.AutoRunConfigurator interface.
func (r *RegistryConfigurator) EnsureAutoRunConfigured(scriptPath string) (bool, error) {
	want := HookValue(scriptPath)

	key, _, err := registry.CreateKey(registry.CURRENT_USER, KeyPath, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return false, fmt.Errorf("failed to open registry key %s: %w", KeyPath, err)
	}
	defer key.Close()

	current, _, err := key.GetStringValue(ValueName)
	switch {
	case err == nil && current == want:
		if r.log != nil {
			r.log.Debug("auto-run already configured", "value", current)
		}
		return false, nil
	case err != nil && !errors.Is(err, registry.ErrNotExist):
		return false, fmt.Errorf("failed to read %s\\%s: %w", KeyPath, ValueName, err)
	}

	if r.log != nil {
		r.log.Info("setting auto-run hook", "previous", current, "value", want)
	}
	if err := key.SetStringValue(ValueName, want); err != nil {
		return false, fmt.Errorf("failed to write %s\\%s: %w", KeyPath, ValueName, err)
	}
	return true, nil
}
