package ports

import "errors"

// ErrAutoRunUnsupported is returned where the platform has no command processor auto-run hook.
var ErrAutoRunUnsupported = errors.New("auto-run hook is only supported on Windows")

/*
AutoRunConfigurator points the command processor's auto-run hook at the alias
file so new shells load the aliases. Implementations are platform specific.
*/
type AutoRunConfigurator interface {
	// EnsureAutoRunConfigured sets the hook to scriptPath if it is missing or different.
	// It reports whether anything was changed.
	EnsureAutoRunConfigured(scriptPath string) (bool, error)
}
