package ports

import "github.com/AntonioJCosta/dosalias/internal/core/domain/alias"

// ImportResult summarizes an import of predefined aliases.
type ImportResult struct {
	Added       []string
	Overwritten []string
	Skipped     []string
}

// SetupResult reports what Setup changed.
type SetupResult struct {
	AliasFile      string
	AutoRunChanged bool
}

// AliasManagementService defines the contract for managing DOSKEY aliases.
// Every mutating method persists the full alias file before returning.
type AliasManagementService interface {
	// ListAliases returns all aliases in canonical order.
	ListAliases() []alias.Alias

	// GetAlias returns the commands of a single alias.
	GetAlias(name string) (alias.Alias, error)

	AddAlias(name string, commands []string) error
	RenameAlias(oldName, newName string) error
	DeleteAlias(name string) error

	// ReorderAliases replaces the canonical order. The names must match the current set exactly.
	ReorderAliases(names []string) error

	// MoveAlias moves an alias to a zero-based position, shifting the others.
	MoveAlias(name string, index int) error

	SetCommands(name string, commands []string) error

	// ImportAliases adds aliases from a provider. Existing names are skipped unless overwrite is set,
	// in which case their commands are replaced in place.
	ImportAliases(provider PredefinedAliasProvider, overwrite bool) (ImportResult, error)

	// Backup copies the alias file to a timestamped sibling.
	Backup() (string, error)

	// Setup makes sure the alias file exists and the shell auto-run hook points at it.
	Setup(autorun AutoRunConfigurator) (SetupResult, error)

	// AliasFilePath returns the managed file.
	AliasFilePath() string
}
