package ports

import "github.com/AntonioJCosta/dosalias/internal/core/domain/alias"

// PredefinedAliasProvider defines the interface for sourcing aliases
// from a predefined list, like a YAML file.
type PredefinedAliasProvider interface {
	// GetPredefinedAliases loads aliases from a predefined source.
	GetPredefinedAliases() ([]alias.Alias, error)
}
