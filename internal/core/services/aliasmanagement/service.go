package aliasmanagement

import (
	"errors"
	"fmt"
	"time"

	"github.com/AntonioJCosta/dosalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/dosalias/internal/core/ports"
	"pkt.systems/pslog"
)

// ErrInvalidPosition is returned by MoveAlias for an index outside the list.
var ErrInvalidPosition = errors.New("position out of range")

type service struct {
	aliasFile ports.AliasFileAccessor
	aliases   *alias.Collection
	log       pslog.Logger
	now       func() time.Time
}

// NewService creates a new alias management service and loads the alias file once.
// It panics if the aliasFile accessor is nil.
func NewService(aliasFile ports.AliasFileAccessor, logger pslog.Logger) (ports.AliasManagementService, error) {
	if aliasFile == nil {
		panic("aliasFile cannot be nil")
	}
	aliases, err := aliasFile.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load aliases: %w", err)
	}
	return &service{
		aliasFile: aliasFile,
		aliases:   aliases,
		log:       logger,
		now:       time.Now,
	}, nil
}

// mutate applies change to a copy of the aliases, persists the copy and only then
// makes it current. A rejected change or a failed save leaves the service unchanged.
func (s *service) mutate(op string, change func(next *alias.Collection) error) error {
	next := s.aliases.Clone()
	if err := change(next); err != nil {
		return err
	}
	if err := s.aliasFile.Save(next); err != nil {
		return fmt.Errorf("failed to save aliases after %s: %w", op, err)
	}
	s.aliases = next
	if s.log != nil {
		s.log.Debug("aliases updated", "op", op, "aliases", next.Len())
	}
	return nil
}

// ListAliases returns all aliases in canonical order.
func (s *service) ListAliases() []alias.Alias {
	return s.aliases.All()
}

// GetAlias returns a single alias.
func (s *service) GetAlias(name string) (alias.Alias, error) {
	cmds, err := s.aliases.Get(name)
	if err != nil {
		return alias.Alias{}, err
	}
	return alias.Alias{Name: name, Commands: cmds}, nil
}

// AddAlias appends a new alias.
func (s *service) AddAlias(name string, commands []string) error {
	return s.mutate("add", func(next *alias.Collection) error {
		return next.Add(name, commands)
	})
}

// RenameAlias renames an alias, keeping its position.
func (s *service) RenameAlias(oldName, newName string) error {
	return s.mutate("rename", func(next *alias.Collection) error {
		return next.Rename(oldName, newName)
	})
}

// DeleteAlias removes an alias.
func (s *service) DeleteAlias(name string) error {
	return s.mutate("delete", func(next *alias.Collection) error {
		return next.Delete(name)
	})
}

// ReorderAliases replaces the canonical order.
func (s *service) ReorderAliases(names []string) error {
	return s.mutate("reorder", func(next *alias.Collection) error {
		return next.Reorder(names)
	})
}

// MoveAlias moves name to index and shifts the aliases in between.
func (s *service) MoveAlias(name string, index int) error {
	from := s.aliases.Index(name)
	if from < 0 {
		return fmt.Errorf("%w: %q", alias.ErrNotFound, name)
	}
	if index < 0 || index >= s.aliases.Len() {
		return fmt.Errorf("%w: %d (have %d aliases)", ErrInvalidPosition, index, s.aliases.Len())
	}
	order := moveName(s.aliases.Names(), from, index)
	return s.ReorderAliases(order)
}

// SetCommands replaces the commands of an alias in place.
func (s *service) SetCommands(name string, commands []string) error {
	return s.mutate("edit", func(next *alias.Collection) error {
		return next.SetCommands(name, commands)
	})
}

// ImportAliases adds every alias the provider returns in a single save.
func (s *service) ImportAliases(provider ports.PredefinedAliasProvider, overwrite bool) (ports.ImportResult, error) {
	var result ports.ImportResult
	if provider == nil {
		return result, fmt.Errorf("predefined alias provider is not initialized")
	}
	incoming, err := provider.GetPredefinedAliases()
	if err != nil {
		return result, fmt.Errorf("failed to load predefined aliases: %w", err)
	}

	err = s.mutate("import", func(next *alias.Collection) error {
		for _, a := range incoming {
			if !next.Has(a.Name) {
				if err := next.Add(a.Name, a.Commands); err != nil {
					return fmt.Errorf("cannot import alias %q: %w", a.Name, err)
				}
				result.Added = append(result.Added, a.Name)
				continue
			}
			if !overwrite {
				result.Skipped = append(result.Skipped, a.Name)
				continue
			}
			if err := next.SetCommands(a.Name, a.Commands); err != nil {
				return fmt.Errorf("cannot import alias %q: %w", a.Name, err)
			}
			result.Overwritten = append(result.Overwritten, a.Name)
		}
		return nil
	})
	if err != nil {
		return ports.ImportResult{}, err
	}
	return result, nil
}

// Backup copies the alias file to a timestamped sibling.
func (s *service) Backup() (string, error) {
	path, err := s.aliasFile.Backup(s.now())
	if err != nil {
		return "", fmt.Errorf("failed to back up aliases: %w", err)
	}
	return path, nil
}

// Setup creates the alias file if needed and points the auto-run hook at it.
func (s *service) Setup(autorun ports.AutoRunConfigurator) (ports.SetupResult, error) {
	result := ports.SetupResult{AliasFile: s.aliasFile.Path()}
	if err := s.aliasFile.EnsureExists(); err != nil {
		return result, fmt.Errorf("failed to create alias file: %w", err)
	}
	if autorun == nil {
		return result, fmt.Errorf("auto-run configurator is not initialized")
	}
	changed, err := autorun.EnsureAutoRunConfigured(s.aliasFile.Path())
	if err != nil {
		return result, fmt.Errorf("failed to configure auto-run: %w", err)
	}
	result.AutoRunChanged = changed
	return result, nil
}

// AliasFilePath returns the managed file.
func (s *service) AliasFilePath() string {
	return s.aliasFile.Path()
}
