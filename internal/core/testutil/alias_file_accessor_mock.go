package testutil

import (
	"errors"
	"time"

	"github.com/AntonioJCosta/dosalias/internal/core/domain/alias"
)

// MockAliasFileAccessor is a mock implementation of ports.AliasFileAccessor for testing.
type MockAliasFileAccessor struct {
	LoadFunc         func() (*alias.Collection, error)
	SaveFunc         func(aliases *alias.Collection) error
	EnsureExistsFunc func() error
	BackupFunc       func(now time.Time) (string, error)
	PathValue        string

	// Saved records every collection passed to Save, in call order.
	Saved []*alias.Collection
}

func (m *MockAliasFileAccessor) Load() (*alias.Collection, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return alias.NewCollection(), nil
}

func (m *MockAliasFileAccessor) Save(aliases *alias.Collection) error {
	m.Saved = append(m.Saved, aliases.Clone())
	if m.SaveFunc != nil {
		return m.SaveFunc(aliases)
	}
	return nil
}

func (m *MockAliasFileAccessor) EnsureExists() error {
	if m.EnsureExistsFunc != nil {
		return m.EnsureExistsFunc()
	}
	return nil
}

func (m *MockAliasFileAccessor) Backup(now time.Time) (string, error) {
	if m.BackupFunc != nil {
		return m.BackupFunc(now)
	}
	return "", errors.New("MockAliasFileAccessor: BackupFunc not implemented")
}

func (m *MockAliasFileAccessor) Path() string {
	return m.PathValue
}

// LastSaved returns the most recently saved collection, or nil.
func (m *MockAliasFileAccessor) LastSaved() *alias.Collection {
	if len(m.Saved) == 0 {
		return nil
	}
	return m.Saved[len(m.Saved)-1]
}
