package ports

import (
	"time"

	"github.com/AntonioJCosta/dosalias/internal/core/domain/alias"
)

/*
AliasFileAccessor defines the interface for reading and writing the DOSKEY
alias file. This is a driven port, implemented by a repository adapter that
owns the on-disk format.
*/
type AliasFileAccessor interface {
	/*
	   Load decodes the alias file into an ordered collection.
	   A missing file yields an empty collection and no error.
	*/
	Load() (*alias.Collection, error)

	/*
	   Save re-serializes the whole collection and replaces the alias file.
	   Readers never observe a partially written file.
	*/
	Save(aliases *alias.Collection) error

	// EnsureExists creates the alias file with only its header if it is missing.
	EnsureExists() error

	// Backup copies the alias file to a timestamped sibling and returns its path.
	Backup(now time.Time) (string, error)

	// Path returns the alias file location.
	Path() string
}
