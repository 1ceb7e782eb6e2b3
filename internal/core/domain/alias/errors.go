package alias

import "errors"

var (
	// ErrDuplicateName is returned when an alias name is already taken.
	ErrDuplicateName = errors.New("alias name already exists")
	// ErrNotFound is returned when an alias name is not in the collection.
	ErrNotFound = errors.New("alias not found")
	// ErrOrderMismatch is returned when a new order does not name exactly the current aliases.
	ErrOrderMismatch = errors.New("alias order does not match current aliases")
	// ErrEmptyCommands is returned when an alias would have no commands.
	ErrEmptyCommands = errors.New("alias must have at least one command")
	// ErrInvalidCommand is returned for commands that cannot be written on a DOSKEY line.
	ErrInvalidCommand = errors.New("invalid alias command")
	// ErrInvalidName is returned for names that cannot be written as a DOSKEY macro.
	ErrInvalidName = errors.New("invalid alias name")
	// ErrIOFailure wraps disk failures while reading or writing the alias file.
	ErrIOFailure = errors.New("alias file i/o failure")
)
