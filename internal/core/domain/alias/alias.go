/*
Package alias defines the core domain entities for DOSKEY aliases.
*/
package alias

import (
	"fmt"
	"strings"
	"unicode"
)

/*
Alias is a named shortcut expanding to one or more chained shell commands.
This is a core domain entity.
*/
type Alias struct {
	Name     string   `yaml:"alias"`
	Commands []string `yaml:"commands"`
}

// ValidateName reports whether name can be written as a DOSKEY macro name.
// A name must be non-empty and must not contain '=' or whitespace.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if strings.Contains(name, "=") {
		return fmt.Errorf("%w: %q contains '='", ErrInvalidName, name)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidName, name)
	}
	return nil
}

// ValidateCommands rejects an empty command sequence and commands that a
// single DOSKEY line cannot hold: line breaks end the definition and $T
// separates commands.
func ValidateCommands(commands []string) error {
	if len(commands) == 0 {
		return ErrEmptyCommands
	}
	for i, cmd := range commands {
		if err := ValidateCommand(cmd); err != nil {
			return fmt.Errorf("command %d: %w", i+1, err)
		}
	}
	return nil
}

// ValidateCommand checks a single command of a sequence.
func ValidateCommand(cmd string) error {
	if strings.ContainsAny(cmd, "\r\n") {
		return fmt.Errorf("%w: %q contains a line break", ErrInvalidCommand, cmd)
	}
	if strings.Contains(strings.ToUpper(cmd), "$T") {
		return fmt.Errorf("%w: %q contains the $T separator, pass the commands separately", ErrInvalidCommand, cmd)
	}
	return nil
}

// NormalizeCommands returns a validated copy of commands with surrounding
// whitespace removed from each one, the form they take after a file reload.
func NormalizeCommands(commands []string) ([]string, error) {
	if err := ValidateCommands(commands); err != nil {
		return nil, err
	}
	out := make([]string, len(commands))
	for i, cmd := range commands {
		out[i] = strings.TrimSpace(cmd)
	}
	return out, nil
}
