package alias

import "fmt"

/*
Collection is an ordered mapping from alias name to its command sequence.
Insertion order is the canonical order: it is the order aliases are listed
and the order their lines are written to the alias file.
The zero value is not usable; use NewCollection.
*/
type Collection struct {
	order    []string
	commands map[string][]string
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{commands: make(map[string][]string)}
}

// Len returns the number of aliases.
func (c *Collection) Len() int {
	return len(c.order)
}

// Has reports whether name is present.
func (c *Collection) Has(name string) bool {
	_, ok := c.commands[name]
	return ok
}

// Names returns the alias names in canonical order.
func (c *Collection) Names() []string {
	return append([]string(nil), c.order...)
}

// Get returns a copy of the commands for name.
func (c *Collection) Get(name string) ([]string, error) {
	cmds, ok := c.commands[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return append([]string(nil), cmds...), nil
}

// All returns every alias in canonical order.
func (c *Collection) All() []Alias {
	out := make([]Alias, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, Alias{Name: name, Commands: append([]string(nil), c.commands[name]...)})
	}
	return out
}

// Clone returns a deep copy.
func (c *Collection) Clone() *Collection {
	clone := &Collection{
		order:    append([]string(nil), c.order...),
		commands: make(map[string][]string, len(c.commands)),
	}
	for name, cmds := range c.commands {
		clone.commands[name] = append([]string(nil), cmds...)
	}
	return clone
}

// Add appends a new alias at the end of the order. Commands are stored trimmed.
func (c *Collection) Add(name string, commands []string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	normalized, err := NormalizeCommands(commands)
	if err != nil {
		return err
	}
	if c.Has(name) {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	c.order = append(c.order, name)
	c.commands[name] = normalized
	return nil
}

// Put inserts or overwrites name. An existing alias keeps its position.
// Decoding uses it so that a repeated name in a file keeps the last value
// at the position of its first occurrence.
func (c *Collection) Put(name string, commands []string) {
	if !c.Has(name) {
		c.order = append(c.order, name)
	}
	c.commands[name] = append([]string(nil), commands...)
}

// Rename changes an alias name in place.
func (c *Collection) Rename(oldName, newName string) error {
	if !c.Has(oldName) {
		return fmt.Errorf("%w: %q", ErrNotFound, oldName)
	}
	if oldName == newName {
		return nil
	}
	if err := ValidateName(newName); err != nil {
		return err
	}
	if c.Has(newName) {
		return fmt.Errorf("%w: %q", ErrDuplicateName, newName)
	}
	for i, name := range c.order {
		if name == oldName {
			c.order[i] = newName
			break
		}
	}
	c.commands[newName] = c.commands[oldName]
	delete(c.commands, oldName)
	return nil
}

// Delete removes name.
func (c *Collection) Delete(name string) error {
	if !c.Has(name) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	delete(c.commands, name)
	return nil
}

// Reorder replaces the canonical order. names must contain every current
// alias exactly once and nothing else.
func (c *Collection) Reorder(names []string) error {
	if len(names) != len(c.order) {
		return fmt.Errorf("%w: got %d names, have %d aliases", ErrOrderMismatch, len(names), len(c.order))
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if !c.Has(name) {
			return fmt.Errorf("%w: unknown alias %q", ErrOrderMismatch, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: %q listed twice", ErrOrderMismatch, name)
		}
		seen[name] = true
	}
	c.order = append([]string(nil), names...)
	return nil
}

// SetCommands replaces the command sequence of name in place.
func (c *Collection) SetCommands(name string, commands []string) error {
	normalized, err := NormalizeCommands(commands)
	if err != nil {
		return err
	}
	if !c.Has(name) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	c.commands[name] = normalized
	return nil
}

// Index returns the position of name, or -1.
func (c *Collection) Index(name string) int {
	for i, n := range c.order {
		if n == name {
			return i
		}
	}
	return -1
}
