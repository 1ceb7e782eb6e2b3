package aliasfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/dosalias/internal/core/domain/alias"
)

const (
	doskeyKeyword  = "DOSKEY"
	doskeyPrefix   = "doskey "
	commandSep     = " $T "
	lineTerminator = "\r\n"
)

// header is written before the alias lines. It is not preserved on decode.
var header = []string{
	"@echo off",
	"ECHO .----------------------------------------------.",
	"ECHO ^|         Aliases set up using dosalias        ^|",
	"ECHO '----------------------------------------------'",
	"ECHO %date% %time%",
}

// Decode reads an alias file and returns its aliases in file order.
// Lines that are not DOSKEY definitions are dropped. When a name repeats,
// the last definition wins but the alias keeps its first position.
func Decode(r io.Reader) (*alias.Collection, error) {
	aliases := alias.NewCollection()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		name, commands, ok := parseDoskeyLine(scanner.Text())
		if ok {
			aliases.Put(name, commands)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning alias file: %w", err)
	}
	return aliases, nil
}

// Encode writes the header and one DOSKEY line per alias, in collection order.
// Nothing is written if any alias cannot be held on a single line.
func Encode(w io.Writer, aliases *alias.Collection) error {
	all := aliases.All()
	for _, a := range all {
		if len(a.Commands) == 0 {
			return fmt.Errorf("cannot encode alias %q: %w", a.Name, alias.ErrEmptyCommands)
		}
		for _, cmd := range a.Commands {
			if strings.ContainsAny(cmd, "\r\n") {
				return fmt.Errorf("cannot encode alias %q: %w: command contains a line break", a.Name, alias.ErrInvalidCommand)
			}
		}
	}

	bw := bufio.NewWriter(w)
	for _, line := range header {
		bw.WriteString(line)
		bw.WriteString(lineTerminator)
	}
	for _, a := range all {
		bw.WriteString(formatDoskeyLine(a))
		bw.WriteString(lineTerminator)
	}
	return bw.Flush()
}

func formatDoskeyLine(a alias.Alias) string {
	return doskeyKeyword + " " + a.Name + "=" + strings.Join(a.Commands, commandSep)
}

// parseDoskeyLine splits a "DOSKEY name=cmd1 $T cmd2" line. Lines whose name
// could not be added through the collection are skipped.
func parseDoskeyLine(line string) (name string, commands []string, ok bool) {
	line = strings.TrimSuffix(line, "\r")
	if len(line) < len(doskeyPrefix) || !strings.EqualFold(line[:len(doskeyPrefix)], doskeyPrefix) {
		return "", nil, false
	}
	content := line[len(doskeyPrefix):]

	name, blob, found := strings.Cut(content, "=")
	if !found {
		return "", nil, false
	}
	name = strings.TrimSpace(name)
	if alias.ValidateName(name) != nil {
		return "", nil, false
	}

	parts := strings.Split(blob, commandSep)
	commands = make([]string, 0, len(parts))
	for _, p := range parts {
		commands = append(commands, strings.TrimSpace(p))
	}
	return name, commands, true
}
