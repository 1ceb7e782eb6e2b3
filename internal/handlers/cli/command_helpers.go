package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/dosalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// errNoCommands is returned when neither arguments nor stdin supplied a command.
var errNoCommands = errors.New("at least one command is required")

// commandsFromArgsOrStdin returns the command arguments, or the lines of stdin when fromStdin is set.
func commandsFromArgsOrStdin(cmd *cobra.Command, args []string, fromStdin bool) ([]string, error) {
	if fromStdin {
		if len(args) > 0 {
			return nil, fmt.Errorf("pass commands either as arguments or with --stdin, not both")
		}
		return readCommandLines(cmd.InOrStdin())
	}
	if len(args) == 0 {
		return nil, errNoCommands
	}
	return args, nil
}

// readCommandLines reads one command per line. A final line terminator does not add an empty command.
func readCommandLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read commands: %w", err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, errNoCommands
	}
	return strings.Split(text, "\n"), nil
}

// confirm asks a yes/no question on the command's streams.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	fmt.Fprint(cmd.OutOrStdout(), ui.PromptColor(question+" (yes/no): "))
	reader := bufio.NewReader(cmd.InOrStdin())
	input, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "yes" || input == "y", nil
}

// printReloadHint reminds the user that running shells keep their old macros.
func printReloadHint(cmd *cobra.Command) {
	fmt.Fprintln(cmd.OutOrStdout(), ui.DetailColor("Open a new cmd.exe window to pick up the change."))
}
