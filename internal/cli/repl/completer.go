// Package repl provides the interactive shell mode for bh.
package repl

import "strings"

// Completer provides command completion for the shell.
type Completer struct {
	commands []string
}

// NewCompleter creates a new Completer.
func NewCompleter() *Completer {
	return &Completer{
		commands: []string{
			"auth", "auth login", "auth logout", "auth status",
			"get", "search", "query",
			"create", "update", "delete",
			"meta", "entities",
			"help", "exit", "quit",
		},
	}
}

// Complete returns completion suggestions for the given prefix.
func (c *Completer) Complete(prefix string) []string {
	var suggestions []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, prefix) {
			suggestions = append(suggestions, cmd)
		}
	}
	return suggestions
}
