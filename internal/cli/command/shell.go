// Package command provides CLI command definitions for the Bullhorn CLI.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/bullhorn-tools/bh-cli/internal/cli/repl"
)

// ShellCommand returns the interactive shell command.
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:   "shell",
		Usage:  "Start an interactive shell for running bh commands",
		Action: runShell,
	}
}

func runShell(c *cli.Context) error {
	configPath := c.String("config")
	discoveryURL := c.String("discovery-url")

	r := repl.New(func(args []string) error {
		if len(args) > 0 && args[0] == "shell" {
			return fmt.Errorf("already inside a shell")
		}

		full := []string{"bh", "--discovery-url", discoveryURL}
		if configPath != "" {
			full = append(full, "--config", configPath)
		}
		full = append(full, args...)

		return App().Run(full)
	})

	return r.Run()
}
