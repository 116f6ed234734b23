// Package main provides the entry point for bh, the Bullhorn ATS
// command-line client.
package main

import (
	"fmt"
	"os"

	"github.com/bullhorn-tools/bh-cli/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
