// Package command provides CLI command definitions for the Bullhorn CLI.
//
// This package defines all commands using urfave/cli/v2:
//
//   - root.go: root command, global flags, shared helpers
//   - auth.go: auth subcommand group (login, logout, status)
//   - get.go, search.go, query.go: read operations
//   - create.go, update.go, delete.go: write operations
//   - meta.go: entity metadata
//   - entities.go: static entity relationship diagram
//
// Commands follow a consistent pattern of parsing arguments, calling
// the connection client, and formatting output.
package command
