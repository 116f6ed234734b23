// Package repl provides the interactive shell mode for bh.
//
// This package implements the Read-Eval-Print Loop for interactive sessions:
//
//   - repl.go: Main loop, line splitting, and command dispatch
//   - completer.go: Prefix completion for commands
//   - history.go: Command history persistence
//
// Each entered line is dispatched to the regular CLI command tree, so
// everything that works as `bh <verb>` works inside the shell too.
package repl
