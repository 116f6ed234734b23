// Package output provides output formatting for the Bullhorn CLI.
//
// This package handles all CLI output formatting:
//
//   - formatter.go: Formatter interface and factory
//   - table.go: table rendering for decoded JSON payloads
//   - json.go: JSON output formatting
//   - yaml.go: YAML output formatting
//   - spinner.go: progress animation for long operations
//
// The table formatter works on decoded JSON (maps and slices of maps),
// since entity shapes are only known at runtime.
package output
