// Package config provides persisted CLI state for the Bullhorn CLI.
//
// This package owns the on-disk session record:
//
//   - store.go: Store interface and the YAML-backed FileStore
//     (~/.bh/session.yaml)
//   - memory.go: in-memory Store for tests
//   - env.go: BH_* environment defaults for the login prompts
//
// The auth flow is the sole writer of the session record; every other
// component only reads it.
package config
