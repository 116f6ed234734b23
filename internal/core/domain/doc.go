// Package domain defines the core domain models for the Bullhorn CLI.
//
// Domain models are pure value objects without any IO dependencies
// or framework coupling. This package contains:
//
//   - Session: the persisted Bullhorn API session record
//   - Credentials: transient login credentials
//   - Errors: domain-specific error definitions
package domain
