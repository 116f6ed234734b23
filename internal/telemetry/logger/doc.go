// Package logger provides structured logging for the Bullhorn CLI.
//
// It wraps the standard library log/slog to provide structured logging
// with automatic redaction of credential-bearing attributes. The CLI
// logs nothing below warn level unless --verbose is set.
package logger
