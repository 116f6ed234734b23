// Package main provides the entry point for bh.
//
// The CLI tool provides command-line access to the Bullhorn REST API for:
//
//   - Authentication (login, logout, status)
//   - Fetching single records by ID
//   - Searching with Lucene queries and SQL-like WHERE clauses
//   - Creating, updating, and deleting records
//   - Inspecting entity metadata
//
// Usage:
//
//	bh [command] [flags]
//	bh auth login
//	bh search Candidate --query "name:John*" --fields id,name,email
//	bh get Candidate 12345 --output json
package main
