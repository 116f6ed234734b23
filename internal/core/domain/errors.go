// Package domain defines the core domain models for the Bullhorn CLI.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
type DomainError struct {
	Code    string // Error code (e.g., "BH-AUTH-1002")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Authentication Errors (AUTH)
// ============================================================================

var (
	// ErrDiscovery indicates the data-center discovery lookup did not return
	// the OAuth and REST base URLs.
	ErrDiscovery = NewDomainError("BH-AUTH-1001", "could not determine data center urls from login info")

	// ErrAuthorization indicates the authorize step did not yield an
	// authorization code. Usually a bad username or password.
	ErrAuthorization = NewDomainError("BH-AUTH-1002", "failed to obtain an authorization code, check your username and password")

	// ErrTokenExchange indicates the code-for-token exchange did not return
	// an access token. Usually bad API keys.
	ErrTokenExchange = NewDomainError("BH-AUTH-1003", "failed to obtain an access token, check your API keys")

	// ErrSessionFinalize indicates the REST login step did not return a
	// session token and REST URL.
	ErrSessionFinalize = NewDomainError("BH-AUTH-1004", "invalid login response, missing BhRestToken or restUrl")

	// ErrRefreshMissingData indicates the stored session lacks the data
	// needed to refresh (refresh token, token url, or api keys).
	ErrRefreshMissingData = NewDomainError("BH-AUTH-1005", "refresh data is missing, run 'bh auth login' again")

	// ErrRefreshFailed indicates the refresh handshake failed. The stored
	// session is cleared and a full login is required.
	ErrRefreshFailed = NewDomainError("BH-AUTH-1006", "session refresh failed, run 'bh auth login' again")

	// ErrNotLoggedIn indicates no session is stored.
	ErrNotLoggedIn = NewDomainError("BH-AUTH-4010", "you are not logged in, run 'bh auth login' to start a session")
)

// ============================================================================
// Argument Errors (ARGS)
// ============================================================================

var (
	// ErrInvalidField indicates a malformed key=value field argument.
	ErrInvalidField = NewDomainError("BH-ARGS-1001", "fields must be in 'key=value' format")

	// ErrNoFields indicates no key=value pairs were supplied.
	ErrNoFields = NewDomainError("BH-ARGS-1002", "at least one key=value pair is required")
)
