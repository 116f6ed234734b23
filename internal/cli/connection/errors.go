// Package connection provides the authenticated HTTP client for the
// Bullhorn CLI.
package connection

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the Bullhorn REST API.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// newAPIError builds an APIError from an error response, preferring the
// server's own message fields.
func newAPIError(resp *http.Response) *APIError {
	var body struct {
		ErrorMessage     string `json:"errorMessage"`
		ErrorDescription string `json:"error_description"`
		Message          string `json:"message"`
	}

	message := ""
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		switch {
		case body.ErrorMessage != "":
			message = body.ErrorMessage
		case body.ErrorDescription != "":
			message = body.ErrorDescription
		case body.Message != "":
			message = body.Message
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}
	return false
}
