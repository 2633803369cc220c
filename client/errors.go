package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError is a decoded error response from the Fragmentor API.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	RequestID  string `json:"request_id,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("fragmentor: %d %s: %s (request_id=%s)", e.StatusCode, e.Code, e.Message, e.RequestID)
	}
	return fmt.Sprintf("fragmentor: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// errStatus extracts the HTTP status from an APIError, or 0 for other errors.
func errStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool { return errStatus(err) == 404 }

// IsConflict reports whether err is a 409 (duplicate ID).
func IsConflict(err error) bool { return errStatus(err) == 409 }

// IsValidation reports whether err is a 422, which the server uses for
// extraction parameters that do not fit the molecule (root out of range,
// excluded root, negative sphere).
func IsValidation(err error) bool { return errStatus(err) == 422 }

// IsRateLimited reports whether err is a 429.
func IsRateLimited(err error) bool { return errStatus(err) == 429 }

// parseAPIError attempts to decode a JSON error body; falls back to raw text.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = "unknown"
		apiErr.Message = string(body)
	}
	return apiErr
}
