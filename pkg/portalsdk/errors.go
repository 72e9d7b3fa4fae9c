package portalsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Stable error codes used across the API.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeValidationFailed  = "validation_failed"
	ErrorCodeInvalidCredential = "invalid_credentials"
	ErrorCodeUnauthorized      = "unauthorized"
	ErrorCodeForbidden         = "forbidden"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeInviteExpired     = "invite_expired"
	ErrorCodeInviteUsed        = "invite_already_used"
	ErrorCodeEmailMismatch     = "email_mismatch"
	ErrorCodeServerError       = "server_error"
)

// APIError is the typed form of ErrorResponse. The server writes it, the
// SDK client parses non-2xx responses back into it.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the stable machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description
	Description string `json:"error_description"`

	// Violations is set only for validation_failed errors
	Violations []Violation `json:"violations,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

// NewAPIError creates an APIError with the given status, code, and description.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Description: description}
}

// parseErrorResponse turns a non-2xx response body into a typed *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var e APIError
	if err := json.Unmarshal(body, &e); err == nil && e.Code != "" {
		e.StatusCode = resp.StatusCode
		return &e
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
