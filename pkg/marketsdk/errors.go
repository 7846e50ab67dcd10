package marketsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/openlocal/market/pkg/httpx"
)

// Machine-readable error codes returned by the market service.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeValidation         = "validation_error"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeForbidden          = "forbidden"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeConflict           = "conflict"
	ErrorCodeRateLimited        = "rate_limit_exceeded"
	ErrorCodeServerError        = "server_error"
)

// APIError is the error body the market service returns for all non-2xx
// responses. It implements the error interface and is shared by the server
// handlers (to write responses) and the SDK (to parse them).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable description
	Message string `json:"message"`

	// Details carries field-level validation errors when present
	Details map[string]string `json:"details,omitempty"`
}

// Error implements the error interface. The status code is included so
// callers can match on it without unwrapping.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

// Predefined errors the handlers reuse. Call WithMessage to specialise the
// description without mutating the shared value.
var (
	ErrInvalidRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidRequest,
		Message:    "the request is malformed or missing required parameters",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidCredentials,
		Message:    "invalid email or password",
	}

	ErrInvalidToken = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidToken,
		Message:    "the token is missing, invalid or expired",
	}

	ErrForbidden = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeForbidden,
		Message:    "access denied",
	}

	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "resource not found",
	}

	ErrConflict = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeConflict,
		Message:    "the resource already exists",
	}

	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "internal server error",
	}
)

// WithMessage returns a copy of e with the message replaced.
func (e *APIError) WithMessage(msg string) *APIError {
	clone := *e
	clone.Message = msg
	return &clone
}

// WithDetails returns a copy of e carrying field-level details.
func (e *APIError) WithDetails(details map[string]string) *APIError {
	clone := *e
	clone.Details = details
	return &clone
}

// NewAPIError creates an APIError with the given status, code and message.
func NewAPIError(statusCode int, code, message string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Message: message}
}

// parseErrorResponse turns a non-2xx HTTP response into a typed *APIError.
// Returns nil for 2xx responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	// Fallback for bodies the service didn't write (proxies, bearer
	// challenges with empty bodies).
	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
