package todosdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// FieldError is a per-field validation message from the server.
type FieldError struct {
	Path string `json:"path"`
	Msg  string `json:"msg"`
}

// APIError is an error response from the server. Its presence means the
// server was reached and answered; transport failures are returned as
// plain errors instead.
type APIError struct {
	StatusCode int          `json:"-"`
	Message    string       `json:"message"`
	Errors     []FieldError `json:"errors,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether the error is a 404.
func (e *APIError) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }

// IsUnauthorized reports whether the error is a 401.
func (e *APIError) IsUnauthorized() bool { return e.StatusCode == http.StatusUnauthorized }

// decodeAPIError reads an error body from a non-2xx response.
func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
