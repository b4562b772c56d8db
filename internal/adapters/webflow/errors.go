package webflow

import (
	"encoding/json"
	"fmt"
	"net/http"

	"flowdoc/internal/application"
)

// APIError is a non-2xx response from the API
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Code       string // Webflow error code, when the body carries one
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Body
	}
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, msg)
}

// Is maps well-known statuses onto application sentinels
func (e *APIError) Is(target error) bool {
	switch target {
	case application.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case application.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}

func newAPIError(method, url string, status int, body []byte) *APIError {
	apiErr := &APIError{
		Method:     method,
		URL:        url,
		StatusCode: status,
		Body:       string(body),
	}

	var envelope struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &envelope) == nil {
		apiErr.Code = envelope.Code
		apiErr.Message = envelope.Message
	}
	return apiErr
}

// TransportError is a network-level failure before any response arrived
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
