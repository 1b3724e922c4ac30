package ruckus

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError is the base error for every failed API exchange. Detail carries
// whatever the server sent back: a string extracted from the error body, or
// the decoded JSON structure when no message/error field was present.
type APIError struct {
	StatusCode int
	Detail     interface{}
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.Detail != nil {
		return fmt.Sprintf("%v", e.Detail)
	}

	return fmt.Sprintf("API error occurred (status: %d)", e.StatusCode)
}

// DetailString renders the detail payload for display.
func (e *APIError) DetailString() string {
	switch d := e.Detail.(type) {
	case nil:
		return ""
	case string:
		return d
	default:
		data, err := json.Marshal(d)
		if err != nil {
			return fmt.Sprintf("%v", d)
		}

		return string(data)
	}
}

// AuthenticationError indicates rejected credentials or a malformed token
// exchange. It is raised both by the token authority and by a 401 response.
type AuthenticationError struct {
	APIError
}

func (e *AuthenticationError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return "authentication failed"
}

// Unwrap allows errors.As to match the embedded APIError.
func (e *AuthenticationError) Unwrap() error {
	return &e.APIError
}

// NotFoundError is returned for 404 responses. Resource and ID are optional
// structured context set at the call site via MarkNotFound, so callers can
// report "venue abc123 not found" without catch-and-rethrow chains.
type NotFoundError struct {
	APIError

	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.Resource != "" && e.ID != "" {
		return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
	}

	if e.Message != "" {
		return e.Message
	}

	return "resource not found"
}

func (e *NotFoundError) Unwrap() error {
	return &e.APIError
}

// ValidationError is returned for 400 responses.
type ValidationError struct {
	APIError
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return "validation error"
}

func (e *ValidationError) Unwrap() error {
	return &e.APIError
}

// RateLimitError is returned for 429 responses.
type RateLimitError struct {
	APIError
}

func (e *RateLimitError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return "rate limit exceeded"
}

func (e *RateLimitError) Unwrap() error {
	return &e.APIError
}

// ServerError is returned for 5xx responses.
type ServerError struct {
	APIError
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("server error occurred (status: %d)", e.StatusCode)
}

func (e *ServerError) Unwrap() error {
	return &e.APIError
}

// ClassifyStatus converts a non-2xx HTTP status and its extracted detail into
// the matching typed error. The mapping is fixed: 401 authentication, 404 not
// found, 400 validation, 429 rate limit, 500-599 server, anything else a
// plain APIError.
func ClassifyStatus(statusCode int, detail interface{}) error {
	base := APIError{
		StatusCode: statusCode,
		Detail:     detail,
	}

	switch {
	case statusCode == 401:
		base.Message = fmt.Sprintf("authentication failed: %v", detail)

		return &AuthenticationError{APIError: base}
	case statusCode == 404:
		return &NotFoundError{APIError: base}
	case statusCode == 400:
		return &ValidationError{APIError: base}
	case statusCode == 429:
		return &RateLimitError{APIError: base}
	case statusCode >= 500 && statusCode < 600:
		return &ServerError{APIError: base}
	default:
		base.Message = fmt.Sprintf("API error occurred: %v", detail)

		return &APIError{StatusCode: base.StatusCode, Detail: base.Detail, Message: base.Message}
	}
}

// MarkNotFound attaches resource kind and identifier to a NotFoundError so
// the caller's context survives without re-wrapping. Other errors pass
// through unchanged.
func MarkNotFound(err error, resource, id string) error {
	notFound := &NotFoundError{}
	if errors.As(err, &notFound) {
		notFound.Resource = resource
		notFound.ID = id

		return notFound
	}

	return err
}

// IsAuthentication checks if the error is an authentication error.
func IsAuthentication(err error) bool {
	target := &AuthenticationError{}

	return errors.As(err, &target)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	target := &NotFoundError{}

	return errors.As(err, &target)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	target := &ValidationError{}

	return errors.As(err, &target)
}

// IsRateLimit checks if the error is a rate limit error.
func IsRateLimit(err error) bool {
	target := &RateLimitError{}

	return errors.As(err, &target)
}

// IsServerError checks if the error is a 5xx server error.
func IsServerError(err error) bool {
	target := &ServerError{}

	return errors.As(err, &target)
}

// StatusCodeOf extracts the HTTP status code from a classified error, or 0
// when the error did not originate from an HTTP response.
func StatusCodeOf(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrCredentialsRequired  = errors.New("client ID, client secret, and tenant ID are required")
	ErrNoTokenManager       = errors.New("no token manager configured")
	ErrBodyConflict         = errors.New("JSON body and form body are mutually exclusive")
	ErrStaticTokenNoRefresh = errors.New("static token cannot be refreshed")
	ErrVenueNameRequired    = errors.New("venue name is required")
	ErrWLANNameRequired     = errors.New("wifi network name is required")
	ErrPoolNameRequired     = errors.New("vlan pool name is required")
	ErrServiceNameRequired  = errors.New("dpsk service name is required")
	ErrGroupNameRequired    = errors.New("identity group name is required")
	ErrSerialNumberRequired = errors.New("access point serial number is required")
	ErrNotAuthenticated     = errors.New("not authenticated")
)
