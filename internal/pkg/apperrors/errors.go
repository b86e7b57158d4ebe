package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error by where it originated
type Kind string

const (
	// KindValidation is a client-local input error caught before any network call
	KindValidation Kind = "validation"
	// KindRejected is a 4xx refusal for a business reason
	KindRejected Kind = "rejected"
	// KindServer is a 5xx fault
	KindServer Kind = "server"
	// KindTransport is a connectivity or decoding failure
	KindTransport Kind = "transport"
	// KindState is a misuse of client-side state (unloaded session, unresolved address)
	KindState Kind = "state"
)

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Domain rejections
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("conflict")
	ErrRejected     = errors.New("request rejected")

	// Server and transport errors
	ErrServerFault = errors.New("server fault")
	ErrTransport   = errors.New("transport failure")

	// State errors
	ErrAddressUnresolved = errors.New("server address not resolved")
	ErrSessionNotLoaded  = errors.New("session not loaded")
)

// Generic user-facing messages
const (
	MsgServerFault = "A server error occurred."
	MsgTransport   = "Unable to connect to the server"
	MsgUnexpected  = "An unexpected error occurred."
	MsgNotResolved = "Server address is not resolved yet"
	MsgNotLoggedIn = "No user is logged in"
)

// APIError is the single error type surfaced by endpoint operations.
// Message is always human readable and safe to show to a user.
type APIError struct {
	Op      string
	Kind    Kind
	Status  int
	Message string
	Err     error
}

// Error implements error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewStatusError builds the error for a non-2xx response
func NewStatusError(op string, status int, message string) *APIError {
	kind := KindRejected
	if status >= http.StatusInternalServerError {
		kind = KindServer
	}
	return &APIError{
		Op:      op,
		Kind:    kind,
		Status:  status,
		Message: message,
		Err:     SentinelForStatus(status),
	}
}

// NewTransportError wraps a network or decoding failure
func NewTransportError(op string, cause error) *APIError {
	return &APIError{
		Op:      op,
		Kind:    KindTransport,
		Message: MsgTransport,
		Err:     fmt.Errorf("%w: %v", ErrTransport, cause),
	}
}

// NewValidationError creates a client-local validation error
func NewValidationError(op, message string) *APIError {
	return &APIError{
		Op:      op,
		Kind:    KindValidation,
		Message: message,
		Err:     ErrValidationFailed,
	}
}

// NewStateError creates an error for misuse of client-side state
func NewStateError(op string, err error, message string) *APIError {
	return &APIError{
		Op:      op,
		Kind:    KindState,
		Message: message,
		Err:     err,
	}
}

// SentinelForStatus maps an HTTP status to one of the common errors
func SentinelForStatus(status int) error {
	switch {
	case status == http.StatusBadRequest:
		return ErrBadRequest
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusConflict:
		return ErrConflict
	case status >= http.StatusInternalServerError:
		return ErrServerFault
	default:
		return ErrRejected
	}
}

// KindOf returns the kind of err, or "" when err is not an APIError
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// StatusOf returns the HTTP status carried by err, or 0
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
