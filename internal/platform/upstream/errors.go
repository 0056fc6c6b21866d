// Package upstream normalizes failures of outbound calls into a small category
// taxonomy so each service can decide once how a category maps to its own
// response.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrorCategory defines the normalized failure taxonomy
type ErrorCategory string

const (
	// ErrorTimeout indicates the upstream took too long to respond
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorUnavailable indicates the upstream could not be reached or failed
	ErrorUnavailable ErrorCategory = "unavailable"

	// ErrorNotFound indicates the requested record doesn't exist
	ErrorNotFound ErrorCategory = "not_found"

	// ErrorBadData indicates the upstream returned invalid/malformed data
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorContractMismatch indicates a value outside the agreed vocabulary
	ErrorContractMismatch ErrorCategory = "contract_mismatch"

	// ErrorInternal indicates an error that is not an upstream error at all
	ErrorInternal ErrorCategory = "internal"
)

// Error wraps upstream failures with normalized categorization
type Error struct {
	Category   ErrorCategory
	Upstream   string
	Message    string
	StatusCode int // zero when no response was received
	Body       string
	Underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("upstream %s [%s]: %s", e.Upstream, e.Category, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Underlying != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Underlying)
	}
	return msg
}

// Unwrap supports error unwrapping
func (e *Error) Unwrap() error {
	return e.Underlying
}

// NewError creates a new normalized upstream error
func NewError(category ErrorCategory, upstream, message string, underlying error) *Error {
	return &Error{
		Category:   category,
		Upstream:   upstream,
		Message:    message,
		Underlying: underlying,
	}
}

// GetCategory extracts the error category from an error
func GetCategory(err error) ErrorCategory {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Category
	}
	return ErrorInternal
}

// IsCategory reports whether err carries the given category.
func IsCategory(err error, category ErrorCategory) bool {
	return GetCategory(err) == category
}

// FromTransport classifies an error returned before any response arrived.
// Deadlines, cancellations and network timeouts are timeouts; anything else
// (refused, reset, DNS) means the upstream is unavailable.
func FromTransport(upstream string, err error) *Error {
	if isTimeout(err) {
		return NewError(ErrorTimeout, upstream, "request timed out", err)
	}
	return NewError(ErrorUnavailable, upstream, "request failed", err)
}

// FromStatus classifies a non-2xx response.
func FromStatus(upstream string, status int, body string) *Error {
	var e *Error
	switch status {
	case http.StatusNotFound:
		e = NewError(ErrorNotFound, upstream, "record not found", nil)
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		e = NewError(ErrorTimeout, upstream, "upstream reported a timeout", nil)
	default:
		e = NewError(ErrorUnavailable, upstream, "unexpected status", nil)
	}
	e.StatusCode = status
	e.Body = body
	return e
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
