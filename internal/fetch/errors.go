package fetch

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a fetch failed. Callers branch on the kind
// instead of inspecting error text.
type FailureKind string

const (
	// KindInvalidURL means the target was not an absolute http(s) URL.
	KindInvalidURL FailureKind = "invalid_url"

	// KindTransport means the request could not complete: DNS failure,
	// connection refused, TLS error.
	KindTransport FailureKind = "transport"

	// KindTimeout means the request exceeded the fetch timeout.
	KindTimeout FailureKind = "timeout"

	// KindStatus means the server answered with a non-200 status.
	KindStatus FailureKind = "status"
)

// Error is a classified fetch failure.
type Error struct {
	// Kind is the failure class.
	Kind FailureKind

	// URL is the target that failed.
	URL string

	// StatusCode is set for KindStatus failures, zero otherwise.
	StatusCode int

	// Err is the underlying error, nil for KindStatus.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	case KindTimeout:
		return fmt.Sprintf("fetch %s: timed out: %v", e.URL, e.Err)
	case KindInvalidURL:
		return fmt.Sprintf("fetch %s: invalid url: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the failure kind of err, or an empty kind for non-fetch
// errors.
func KindOf(err error) FailureKind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
