package upstox

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind classifies broker API failures so callers can route them:
// credential failures prompt re-authentication, transient kinds are simply
// skipped for the current screening pass.
type ErrorKind string

const (
	KindNoCredential ErrorKind = "no_credential"
	KindNotFound     ErrorKind = "not_found"
	KindRateLimited  ErrorKind = "rate_limited"
	KindTimeout      ErrorKind = "timeout"
	KindTransport    ErrorKind = "transport"
	KindMarketClosed ErrorKind = "market_closed"
)

// APIError is a typed broker API failure.
type APIError struct {
	Kind    ErrorKind
	Status  int    // HTTP status, 0 when the request never completed
	Message string
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("upstox: %s (HTTP %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("upstox: %s: %s", e.Kind, e.Message)
}

// KindOf extracts the failure kind from err, mapping plain transport and
// deadline errors that never reached an HTTP status. Returns KindTransport
// for anything unrecognized and "" for nil.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindTransport
}

// IsCredential reports whether err means the caller has no usable credential.
func IsCredential(err error) bool { return KindOf(err) == KindNoCredential }

func kindFromStatus(status int) ErrorKind {
	switch status {
	case 401, 403:
		return KindNoCredential
	case 404:
		return KindNotFound
	case 429:
		return KindRateLimited
	}
	return KindTransport
}
