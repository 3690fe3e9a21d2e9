package api

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Kind classifies why a node call failed.
type Kind int

const (
	// KindTransport covers connection refused, DNS and other I/O failures.
	KindTransport Kind = iota + 1
	// KindTimeout is a request that ran out of time or was cancelled by its deadline.
	KindTimeout
	// KindRejected is any non-2xx response from the node.
	KindRejected
	// KindParse is a 2xx response whose body is malformed or lacks an expected field.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindTimeout:
		return "timeout"
	case KindRejected:
		return "rejected"
	case KindParse:
		return "parse"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ErrMissingField is wrapped by parse errors when the response lacks a required field.
var ErrMissingField = errors.New("missing field in response")

// Error is returned by every Client call that fails.
type Error struct {
	Op         string // operation name, e.g. "build transaction"
	Kind       Kind
	StatusCode int    // set for KindRejected
	Detail     string // node's error detail, if it sent one
	Body       string // raw response body, truncated to MaxErrorBodySize
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindRejected:
		if e.Detail != "" {
			return fmt.Sprintf("failed to %s: node rejected request with status %d: %s", e.Op, e.StatusCode, e.Detail)
		}
		return fmt.Sprintf("failed to %s: node rejected request with status %d", e.Op, e.StatusCode)
	case KindTimeout:
		return fmt.Sprintf("failed to %s: request timed out: %v", e.Op, e.Err)
	case KindParse:
		return fmt.Sprintf("failed to %s: failed to parse response: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}

// transportError classifies a failure from the http round trip or body read.
func transportError(op string, err error) *Error {
	kind := KindTransport
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = KindTimeout
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

func parseError(op string, body []byte, err error) *Error {
	return &Error{Op: op, Kind: KindParse, Body: truncateBody(body), Err: err}
}
