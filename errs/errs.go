// Package errs defines the closed set of failure values produced by
// the client: transport failures, decode failures, Result misuse, and
// unknown-metric registry violations.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel kinds for transport lifecycle errors. These allow
// errors.Is from callers.
var (
	ErrNotStarted = errors.New("transport not started")
	ErrClosed     = errors.New("transport closed")
)

// TransportError indicates the remote call completed with a failure
// status, or did not complete at all.
type TransportError struct {
	// Status is the HTTP status code, or 0 when the call never
	// produced a response.
	Status int

	// Message is the error message reported by the API or the
	// underlying connection.
	Message string

	// RawBody is the unparsed response body, when one was received.
	RawBody []byte
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("transport failure: %s", e.Message)
	}

	return fmt.Sprintf("transport failure (%d): %s", e.Status, e.Message)
}

// DecodeError indicates a response body could not be mapped onto the
// expected shape.
type DecodeError struct {
	// Target names the shape that was being decoded.
	Target string

	// Cause is the underlying failure.
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s failed: %v", e.Target, e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// UnwrapError indicates a caller accessed the wrong Result variant.
// It is surfaced as a panic at the misusing call site.
type UnwrapError struct {
	// AccessedAs is the variant the caller asked for.
	AccessedAs string

	// ActualVariant describes what the Result actually held. For the
	// Err variant this is the dynamic type of the contained error,
	// never its payload.
	ActualVariant string
}

func (e *UnwrapError) Error() string {
	return fmt.Sprintf("unwrap failed: accessed as %s but result holds %s", e.AccessedAs, e.ActualVariant)
}

// UnknownMetricError indicates a wire code or wire name with no
// registered metric. It is fatal; the decode halts and reports the
// offending identifier.
type UnknownMetricError struct {
	// Name is the unrecognized wire name, when lookup was by name.
	Name string

	// Code is the unrecognized wire code, when lookup was by code.
	Code int
}

func (e *UnknownMetricError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unknown metric name %q", e.Name)
	}

	return fmt.Sprintf("unknown metric code %d", e.Code)
}
