package kma

import (
	"errors"
	"fmt"
)

// ErrNotSupported matches every NotSupportedError via errors.Is.
var ErrNotSupported = errors.New("not supported")

// APIError is an upstream failure reported inside a well-formed envelope
// (resultCode other than "00").
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("KMA API error %s: %s", e.Code, e.Message)
}

// TransportError is an HTTP level failure: a non-2xx status, a network error
// or a timeout. StatusCode is 0 when no response was received.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("HTTP %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("HTTP request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UnexpectedError wraps anything else, such as an undecodable response body.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected error: %v", e.Err)
}

func (e *UnexpectedError) Unwrap() error { return e.Err }

// NotSupportedError is returned for endpoints that are not documented by the
// API Hub. Alternative names the catalog entry to use instead.
type NotSupportedError struct {
	Endpoint    string
	Alternative string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s is not documented in the official KMA API: use %s instead", e.Endpoint, e.Alternative)
}

func (e *NotSupportedError) Is(target error) bool { return target == ErrNotSupported }

// ValidationError reports a missing or malformed parameter. No request is sent.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}
