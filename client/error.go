package client

import (
	"errors"
	"fmt"
)

const (
	// maxErrBodySize caps how much of a non-2xx body is kept as the error
	// message. Upstream error bodies are short phrases, so only a
	// misbehaving server reaches it; the kept text is cut on a rune
	// boundary.
	maxErrBodySize = 1 << 20

	// maxStatusBodySize caps a textual media reply, which is a single token.
	maxStatusBodySize = 4 << 10
)

var (
	// ErrMissingHeader is wrapped by a DecodeError when the envelope has no header.
	ErrMissingHeader = errors.New("response envelope has no header")

	// ErrProtocolViolation matches replies outside the documented wire format.
	ErrProtocolViolation = errors.New("protocol violation")
)

// DecodeError reports a response that could not be decoded into Target.
// Raw holds the full response text.
type DecodeError struct {
	Target string
	Raw    string
	Err    error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode ScreenScraper response to %s: %v; response was: %s", e.Target, e.Err, e.Raw)
}

// Unwrap returns the underlying decode failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UnknownEnvelopeError reports an envelope with success=false and no error
// text.
type UnknownEnvelopeError struct {
	StatusCode int
	Raw        string
}

// Error implements the error interface.
func (e *UnknownEnvelopeError) Error() string {
	return fmt.Sprintf("unknown error with status code %d; response was: %s", e.StatusCode, e.Raw)
}

// UnknownMediaStatusError reports a textual media reply that is not one of
// the known status tokens.
type UnknownMediaStatusError struct {
	Token string
}

// Error implements the error interface.
func (e *UnknownMediaStatusError) Error() string {
	return fmt.Sprintf("unknown media response: %q", e.Token)
}

// Unwrap returns ErrProtocolViolation.
func (e *UnknownMediaStatusError) Unwrap() error {
	return ErrProtocolViolation
}
