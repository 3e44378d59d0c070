package flex

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched by every decode error in this package.
var ErrMalformed = errors.New("malformed value")

// MalformedBooleanError reports a token that is not a known boolean form.
type MalformedBooleanError struct {
	Raw string
}

func (e *MalformedBooleanError) Error() string {
	return fmt.Sprintf("malformed boolean: %s", e.Raw)
}

func (e *MalformedBooleanError) Unwrap() error {
	return ErrMalformed
}

// MalformedIntegerError reports a token that is neither a number nor a
// numeric string.
type MalformedIntegerError struct {
	Raw string
}

func (e *MalformedIntegerError) Error() string {
	return fmt.Sprintf("malformed integer: %s", e.Raw)
}

func (e *MalformedIntegerError) Unwrap() error {
	return ErrMalformed
}

// MalformedTimeError reports a timestamp that does not match the layout.
type MalformedTimeError struct {
	Raw string
	Err error
}

func (e *MalformedTimeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed timestamp %s: %v", e.Raw, e.Err)
	}
	return fmt.Sprintf("malformed timestamp: %s", e.Raw)
}

func (e *MalformedTimeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformed}
	}
	return []error{ErrMalformed, e.Err}
}

// ElementError reports a collection element that could not be decoded.
// Key is set for [Dict] entries, Index for [List] elements.
type ElementError struct {
	Index int
	Key   string
	Raw   string
	Type  string
	Err   error
}

func (e *ElementError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("decoding %s at key %q from %s: %v", e.Type, e.Key, e.Raw, e.Err)
	}
	return fmt.Sprintf("decoding %s at index %d from %s: %v", e.Type, e.Index, e.Raw, e.Err)
}

func (e *ElementError) Unwrap() []error {
	return []error{ErrMalformed, e.Err}
}
