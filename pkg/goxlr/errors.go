package goxlr

import (
	"errors"
	"fmt"
)

// ErrResponseTimeout means the device never staged a response within
// the polling budget. The command may or may not have been applied.
var ErrResponseTimeout = errors.New("timed out waiting for response")

// ErrMalformedResponse means the device answered with a frame that
// does not follow the protocol.
var ErrMalformedResponse = errors.New("malformed response")

// ErrResyncExhausted means the device answered out of step with the
// host sequence counter and a reset handshake did not bring the two
// sides back into agreement.
var ErrResyncExhausted = errors.New("sequence resync exhausted")

// TransportError wraps a USB transfer failure with the operation that
// hit it. Unwrap exposes the underlying transport error.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }

// sequenceMismatchError never escapes Execute: a first mismatch
// triggers a resync cycle and a second surfaces as ErrResyncExhausted.
type sequenceMismatchError struct {
	sent, received uint16
}

func (e *sequenceMismatchError) Error() string {
	return fmt.Sprintf("sequence mismatch: sent %d, device answered %d", e.sent, e.received)
}
