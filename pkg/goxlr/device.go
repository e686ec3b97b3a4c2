package goxlr

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/seagrayinc/goxlr-usb/pkg/usb"
	"github.com/seagrayinc/goxlr-usb/pkg/wire"
)

// Vendor control request codes.
const (
	requestCommand  = 2 // host to device, carries a framed command
	requestResponse = 3 // device to host, returns the staged response
)

// maxResponseLen caps a single response poll. The device never stages
// more than this.
const maxResponseLen = 1040

// pollAttempts bounds how often a response is polled for before the
// command fails with ErrResponseTimeout.
const pollAttempts = 20

// Settle delays between writing a command and polling its response.
// The full-size device turns commands around quickly; the Mini takes
// longer.
const (
	settleFull = 3 * time.Millisecond
	settleMini = 10 * time.Millisecond
)

func settleFor(product uint16) time.Duration {
	if product == ProductIDMini {
		return settleMini
	}
	return settleFull
}

// Transport is the control-transfer surface Device drives. *usb.Port
// implements it; tests substitute scripted fakes.
type Transport interface {
	WriteVendor(request uint8, value, index uint16, data []byte) error
	ReadVendor(request uint8, value, index uint16, max int) ([]byte, error)
	Close() error
}

// Device is an open GoXLR. It owns the sequence counter that pairs
// device responses with the commands that produced them.
//
// A Device carries one request at a time. Callers issuing commands
// from several goroutines must serialise them.
type Device struct {
	transport Transport
	settle    time.Duration
	clk       clock.Clock

	seq uint16
}

// Open claims the GoXLR at the given location, which should come from
// ListDevices. It returns usb.ErrDeviceNotFound if nothing is
// attached there.
func Open(loc usb.Location) (*Device, error) {
	port, err := usb.Open(loc)
	if err != nil {
		return nil, err
	}
	return NewDevice(port, settleFor(port.ProductID())), nil
}

// NewDevice wraps an already open transport. Most callers want Open;
// NewDevice exists for custom transports.
func NewDevice(t Transport, settle time.Duration) *Device {
	return &Device{
		transport: t,
		settle:    settle,
		clk:       clock.New(),
	}
}

// Close releases the underlying transport.
func (d *Device) Close() error {
	return d.transport.Close()
}

// ResetSequence restarts the sequence handshake at zero. Execute
// performs this on its own when needed; it is exposed for recovery
// flows and diagnostics.
func (d *Device) ResetSequence() error {
	_, err := d.Execute(CommandResetSequence, nil)
	return err
}

// Execute runs one command against the device and returns the
// response body. Sequence bookkeeping happens here: commands are
// numbered one above the previous command, the counter is reset
// before it can overflow, and a response that arrives out of step
// triggers a single reset-and-retry cycle before the command fails
// with ErrResyncExhausted.
func (d *Device) Execute(cmd Command, body []byte) ([]byte, error) {
	if cmd == CommandResetSequence {
		return d.resetSequence()
	}

	if d.seq == math.MaxUint16 {
		if _, err := d.resetSequence(); err != nil {
			return nil, err
		}
	}

	resp, err := d.roundTrip(cmd, body)
	var mismatch *sequenceMismatchError
	if !errors.As(err, &mismatch) {
		return resp, err
	}

	slog.Debug("response out of step, resyncing",
		slog.String("command", cmd.String()),
		slog.Int("sent", int(mismatch.sent)),
		slog.Int("received", int(mismatch.received)))

	if _, err := d.resetSequence(); err != nil {
		return nil, err
	}

	resp, err = d.roundTrip(cmd, body)
	if errors.As(err, &mismatch) {
		return nil, fmt.Errorf("%w: %v", ErrResyncExhausted, err)
	}
	return resp, err
}

// resetSequence zeroes the host counter and runs the reset handshake
// at sequence 0. A device that answers the reset itself out of step
// cannot be brought back into agreement.
func (d *Device) resetSequence() ([]byte, error) {
	resp, err := d.roundTrip(CommandResetSequence, nil)
	var mismatch *sequenceMismatchError
	if errors.As(err, &mismatch) {
		return nil, fmt.Errorf("%w: %v", ErrResyncExhausted, err)
	}
	return resp, err
}

// roundTrip performs one write-settle-poll exchange. It assigns the
// sequence number, so callers must not retry it blindly: every call
// consumes a number.
func (d *Device) roundTrip(cmd Command, body []byte) ([]byte, error) {
	var seq uint16
	if cmd == CommandResetSequence {
		d.seq = 0
	} else {
		d.seq++
		seq = d.seq
	}

	frame, err := wire.Encode(uint32(cmd), seq, body)
	if err != nil {
		return nil, err
	}

	slog.Debug("writing command",
		slog.String("command", cmd.String()),
		slog.Int("sequence", int(seq)),
		slog.String("frame", wire.HexString(frame)))

	if err := d.transport.WriteVendor(requestCommand, 0, 0, frame); err != nil {
		return nil, &TransportError{Op: "write command", Err: err}
	}

	d.clk.Sleep(d.settle)

	for attempt := 1; ; attempt++ {
		raw, err := d.transport.ReadVendor(requestResponse, 0, 0, maxResponseLen)
		if errors.Is(err, usb.ErrNotReady) {
			if attempt == pollAttempts {
				return nil, fmt.Errorf("%w: %s unanswered after %d polls", ErrResponseTimeout, cmd, pollAttempts)
			}
			slog.Debug("response not staged yet",
				slog.String("command", cmd.String()),
				slog.Int("attempt", attempt),
				slog.Int("limit", pollAttempts))
			d.clk.Sleep(d.settle)
			continue
		}
		if err != nil {
			return nil, &TransportError{Op: "read response", Err: err}
		}

		hdr, respBody, err := wire.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}

		if hdr.Sequence != seq {
			return nil, &sequenceMismatchError{sent: seq, received: hdr.Sequence}
		}

		if int(hdr.BodyLen) != len(respBody) {
			return nil, fmt.Errorf("%w: header declares %d body bytes, frame carries %d",
				ErrMalformedResponse, hdr.BodyLen, len(respBody))
		}

		slog.Debug("response received",
			slog.String("command", cmd.String()),
			slog.Int("sequence", int(hdr.Sequence)),
			slog.Int("length", len(respBody)))

		return respBody, nil
	}
}
