// Package goxlr drives TC-Helicon GoXLR and GoXLR Mini mixers over
// their vendor USB control interface.
//
// The hardware speaks a strict request/response protocol. The host
// writes a framed command, waits for the device to stage a reply and
// polls it back. A sequence number in the frame header pairs every
// reply with the command that produced it; Device tracks those
// numbers and resynchronises with the hardware when they drift.
package goxlr

import "github.com/seagrayinc/goxlr-usb/pkg/usb"

const (
	// VendorID is the TC-Helicon USB vendor id.
	VendorID uint16 = 0x1220

	// ProductIDFull is the full-size GoXLR.
	ProductIDFull uint16 = 0x8FE0
	// ProductIDMini is the GoXLR Mini.
	ProductIDMini uint16 = 0x8FE4
)

// ListDevices reports the bus locations of every attached GoXLR.
// Pass a location to Open to start talking to the device there.
func ListDevices() []usb.Location {
	return usb.List(VendorID, ProductIDFull, ProductIDMini)
}
