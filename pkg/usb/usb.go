// Package usb enumerates USB devices and opens vendor control-transfer
// ports to them through libusb.
package usb

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/gousb"
)

// ErrDeviceNotFound is returned by Open when no device is present at
// the requested location.
var ErrDeviceNotFound = errors.New("device not found")

// ErrNotReady is returned by ReadVendor when the device stalls the
// transfer, which vendor protocols use to signal that no data is
// staged yet.
var ErrNotReady = errors.New("device not ready")

// Control transfers that take longer than this have gone wrong.
const transferTimeout = time.Second

// Location identifies a device by its position on the bus. Locations
// are stable while the device stays plugged in but are not preserved
// across replug.
type Location struct {
	Bus     int
	Address int
}

func (l Location) String() string {
	return fmt.Sprintf("%03d:%03d", l.Bus, l.Address)
}

// deviceLister is the subset of *gousb.Context used for enumeration,
// so tests can substitute a fake.
type deviceLister interface {
	OpenDevices(func(desc *gousb.DeviceDesc) bool) ([]*gousb.Device, error)
}

// List reports the locations of attached devices matching the vendor
// id and any of the product ids. Devices that cannot be enumerated
// are simply absent from the result.
func List(vendor uint16, products ...uint16) []Location {
	ctx := gousb.NewContext()
	defer ctx.Close()
	return list(ctx, vendor, products...)
}

func list(lister deviceLister, vendor uint16, products ...uint16) []Location {
	var found []Location

	// The filter only collects descriptors; returning false keeps
	// gousb from opening anything.
	devs, err := lister.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		if matches(desc, vendor, products) {
			found = append(found, Location{Bus: desc.Bus, Address: desc.Address})
		}
		return false
	})
	for _, d := range devs {
		d.Close()
	}
	if err != nil {
		slog.Debug("usb enumeration reported errors", slog.Any("error", err))
	}

	return found
}

func matches(desc *gousb.DeviceDesc, vendor uint16, products []uint16) bool {
	if desc.Vendor != gousb.ID(vendor) {
		return false
	}
	for _, p := range products {
		if desc.Product == gousb.ID(p) {
			return true
		}
	}
	return false
}

// Port is an open control-transfer channel to a single device. A Port
// owns its libusb context and must be closed after use.
type Port struct {
	ctx *gousb.Context
	dev *gousb.Device
	loc Location
}

// Open claims the device at the given location, which should come
// from a previous List. It returns ErrDeviceNotFound if nothing is
// attached there.
func Open(loc Location) (*Port, error) {
	ctx := gousb.NewContext()
	port, err := open(ctx, loc)
	if err != nil {
		ctx.Close()
		return nil, err
	}
	port.ctx = ctx
	return port, nil
}

func open(lister deviceLister, loc Location) (*Port, error) {
	devs, err := lister.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return desc.Bus == loc.Bus && desc.Address == loc.Address
	})
	if len(devs) == 0 {
		if err != nil {
			return nil, fmt.Errorf("%w at %s: %v", ErrDeviceNotFound, loc, err)
		}
		return nil, fmt.Errorf("%w at %s", ErrDeviceNotFound, loc)
	}
	for _, d := range devs[1:] {
		d.Close()
	}

	dev := devs[0]
	dev.ControlTimeout = transferTimeout
	return &Port{dev: dev, loc: loc}, nil
}

// Location reports where on the bus the port was opened.
func (p *Port) Location() Location { return p.loc }

// VendorID reports the vendor id of the opened device.
func (p *Port) VendorID() uint16 { return uint16(p.dev.Desc.Vendor) }

// ProductID reports the product id of the opened device.
func (p *Port) ProductID() uint16 { return uint16(p.dev.Desc.Product) }

// WriteVendor issues a host-to-device vendor control transfer
// addressed to the interface.
func (p *Port) WriteVendor(request uint8, value, index uint16, data []byte) error {
	rType := uint8(gousb.ControlOut | gousb.ControlVendor | gousb.ControlInterface)
	if _, err := p.dev.Control(rType, request, value, index, data); err != nil {
		return err
	}
	return nil
}

// ReadVendor issues a device-to-host vendor control transfer addressed
// to the interface, reading at most max bytes. A stalled transfer is
// reported as ErrNotReady.
func (p *Port) ReadVendor(request uint8, value, index uint16, max int) ([]byte, error) {
	buf := make([]byte, max)
	rType := uint8(gousb.ControlIn | gousb.ControlVendor | gousb.ControlInterface)
	n, err := p.dev.Control(rType, request, value, index, buf)
	if err != nil {
		if errors.Is(err, gousb.ErrorPipe) {
			return nil, ErrNotReady
		}
		return nil, err
	}
	return buf[:n], nil
}

// Close releases the device and its libusb context.
func (p *Port) Close() error {
	err := p.dev.Close()
	if p.ctx != nil {
		if cerr := p.ctx.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
