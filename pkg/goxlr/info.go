package goxlr

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// HardwareInfo selects which identity record GetHardwareInfo returns.
type HardwareInfo uint8

const (
	HardwareInfoFirmwareVersion HardwareInfo = 0
	HardwareInfoSerialNumber    HardwareInfo = 1
)

// Version is the firmware version quad reported by the device.
type Version struct {
	Major uint16
	Minor uint16
	Patch uint16
	Build uint16
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Build)
}

func parseVersion(b []byte) (Version, error) {
	if len(b) < 8 {
		return Version{}, fmt.Errorf("%w: version body is %d bytes, want 8", ErrMalformedResponse, len(b))
	}
	return Version{
		Major: binary.LittleEndian.Uint16(b[0:2]),
		Minor: binary.LittleEndian.Uint16(b[2:4]),
		Patch: binary.LittleEndian.Uint16(b[4:6]),
		Build: binary.LittleEndian.Uint16(b[6:8]),
	}, nil
}

// The serial body is ASCII padded with NULs to a fixed width.
func parseSerial(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

func parseMicLevel(b []byte) (uint16, error) {
	if len(b) < 2 {
		return 0, fmt.Errorf("%w: mic level body is %d bytes, want 2", ErrMalformedResponse, len(b))
	}
	return binary.LittleEndian.Uint16(b[0:2]), nil
}

// FirmwareVersion reads the firmware version quad.
func (d *Device) FirmwareVersion() (Version, error) {
	body, err := d.Execute(CommandGetHardwareInfo(HardwareInfoFirmwareVersion), nil)
	if err != nil {
		return Version{}, err
	}
	return parseVersion(body)
}

// SerialNumber reads the device serial string.
func (d *Device) SerialNumber() (string, error) {
	body, err := d.Execute(CommandGetHardwareInfo(HardwareInfoSerialNumber), nil)
	if err != nil {
		return "", err
	}
	return parseSerial(body), nil
}

// MicLevel reads the microphone level meter.
func (d *Device) MicLevel() (uint16, error) {
	body, err := d.Execute(CommandGetMicLevel, nil)
	if err != nil {
		return 0, err
	}
	return parseMicLevel(body)
}
