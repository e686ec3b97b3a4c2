package goxlr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	body := []byte{
		0x02, 0x00, // major
		0x0A, 0x00, // minor
		0x03, 0x00, // patch
		0x78, 0x00, // build
	}

	v, err := parseVersion(body)
	require.NoError(t, err)
	assert.Equal(t, Version{Major: 2, Minor: 10, Patch: 3, Build: 120}, v)
	assert.Equal(t, "2.10.3.120", v.String())
}

func TestParseVersionShortBody(t *testing.T) {
	_, err := parseVersion([]byte{0x02, 0x00, 0x0A})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestParseSerial(t *testing.T) {
	assert.Equal(t, "S210300001", parseSerial([]byte("S210300001\x00\x00\x00\x00")))
	assert.Equal(t, "S210300001", parseSerial([]byte("S210300001")))
	assert.Equal(t, "", parseSerial([]byte{0x00, 0x41}))
	assert.Equal(t, "", parseSerial(nil))
}

func TestParseMicLevel(t *testing.T) {
	level, err := parseMicLevel([]byte{0x34, 0x12})
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), level)

	_, err = parseMicLevel([]byte{0x34})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestFirmwareVersion(t *testing.T) {
	body := []byte{0x01, 0x00, 0x04, 0x00, 0x02, 0x00, 0x9A, 0x00}
	ft := &fakeTransport{reads: []readResult{
		respond(CommandGetHardwareInfo(HardwareInfoFirmwareVersion), 1, body),
	}}
	d, _ := newTestDevice(ft)

	v, err := d.FirmwareVersion()
	require.NoError(t, err)
	assert.Equal(t, Version{Major: 1, Minor: 4, Patch: 2, Build: 154}, v)

	hdr, _ := sentFrame(t, ft.writes[0])
	assert.Equal(t, uint32(CommandGetHardwareInfo(HardwareInfoFirmwareVersion)), hdr.Command)
}

func TestSerialNumber(t *testing.T) {
	ft := &fakeTransport{reads: []readResult{
		respond(CommandGetHardwareInfo(HardwareInfoSerialNumber), 1, []byte("S210100042\x00\x00")),
	}}
	d, _ := newTestDevice(ft)

	serial, err := d.SerialNumber()
	require.NoError(t, err)
	assert.Equal(t, "S210100042", serial)

	hdr, _ := sentFrame(t, ft.writes[0])
	assert.Equal(t, uint32(CommandGetHardwareInfo(HardwareInfoSerialNumber)), hdr.Command)
}

func TestMicLevel(t *testing.T) {
	ft := &fakeTransport{reads: []readResult{
		respond(CommandGetMicLevel, 1, []byte{0x21, 0x03}),
	}}
	d, _ := newTestDevice(ft)

	level, err := d.MicLevel()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0321), level)
}
