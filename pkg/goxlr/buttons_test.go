package goxlr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseButtonStates(t *testing.T) {
	body := []byte{
		0x10, 0x00, 0x80, 0x00, // Fader1Mute (bit 4) and Cough (bit 23)
		0x00, 0xFF, 0x05, 0xF6, // encoders: 0, -1, 5, -10
		0x10, 0x20, 0x30, 0xFF, // fader volumes
	}

	s, err := parseButtonStates(body)
	require.NoError(t, err)

	assert.True(t, s.IsPressed(ButtonFader1Mute))
	assert.True(t, s.IsPressed(ButtonCough))
	assert.False(t, s.IsPressed(ButtonBleep))
	assert.False(t, s.IsPressed(ButtonFader2Mute))

	assert.Equal(t, [4]int8{0, -1, 5, -10}, s.Encoders)
	assert.Equal(t, [4]uint8{0x10, 0x20, 0x30, 0xFF}, s.Volumes)
}

func TestParseButtonStatesShortBody(t *testing.T) {
	_, err := parseButtonStates(make([]byte, 11))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestButtonString(t *testing.T) {
	assert.Equal(t, "Cough", ButtonCough.String())
	assert.Equal(t, "SamplerTopLeft", ButtonSamplerTopLeft.String())
	assert.Equal(t, "Button(99)", Button(99).String())
}

func TestDeviceButtonStates(t *testing.T) {
	body := make([]byte, 12)
	body[0] = 0x04 // EffectMegaphone, bit 2
	body[8] = 0x40

	ft := &fakeTransport{reads: []readResult{
		respond(CommandGetButtonStates, 1, body),
	}}
	d, _ := newTestDevice(ft)

	s, err := d.ButtonStates()
	require.NoError(t, err)
	assert.True(t, s.IsPressed(ButtonEffectMegaphone))
	assert.Equal(t, uint8(0x40), s.Volumes[0])

	hdr, _ := sentFrame(t, ft.writes[0])
	assert.Equal(t, uint32(CommandGetButtonStates), hdr.Command)
}

func TestDeviceButtonStatesShortResponse(t *testing.T) {
	ft := &fakeTransport{reads: []readResult{
		respond(CommandGetButtonStates, 1, []byte{0x01, 0x02}),
	}}
	d, _ := newTestDevice(ft)

	_, err := d.ButtonStates()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
