package goxlr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChannel(t *testing.T) {
	ch, err := ParseChannel("music")
	require.NoError(t, err)
	assert.Equal(t, ChannelMusic, ch)

	ch, err = ParseChannel("MICMONITOR")
	require.NoError(t, err)
	assert.Equal(t, ChannelMicMonitor, ch)

	_, err = ParseChannel("subwoofer")
	assert.Error(t, err)
}

func TestParseFader(t *testing.T) {
	f, err := ParseFader("a")
	require.NoError(t, err)
	assert.Equal(t, FaderA, f)

	f, err = ParseFader("D")
	require.NoError(t, err)
	assert.Equal(t, FaderD, f)

	_, err = ParseFader("E")
	assert.Error(t, err)
}

func TestChannelString(t *testing.T) {
	assert.Equal(t, "Mic", ChannelMic.String())
	assert.Equal(t, "LineOut", ChannelLineOut.String())
	assert.Equal(t, "Channel(99)", Channel(99).String())
}

func TestFaderString(t *testing.T) {
	assert.Equal(t, "A", FaderA.String())
	assert.Equal(t, "D", FaderD.String())
	assert.Equal(t, "Fader(9)", Fader(9).String())
}

func TestSetVolume(t *testing.T) {
	ft := &fakeTransport{reads: []readResult{
		respond(CommandSetChannelVolume(ChannelMusic), 1, nil),
	}}
	d, _ := newTestDevice(ft)

	require.NoError(t, d.SetVolume(ChannelMusic, 200))

	hdr, body := sentFrame(t, ft.writes[0])
	assert.Equal(t, uint32(CommandSetChannelVolume(ChannelMusic)), hdr.Command)
	assert.Equal(t, []byte{200}, body)
}

func TestSetChannelState(t *testing.T) {
	ft := &fakeTransport{reads: []readResult{
		respond(CommandSetChannelState(ChannelMic), 1, nil),
	}}
	d, _ := newTestDevice(ft)

	require.NoError(t, d.SetChannelState(ChannelMic, Muted))

	hdr, body := sentFrame(t, ft.writes[0])
	assert.Equal(t, uint32(CommandSetChannelState(ChannelMic)), hdr.Command)
	assert.Equal(t, []byte{0x01}, body)
}

func TestSetFader(t *testing.T) {
	ft := &fakeTransport{reads: []readResult{
		respond(CommandSetFader(FaderB), 1, nil),
	}}
	d, _ := newTestDevice(ft)

	require.NoError(t, d.SetFader(FaderB, ChannelChat))

	hdr, body := sentFrame(t, ft.writes[0])
	assert.Equal(t, uint32(CommandSetFader(FaderB)), hdr.Command)
	assert.Equal(t, []byte{byte(ChannelChat)}, body)
}
