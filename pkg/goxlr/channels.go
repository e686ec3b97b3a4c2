package goxlr

import (
	"fmt"
	"strings"
)

// Channel is a mixer channel whose volume and mute state the device
// controls.
type Channel uint8

const (
	ChannelMic Channel = iota
	ChannelLineIn
	ChannelConsole
	ChannelSystem
	ChannelGame
	ChannelChat
	ChannelSample
	ChannelMusic
	ChannelHeadphones
	ChannelMicMonitor
	ChannelLineOut
)

var channelNames = map[Channel]string{
	ChannelMic:        "Mic",
	ChannelLineIn:     "LineIn",
	ChannelConsole:    "Console",
	ChannelSystem:     "System",
	ChannelGame:       "Game",
	ChannelChat:       "Chat",
	ChannelSample:     "Sample",
	ChannelMusic:      "Music",
	ChannelHeadphones: "Headphones",
	ChannelMicMonitor: "MicMonitor",
	ChannelLineOut:    "LineOut",
}

func (c Channel) String() string {
	if s, ok := channelNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Channel(%d)", uint8(c))
}

// ParseChannel resolves a channel by name, case-insensitively.
func ParseChannel(s string) (Channel, error) {
	for c, name := range channelNames {
		if strings.EqualFold(name, s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown channel %q", s)
}

// Fader is one of the four motorised channel faders.
type Fader uint8

const (
	FaderA Fader = iota
	FaderB
	FaderC
	FaderD
)

func (f Fader) String() string {
	if f > FaderD {
		return fmt.Sprintf("Fader(%d)", uint8(f))
	}
	return string(rune('A' + f))
}

// ParseFader resolves a fader by its letter, case-insensitively.
func ParseFader(s string) (Fader, error) {
	switch strings.ToUpper(s) {
	case "A":
		return FaderA, nil
	case "B":
		return FaderB, nil
	case "C":
		return FaderC, nil
	case "D":
		return FaderD, nil
	}
	return 0, fmt.Errorf("unknown fader %q", s)
}

// Encoder is one of the four rotary effect encoders on the full-size
// device.
type Encoder uint8

const (
	EncoderPitch Encoder = iota
	EncoderGender
	EncoderReverb
	EncoderEcho
)

// InputChannel identifies an input row of the routing matrix.
type InputChannel uint8

const (
	InputMic InputChannel = iota
	InputChat
	InputMusic
	InputGame
	InputConsole
	InputLineIn
	InputSystem
	InputSamples
)

// ChannelState is the mute state carried by SetChannelState.
type ChannelState uint8

const (
	Unmuted ChannelState = 0x00
	Muted   ChannelState = 0x01
)

func (s ChannelState) String() string {
	switch s {
	case Unmuted:
		return "unmuted"
	case Muted:
		return "muted"
	}
	return fmt.Sprintf("ChannelState(%d)", uint8(s))
}

// SetVolume sets a channel volume. 0 is silent, 255 full scale.
func (d *Device) SetVolume(ch Channel, volume uint8) error {
	_, err := d.Execute(CommandSetChannelVolume(ch), []byte{volume})
	return err
}

// SetChannelState mutes or unmutes a channel.
func (d *Device) SetChannelState(ch Channel, state ChannelState) error {
	_, err := d.Execute(CommandSetChannelState(ch), []byte{byte(state)})
	return err
}

// SetFader assigns a channel to a physical fader.
func (d *Device) SetFader(f Fader, ch Channel) error {
	_, err := d.Execute(CommandSetFader(f), []byte{byte(ch)})
	return err
}
