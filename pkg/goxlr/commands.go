package goxlr

import "fmt"

// Command identifies a device operation. The upper twenty bits select
// a command group and the low twelve carry an argument such as a
// channel or fader index.
type Command uint32

// CommandResetSequence tells the device to zero its sequence counter.
// It is the only command sent with sequence number 0. Execute issues
// it automatically when the counter is about to overflow or after a
// mismatched response.
const CommandResetSequence Command = 0

const (
	groupGetButtonStates  = 0x800
	groupSetEffectParams  = 0x801
	groupSetScribble      = 0x802
	groupSetColourMap     = 0x803
	groupSetRouting       = 0x804
	groupSetFader         = 0x805
	groupSetChannelVolume = 0x806
	groupSetButtonStates  = 0x808
	groupSetChannelState  = 0x809
	groupSetEncoderValue  = 0x80A
	groupSetMicParams     = 0x80B
	groupGetMicLevel      = 0x80C
	groupGetHardwareInfo  = 0x80F
	groupSetEncoderMode   = 0x811
	groupSetFaderDisplay  = 0x814
)

func command(group, arg uint32) Command {
	return Command(group<<12 | arg&0xFFF)
}

// Commands without an argument.
const (
	CommandGetButtonStates Command = groupGetButtonStates << 12
	CommandSetEffectParams Command = groupSetEffectParams << 12
	CommandSetColourMap    Command = groupSetColourMap << 12
	CommandSetButtonStates Command = groupSetButtonStates << 12
	CommandSetMicParams    Command = groupSetMicParams << 12
	CommandGetMicLevel     Command = groupGetMicLevel << 12
)

// CommandSetFader assigns a channel to a physical fader. The body
// carries the channel.
func CommandSetFader(f Fader) Command { return command(groupSetFader, uint32(f)) }

// CommandSetChannelVolume sets the volume of a channel. The body
// carries one volume byte.
func CommandSetChannelVolume(ch Channel) Command { return command(groupSetChannelVolume, uint32(ch)) }

// CommandSetChannelState mutes or unmutes a channel. The body carries
// one ChannelState byte.
func CommandSetChannelState(ch Channel) Command { return command(groupSetChannelState, uint32(ch)) }

// CommandSetRouting rewrites one input row of the routing matrix.
func CommandSetRouting(in InputChannel) Command { return command(groupSetRouting, uint32(in)) }

// CommandSetScribble uploads a scribble strip image for a fader.
func CommandSetScribble(f Fader) Command { return command(groupSetScribble, uint32(f)) }

// CommandSetEncoderValue moves a rotary encoder to a detent position.
func CommandSetEncoderValue(e Encoder) Command { return command(groupSetEncoderValue, uint32(e)) }

// CommandSetEncoderMode reconfigures how a rotary encoder behaves.
func CommandSetEncoderMode(e Encoder) Command { return command(groupSetEncoderMode, uint32(e)) }

// CommandSetFaderDisplay changes the display style of a fader strip.
func CommandSetFaderDisplay(f Fader) Command { return command(groupSetFaderDisplay, uint32(f)) }

// CommandGetHardwareInfo reads an identity record such as the
// firmware version or serial number.
func CommandGetHardwareInfo(h HardwareInfo) Command { return command(groupGetHardwareInfo, uint32(h)) }

type commandGroup struct {
	name       string
	parametric bool
}

var commandGroups = map[uint32]commandGroup{
	groupGetButtonStates:  {"GetButtonStates", false},
	groupSetEffectParams:  {"SetEffectParams", false},
	groupSetScribble:      {"SetScribble", true},
	groupSetColourMap:     {"SetColourMap", false},
	groupSetRouting:       {"SetRouting", true},
	groupSetFader:         {"SetFader", true},
	groupSetChannelVolume: {"SetChannelVolume", true},
	groupSetButtonStates:  {"SetButtonStates", false},
	groupSetChannelState:  {"SetChannelState", true},
	groupSetEncoderValue:  {"SetEncoderValue", true},
	groupSetMicParams:     {"SetMicParams", false},
	groupGetMicLevel:      {"GetMicLevel", false},
	groupGetHardwareInfo:  {"GetHardwareInfo", true},
	groupSetEncoderMode:   {"SetEncoderMode", true},
	groupSetFaderDisplay:  {"SetFaderDisplay", true},
}

func (c Command) String() string {
	if c == CommandResetSequence {
		return "ResetSequence"
	}
	group, arg := uint32(c)>>12, uint32(c)&0xFFF
	g, ok := commandGroups[group]
	if !ok {
		return fmt.Sprintf("Command(0x%08X)", uint32(c))
	}
	if !g.parametric {
		return g.name
	}
	return fmt.Sprintf("%s(%d)", g.name, arg)
}
