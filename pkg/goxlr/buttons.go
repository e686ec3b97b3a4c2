package goxlr

import (
	"encoding/binary"
	"fmt"
)

// Button is a physical control surface button. Its value is the bit
// position the device uses in the pressed-button mask.
type Button uint8

const (
	ButtonEffectSelect1      Button = 0
	ButtonEffectSelect5      Button = 1
	ButtonEffectMegaphone    Button = 2
	ButtonSamplerTopLeft     Button = 3
	ButtonFader1Mute         Button = 4
	ButtonEffectSelect2      Button = 5
	ButtonEffectSelect6      Button = 6
	ButtonEffectRobot        Button = 7
	ButtonSamplerTopRight    Button = 8
	ButtonFader2Mute         Button = 9
	ButtonEffectSelect3      Button = 10
	ButtonEffectHardTune     Button = 11
	ButtonSamplerSelectC     Button = 12
	ButtonSamplerBottomRight Button = 13
	ButtonFader3Mute         Button = 14
	ButtonEffectSelect4      Button = 15
	ButtonSamplerSelectA     Button = 16
	ButtonSamplerBottomLeft  Button = 17
	ButtonSamplerClear       Button = 18
	ButtonFader4Mute         Button = 19
	ButtonSamplerSelectB     Button = 20
	ButtonEffectFx           Button = 21
	ButtonBleep              Button = 22
	ButtonCough              Button = 23
)

// ButtonCount is the number of bits the device uses in the
// pressed-button mask.
const ButtonCount = 24

var buttonNames = map[Button]string{
	ButtonEffectSelect1:      "EffectSelect1",
	ButtonEffectSelect5:      "EffectSelect5",
	ButtonEffectMegaphone:    "EffectMegaphone",
	ButtonSamplerTopLeft:     "SamplerTopLeft",
	ButtonFader1Mute:         "Fader1Mute",
	ButtonEffectSelect2:      "EffectSelect2",
	ButtonEffectSelect6:      "EffectSelect6",
	ButtonEffectRobot:        "EffectRobot",
	ButtonSamplerTopRight:    "SamplerTopRight",
	ButtonFader2Mute:         "Fader2Mute",
	ButtonEffectSelect3:      "EffectSelect3",
	ButtonEffectHardTune:     "EffectHardTune",
	ButtonSamplerSelectC:     "SamplerSelectC",
	ButtonSamplerBottomRight: "SamplerBottomRight",
	ButtonFader3Mute:         "Fader3Mute",
	ButtonEffectSelect4:      "EffectSelect4",
	ButtonSamplerSelectA:     "SamplerSelectA",
	ButtonSamplerBottomLeft:  "SamplerBottomLeft",
	ButtonSamplerClear:       "SamplerClear",
	ButtonFader4Mute:         "Fader4Mute",
	ButtonSamplerSelectB:     "SamplerSelectB",
	ButtonEffectFx:           "EffectFx",
	ButtonBleep:              "Bleep",
	ButtonCough:              "Cough",
}

func (b Button) String() string {
	if s, ok := buttonNames[b]; ok {
		return s
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// ButtonStates is a snapshot of the control surface: which buttons
// are held, where the encoders sit and where the faders are.
type ButtonStates struct {
	// Pressed holds one bit per button, indexed by Button values.
	Pressed uint32
	// Encoders are the detent positions of the rotary encoders,
	// ordered pitch, gender, reverb, echo. Positions left of centre
	// are negative.
	Encoders [4]int8
	// Volumes are the current fader levels, ordered A to D.
	Volumes [4]uint8
}

// IsPressed reports whether a button is currently held down.
func (s ButtonStates) IsPressed(b Button) bool {
	return s.Pressed&(1<<b) != 0
}

func parseButtonStates(b []byte) (ButtonStates, error) {
	if len(b) < 12 {
		return ButtonStates{}, fmt.Errorf("%w: button state body is %d bytes, want 12", ErrMalformedResponse, len(b))
	}

	var s ButtonStates
	s.Pressed = binary.LittleEndian.Uint32(b[0:4])
	for i := 0; i < 4; i++ {
		s.Encoders[i] = int8(b[4+i])
		s.Volumes[i] = b[8+i]
	}
	return s, nil
}

// ButtonStates reads a control surface snapshot from the device.
func (d *Device) ButtonStates() (ButtonStates, error) {
	body, err := d.Execute(CommandGetButtonStates, nil)
	if err != nil {
		return ButtonStates{}, err
	}
	return parseButtonStates(body)
}
