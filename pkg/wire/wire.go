// Package wire implements the fixed 16-byte framing that GoXLR
// devices use on vendor control transfers. Every frame starts with a
// header followed by an optional body:
//
//	offset 0   uint32  command identifier (little endian)
//	offset 4   uint16  body length (little endian)
//	offset 6   uint16  sequence number (little endian)
//	offset 8   8 bytes reserved, always zero
package wire

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// HeaderLen is the size of the frame header in bytes.
const HeaderLen = 16

// MaxBodyLen is the largest body a frame can carry, limited by the
// 16-bit length field.
const MaxBodyLen = 0xFFFF

// Header is the decoded fixed-size prefix of a frame. The reserved
// trailing bytes are not represented; Encode writes them as zero and
// Decode ignores them.
type Header struct {
	Command  uint32
	BodyLen  uint16
	Sequence uint16
}

// Encode builds a frame from a command identifier, a sequence number
// and an optional body. The declared body length is always the actual
// length of body.
func Encode(command uint32, sequence uint16, body []byte) ([]byte, error) {
	if len(body) > MaxBodyLen {
		return nil, fmt.Errorf("body length %d exceeds %d", len(body), MaxBodyLen)
	}

	frame := make([]byte, HeaderLen+len(body))
	binary.LittleEndian.PutUint32(frame[0:4], command)
	binary.LittleEndian.PutUint16(frame[4:6], uint16(len(body)))
	binary.LittleEndian.PutUint16(frame[6:8], sequence)
	copy(frame[HeaderLen:], body)
	return frame, nil
}

// Decode splits a frame into its header and body. The body is simply
// everything after the header; callers decide how to treat a body
// whose length disagrees with the header's BodyLen.
func Decode(frame []byte) (Header, []byte, error) {
	if len(frame) < HeaderLen {
		return Header{}, nil, fmt.Errorf("frame too short: %d bytes, want at least %d", len(frame), HeaderLen)
	}

	hdr := Header{
		Command:  binary.LittleEndian.Uint32(frame[0:4]),
		BodyLen:  binary.LittleEndian.Uint16(frame[4:6]),
		Sequence: binary.LittleEndian.Uint16(frame[6:8]),
	}
	return hdr, frame[HeaderLen:], nil
}

// HexString renders bytes as dash-separated hex pairs for log output.
func HexString(b []byte) string {
	hexDigits := hex.EncodeToString(b)
	var builder strings.Builder
	for i, r := range hexDigits {
		if i > 0 && i%2 == 0 {
			builder.WriteString("-")
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
