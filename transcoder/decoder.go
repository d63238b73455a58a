package transcoder

import (
	"github.com/eppesuig/baan-utft/errors"
)

// Mode selects how the decoder treats the high-bit single-byte form and
// out-of-range marker payloads.
type Mode int

const (
	// ModeStrict rejects high-bit single bytes, marker payloads below the
	// UTF-T offset, and surrogate code points.
	ModeStrict Mode = iota

	// ModeCompat reproduces the original C decoder bit for bit: a high-bit
	// byte decodes to its own value and skips the byte after it, and
	// out-of-range payloads wrap around unsigned arithmetic.
	ModeCompat
)

func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeCompat:
		return "compat"
	default:
		return "unknown"
	}
}

const (
	// marker introduces the 4-byte UTF-T form.
	marker = 0x9B

	// payloadOffset is subtracted from the 21-bit marker payload to obtain
	// the code point.
	payloadOffset = 0x0F0000

	// markerLen is the total size of the marker form: 0x9B plus 3 payload
	// bytes of 7 bits each.
	markerLen = 4
)

// decodeUnit decodes one UTF-T unit starting at pos. It returns the code
// point and the cursor advance. The advance can exceed the number of bytes
// inspected: in ModeCompat the high-bit form consumes one byte but advances
// by two, matching the original decoder.
func decodeUnit(in []byte, pos int, mode Mode) (c uint32, advance int, err error) {
	b := in[pos]

	switch {
	case b == marker:
		if pos+markerLen > len(in) {
			return 0, 0, errors.Truncated(pos, len(in)-pos-1)
		}
		b1 := in[pos+1]
		b2 := in[pos+2]
		b3 := in[pos+3]
		payload := uint32(b3&0x7F) | uint32(b2&0x7F)<<7 | uint32(b1&0x7F)<<14
		if mode == ModeStrict {
			if payload < payloadOffset {
				return 0, 0, errors.Underflow(pos, payload)
			}
			c = payload - payloadOffset
			if c >= 0xD800 && c <= 0xDFFF {
				return 0, 0, errors.Surrogate(pos, c)
			}
			return c, markerLen, nil
		}
		// Unsigned wraparound for payloads below the offset, as in the
		// original.
		return payload - payloadOffset, markerLen, nil

	case b&0x80 != 0:
		if mode == ModeStrict {
			return 0, 0, errors.InvalidByte(pos, b)
		}
		// The original advanced the cursor by 2 here despite reading a
		// single byte, skipping whatever follows.
		return uint32(b), 2, nil

	default:
		return uint32(b), 1, nil
	}
}
