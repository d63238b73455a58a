package transcoder

// utf8Max is the worst-case UTF-8 emission for one code point.
const utf8Max = 4

// encodeUTF8 writes the canonical UTF-8 encoding of c into buf and returns
// the number of bytes written. buf must have room for utf8Max bytes.
//
// The original C encoder used off-by-one thresholds (c < 0x7F, c < 0x7FF,
// c < 0xFFFF) that produced overlong sequences at the boundaries, and a
// broken shift in the 4-byte leading byte. The canonical formulas are used
// here instead; the worked examples in the tests pin the corrected output.
func encodeUTF8(buf []byte, c uint32) int {
	if c <= 0x7F {
		buf[0] = byte(c)
		return 1
	}

	if c <= 0x7FF {
		buf[0] = 0xC0 | byte(c>>6)
		buf[1] = 0x80 | byte(c&0x3F)
		return 2
	}

	if c <= 0xFFFF {
		buf[0] = 0xE0 | byte(c>>12)
		buf[1] = 0x80 | byte(c>>6&0x3F)
		buf[2] = 0x80 | byte(c&0x3F)
		return 3
	}

	// Masked so that ModeCompat wraparound values stay within 4 bytes.
	buf[0] = 0xF0 | byte(c>>18&0x07)
	buf[1] = 0x80 | byte(c>>12&0x3F)
	buf[2] = 0x80 | byte(c>>6&0x3F)
	buf[3] = 0x80 | byte(c&0x3F)
	return 4
}
