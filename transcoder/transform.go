package transcoder

import (
	"io"

	"golang.org/x/text/transform"
)

// Transformer adapts the codec to golang.org/x/text/transform so it
// composes with transform.Reader, transform.Writer and chains. It is
// stateless between units: a unit split across chunks is reported as
// transform.ErrShortSrc and retried with more input.
type Transformer struct {
	transform.NopResetter
	mode Mode
}

// NewTransformer returns a transform.Transformer that converts UTF-T to
// UTF-8 in the given mode. Error offsets are relative to the current chunk.
func NewTransformer(mode Mode) Transformer {
	return Transformer{mode: mode}
}

// NewReader returns an io.Reader that yields the UTF-8 transcoding of the
// UTF-T bytes read from r.
func NewReader(r io.Reader, mode Mode) io.Reader {
	return transform.NewReader(r, NewTransformer(mode))
}

// Transform implements transform.Transformer.
func (t Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]

		// A unit whose bytes may continue in the next chunk is retried
		// once more input arrives.
		if !atEOF {
			if b == marker && nSrc+markerLen > len(src) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if t.mode == ModeCompat && b&0x80 != 0 && b != marker && nSrc+2 > len(src) {
				return nDst, nSrc, transform.ErrShortSrc
			}
		}

		c, advance, derr := decodeUnit(src, nSrc, t.mode)
		if derr != nil {
			return nDst, nSrc, derr
		}

		var unit [utf8Max]byte
		n := encodeUTF8(unit[:], c)
		if nDst+n > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], unit[:n])

		nSrc += advance
		if nSrc > len(src) {
			// ModeCompat skip past the final byte.
			nSrc = len(src)
		}
	}
	return nDst, nSrc, nil
}
