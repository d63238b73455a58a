package transcoder

import (
	"go.uber.org/zap"
)

// Transcoder converts UTF-T byte streams to canonical UTF-8. It holds no
// per-call state; one instance may be shared across goroutines.
type Transcoder struct {
	mode Mode
}

// New returns a Transcoder in ModeStrict.
func New() *Transcoder {
	return &Transcoder{mode: ModeStrict}
}

// NewWithMode returns a Transcoder using the given decoding mode.
func NewWithMode(mode Mode) *Transcoder {
	return &Transcoder{mode: mode}
}

// Mode reports the decoding mode.
func (t *Transcoder) Mode() Mode {
	return t.mode
}

// Transcode converts in from UTF-T to UTF-8 in one pass. The result is a
// freshly allocated slice sized exactly to the output; in is never modified.
// Empty input yields empty output. On error no partial output is returned.
func (t *Transcoder) Transcode(in []byte) ([]byte, error) {
	if len(in) == 0 {
		return []byte{}, nil
	}

	buf := newOutBuffer()
	defer buf.release()

	for pos := 0; pos < len(in); {
		c, advance, err := decodeUnit(in, pos, t.mode)
		if err != nil {
			return nil, err
		}
		buf.write(c)
		pos += advance
	}

	out := buf.bytes()
	Logger().Debug("transcode",
		zap.Int("in_bytes", len(in)),
		zap.Int("out_bytes", len(out)),
		zap.Stringer("mode", t.mode),
	)
	return out, nil
}
