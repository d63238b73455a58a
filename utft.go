package utft

import (
	"github.com/eppesuig/baan-utft/transcoder"
)

// ToUTF8 converts a UTF-T byte sequence to canonical UTF-8. Malformed input
// (a truncated 4-byte form, a stray high-bit byte, an out-of-range payload)
// fails the whole call; no partial output is returned.
func ToUTF8(in []byte) ([]byte, error) {
	return transcoder.New().Transcode(in)
}

// ToUTF8Compat converts a UTF-T byte sequence to UTF-8 reproducing the
// original Baan-era decoder bit for bit, including its cursor skip after
// high-bit single bytes. Truncated 4-byte forms still fail instead of
// reading out of bounds.
func ToUTF8Compat(in []byte) ([]byte, error) {
	return transcoder.NewWithMode(transcoder.ModeCompat).Transcode(in)
}
