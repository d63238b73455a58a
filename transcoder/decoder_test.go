package transcoder

import (
	stderrors "errors"
	"testing"

	"github.com/eppesuig/baan-utft/errors"
)

func TestDecodeUnit_Forms(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		pos     int
		mode    Mode
		c       uint32
		advance int
	}{
		{"ascii at start", []byte{'A'}, 0, ModeStrict, 0x41, 1},
		{"ascii NUL", []byte{0x00}, 0, ModeStrict, 0x00, 1},
		{"ascii DEL", []byte{0x7F}, 0, ModeStrict, 0x7F, 1},
		{"ascii mid-stream", []byte{'x', 'y'}, 1, ModeStrict, 0x79, 1},
		{"marker c-cedilla", []byte{0x9B, 0xBC, 0x81, 0xE7}, 0, ModeStrict, 0x00E7, 4},
		{"marker euro", []byte{0x9B, 0xBC, 0xC1, 0xAC}, 0, ModeStrict, 0x20AC, 4},
		{"marker G clef", []byte{0x9B, 0xC3, 0xA2, 0x9E}, 0, ModeStrict, 0x1D11E, 4},
		{"marker mid-stream", []byte{'A', 0x9B, 0xBC, 0x81, 0xE7}, 1, ModeStrict, 0x00E7, 4},
		{"marker max payload", []byte{0x9B, 0xFF, 0xFF, 0xFF}, 0, ModeStrict, 0x10FFFF, 4},
		{"compat high-bit advances by 2", []byte{0xC3, 'A'}, 0, ModeCompat, 0xC3, 2},
		{"compat high-bit at end", []byte{0xFF}, 0, ModeCompat, 0xFF, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, advance, err := decodeUnit(tt.in, tt.pos, tt.mode)
			if err != nil {
				t.Fatalf("decodeUnit failed: %v", err)
			}
			if c != tt.c {
				t.Errorf("code point = %#x, want %#x", c, tt.c)
			}
			if advance != tt.advance {
				t.Errorf("advance = %d, want %d", advance, tt.advance)
			}
		})
	}
}

func TestDecodeUnit_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		pos  int
		mode Mode
		kind errors.Kind
	}{
		{"truncated lone marker", []byte{0x9B}, 0, ModeStrict, errors.KindTruncated},
		{"truncated one payload byte", []byte{0x9B, 0xBC}, 0, ModeStrict, errors.KindTruncated},
		{"truncated two payload bytes", []byte{0x9B, 0xBC, 0xC1}, 0, ModeStrict, errors.KindTruncated},
		{"truncated in compat mode", []byte{0x9B, 0xBC}, 0, ModeCompat, errors.KindTruncated},
		{"truncated mid-stream", []byte{'A', 0x9B, 0xBC, 0xC1}, 1, ModeStrict, errors.KindTruncated},
		{"strict high-bit byte", []byte{0xC3}, 0, ModeStrict, errors.KindInvalidByte},
		{"strict payload underflow", []byte{0x9B, 0x80, 0x80, 0x80}, 0, ModeStrict, errors.KindInvalidData},
		{"strict surrogate", markerUnit(0xD800), 0, ModeStrict, errors.KindInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := decodeUnit(tt.in, tt.pos, tt.mode)
			if err == nil {
				t.Fatal("decodeUnit succeeded, want error")
			}
			if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: tt.kind}) {
				t.Errorf("error = %v, want kind %s", err, tt.kind)
			}
			var structured *errors.Error
			if !stderrors.As(err, &structured) {
				t.Fatal("error is not a structured *errors.Error")
			}
			if structured.Offset != tt.pos {
				t.Errorf("offset = %d, want %d", structured.Offset, tt.pos)
			}
		})
	}
}

func TestDecodeUnit_MarkerByteIsNeverASCII(t *testing.T) {
	// 0x9B has the top bit set, so without the marker check it would fall
	// into the high-bit form. The marker branch must win.
	_, advance, err := decodeUnit([]byte{0x9B, 0x80, 0xA0, 0x80}, 0, ModeCompat)
	if err != nil {
		t.Fatalf("decodeUnit failed: %v", err)
	}
	if advance != markerLen {
		t.Errorf("advance = %d, want %d", advance, markerLen)
	}
}

func TestMode_String(t *testing.T) {
	if ModeStrict.String() != "strict" || ModeCompat.String() != "compat" {
		t.Error("unexpected Mode string values")
	}
	if Mode(99).String() != "unknown" {
		t.Error("out-of-range Mode should stringify as unknown")
	}
}
