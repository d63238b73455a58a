package transcoder

import (
	"bytes"
	"testing"
)

func TestOutBuffer_ReserveKeepsHeadroom(t *testing.T) {
	b := newOutBuffer()
	defer b.release()

	for i := 0; i < 5000; i++ {
		b.reserve()
		if free := len(b.data) - b.n; free < utf8Max {
			t.Fatalf("after reserve at n=%d: %d free bytes, want >= %d", b.n, free, utf8Max)
		}
		b.data[b.n] = byte(i)
		b.n++
	}
}

func TestOutBuffer_GrowthStep(t *testing.T) {
	b := newOutBuffer()
	defer b.release()

	if len(b.data) != growIncrement {
		t.Fatalf("initial capacity = %d, want %d", len(b.data), growIncrement)
	}

	b.n = growIncrement - utf8Max // exactly utf8Max free: no growth yet
	b.reserve()
	if len(b.data) != growIncrement {
		t.Errorf("grew with %d free bytes, want growth only below %d", utf8Max, utf8Max)
	}

	b.n++ // fewer than utf8Max free
	b.reserve()
	if len(b.data) != 2*growIncrement {
		t.Errorf("capacity after growth = %d, want %d", len(b.data), 2*growIncrement)
	}
}

func TestOutBuffer_GrowthPreservesContent(t *testing.T) {
	b := newOutBuffer()
	defer b.release()

	var want []byte
	for i := 0; i < 3*growIncrement; i++ {
		b.write(uint32('a' + i%26))
		want = append(want, byte('a'+i%26))
	}

	if !bytes.Equal(b.bytes(), want) {
		t.Fatal("growth corrupted previously written bytes")
	}
}

func TestOutBuffer_BytesReturnsCopy(t *testing.T) {
	b := newOutBuffer()
	defer b.release()

	b.write('x')
	out := b.bytes()
	out[0] = 'y'

	if b.bytes()[0] != 'x' {
		t.Error("bytes() shares storage with the working buffer")
	}
}

func TestOutBuffer_PoolReuseStartsEmpty(t *testing.T) {
	b := newOutBuffer()
	b.write('z')
	b.release()

	b2 := newOutBuffer()
	defer b2.release()
	if b2.n != 0 {
		t.Errorf("pooled buffer starts at n=%d, want 0", b2.n)
	}
	if len(b2.bytes()) != 0 {
		t.Error("pooled buffer carries stale content")
	}
}
