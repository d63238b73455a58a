package transcoder

import "sync"

const (
	// growIncrement is the fixed buffer growth step.
	growIncrement = 512

	// Pool limit to prevent memory bloat
	poolMaxCap = 16 * growIncrement
)

// outBuffer is the append-only output buffer for one transcode call. It
// keeps at least utf8Max free bytes ahead of the write position so a single
// unit can never overflow between growth checks.
type outBuffer struct {
	data []byte
	n    int
}

var outBufferPool = sync.Pool{
	New: func() any {
		return &outBuffer{data: make([]byte, growIncrement)}
	},
}

func newOutBuffer() *outBuffer {
	b := outBufferPool.Get().(*outBuffer)
	b.n = 0
	return b
}

// release returns the buffer to the pool. The buffer is invalid after
// release.
func (b *outBuffer) release() {
	// Only pool reasonably sized buffers to prevent memory bloat
	if cap(b.data) > poolMaxCap {
		return
	}
	outBufferPool.Put(b)
}

// reserve grows the buffer by growIncrement whenever fewer than utf8Max
// free bytes remain. Must run before each unit is written, never after.
func (b *outBuffer) reserve() {
	if len(b.data)-b.n >= utf8Max {
		return
	}
	grown := make([]byte, len(b.data)+growIncrement)
	copy(grown, b.data[:b.n])
	b.data = grown
}

// write appends the canonical UTF-8 encoding of c.
func (b *outBuffer) write(c uint32) {
	b.reserve()
	b.n += encodeUTF8(b.data[b.n:], c)
}

// bytes returns a right-sized copy of the accumulated output. The working
// buffer stays owned by the pool.
func (b *outBuffer) bytes() []byte {
	out := make([]byte, b.n)
	copy(out, b.data[:b.n])
	return out
}
