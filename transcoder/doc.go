// Package transcoder converts UTF-T encoded byte streams to UTF-8.
//
// UTF-T is the variable-length character encoding used by the Baan ERP
// system. This package decodes it and re-encodes the code points as
// canonical UTF-8 in a single pass:
//
//	┌────────────────────────────────────────────────────┐
//	│ UTF-T bytes → [Transcoder] → canonical UTF-8 bytes │
//	└────────────────────────────────────────────────────┘
//
// # UTF-T Wire Format
//
// Each unit starts with one of three byte forms:
//
//	Form            Trigger             Consumes  Code point
//	─────────────────────────────────────────────────────────────────
//	ASCII           top bit clear       1 byte    the byte itself
//	marker          byte == 0x9B        4 bytes   21-bit payload - 0x0F0000
//	high-bit        top bit set, ≠0x9B  see Mode  historical defect, see below
//
// The marker form carries 7 bits in each of its 3 payload bytes,
// concatenated big-endian, offset by 0x0F0000. For example:
//
//	9B BC 81 E7  →  U+00E7  →  C3 A7       (ç)
//	9B BC C1 AC  →  U+20AC  →  E2 82 AC    (€)
//	9B C3 A2 9E  →  U+1D11E →  F0 9D 84 9E (𝄞)
//
// # Modes
//
// The original Baan-era C decoder mishandled the high-bit single-byte form:
// it consumed one byte but advanced the cursor by two, silently skipping the
// following byte. Deployed data may depend on that skip, so the behavior is
// selectable:
//
//	ModeStrict  - high-bit bytes are rejected as invalid input (default)
//	ModeCompat  - bit-for-bit reproduction of the original cursor skip
//
// ModeStrict additionally rejects marker payloads below the 0x0F0000 offset
// and decoded surrogate code points; ModeCompat reproduces the original's
// unsigned wraparound for them.
//
// # Key Types
//
//	Transcoder   - one-pass UTF-T to UTF-8 conversion
//	Mode         - strict or compatibility decoding
//	Transformer  - streaming adapter via golang.org/x/text/transform
//
// # Output Buffer
//
// Output is accumulated in an owned buffer that grows in fixed 512-byte
// increments. Growth always happens before a unit is written and the buffer
// always keeps at least 4 free bytes, the worst-case UTF-8 emission, so a
// single unit can never overflow between growth checks. The returned slice
// is a right-sized copy; working buffers are recycled through a pool.
//
// # Thread Safety
//
// A Transcoder holds no state between calls and is safe for concurrent use.
// Every call owns its cursor and output buffer exclusively.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[decode] truncated_sequence at offset 12: marker needs 3 payload bytes, 1 remaining
//	[decode] invalid_byte at offset 3: byte 0xC0 is not a valid unit start
//
// Any error fails the whole call; no partial output is returned.
package transcoder
