package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode Phase = "decode" // UTF-T to code points
	PhaseEncode Phase = "encode" // code points to UTF-8
)

// Kind categorizes the error
type Kind string

const (
	KindTruncated   Kind = "truncated_sequence"
	KindInvalidByte Kind = "invalid_byte"
	KindOverflow    Kind = "overflow"
	KindOutOfBounds Kind = "out_of_bounds"
	KindInvalidData Kind = "invalid_data"
	KindAllocation  Kind = "allocation"
)

// Error is the structured error type used throughout the transcoder
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Offset int // byte offset in the input, -1 when not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		b.WriteString(" at offset ")
		b.WriteString(strconv.Itoa(e.Offset))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by Phase and Kind
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Offset sets the input byte offset
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Truncated creates a truncated sequence error: a 4-byte marker form began
// with fewer than 3 payload bytes remaining in the input.
func Truncated(offset, remaining int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncated,
		Offset: offset,
		Detail: fmt.Sprintf("marker needs 3 payload bytes, %d remaining", remaining),
	}
}

// InvalidByte creates an invalid byte error
func InvalidByte(offset int, b byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidByte,
		Offset: offset,
		Detail: fmt.Sprintf("byte 0x%02X is not a valid unit start", b),
		Value:  b,
	}
}

// Overflow creates an error for a decoded value outside the Unicode range
func Overflow(phase Phase, offset int, value uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Offset: offset,
		Detail: fmt.Sprintf("code point 0x%X above U+10FFFF", value),
		Value:  value,
	}
}

// Underflow creates an error for a 21-bit payload below the UTF-T offset
func Underflow(offset int, payload uint32) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidData,
		Offset: offset,
		Detail: fmt.Sprintf("payload 0x%X below UTF-T offset 0x0F0000", payload),
		Value:  payload,
	}
}

// Surrogate creates an error for a decoded UTF-16 surrogate code point
func Surrogate(offset int, value uint32) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidData,
		Offset: offset,
		Detail: fmt.Sprintf("code point 0x%X is a UTF-16 surrogate", value),
		Value:  value,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, offset, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Offset: offset,
		Detail: fmt.Sprintf("offset %d out of bounds (length %d)", offset, length),
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, offset int, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Offset: offset,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: -1,
		Detail: detail,
		Cause:  cause,
	}
}
