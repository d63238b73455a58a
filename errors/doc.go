// Package errors provides structured error types for the UTF-T transcoder.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes the byte offset in the input where the
// problem was found and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindTruncated).
//		Offset(42).
//		Detail("marker needs 3 payload bytes, 1 remaining").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Truncated(42, 1)
//	err := errors.Overflow(errors.PhaseDecode, 7, 0x110000)
//
// All errors implement the standard error interface and support errors.Is/As;
// Is matches on the Phase/Kind pair so callers can test by category.
package errors
