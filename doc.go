// Package utft converts byte streams from the Baan ERP UTF-T character
// encoding to canonical UTF-8.
//
// The library is organized into a small set of packages:
//
//	baan-utft/           Root package with the convenience API
//	├── transcoder/      One-pass UTF-T decode and UTF-8 encode
//	├── errors/          Structured error types for debugging
//	└── cmd/utft/        Command line converter with an interactive inspector
//
// # Quick Start
//
// Convert a UTF-T byte sequence:
//
//	out, err := utft.ToUTF8(raw)
//	if err != nil {
//		return err
//	}
//
// Historical data written by the defective Baan-era decoder may need the
// compatibility mode, which reproduces that decoder bit for bit:
//
//	out, err := utft.ToUTF8Compat(raw)
//
// For streaming conversion or fine-grained control, use the transcoder
// package directly.
package utft
