// SPDX-License-Identifier: MIT
// Package: aigkit/aiger
//
// errors.go — MalformedInput surfaces as *DecodeError: a typed decoding
// failure carrying the byte offset where known, built with
// github.com/pkg/errors so the original cause's stack trace survives the
// wrap (pkg/errors.WithStack), matching the error kind policy of
// §7: decoder errors are recoverable by the caller, never retried here.
package aiger

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrBadHeader indicates the AIGER header line is missing the "aig" tag
// or has out-of-range/negative counts.
var ErrBadHeader = errors.New("aiger: malformed header")

// ErrTruncated indicates EOF was reached before the binary AND section or
// a required ASCII section was fully read.
var ErrTruncated = errors.New("aiger: truncated input")

// ErrBadSymbol indicates a symbol-table line did not match any of the
// i/l/o/b/c/f/j patterns.
var ErrBadSymbol = errors.New("aiger: malformed symbol table line")

// ErrBadFairnessVersion indicates the compact marshal format's fairness
// section version tag was not 1.
var ErrBadFairnessVersion = errors.New("aiger: unsupported marshal fairness version")

// DecodeError wraps a MalformedInput failure with the byte offset in the
// input stream where it was detected, when known (-1 otherwise).
type DecodeError struct {
	Offset int64
	cause  error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("aiger: decode error at offset %d: %v", e.Offset, e.cause)
	}
	return fmt.Sprintf("aiger: decode error: %v", e.cause)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *DecodeError) Unwrap() error { return e.cause }

func decodeErr(offset int64, cause error) error {
	return &DecodeError{Offset: offset, cause: errors.WithStack(cause)}
}
