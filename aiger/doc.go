// SPDX-License-Identifier: MIT
//
// Package aiger implements the binary AIGER file format codec (header,
// latches with initialization, typed primary outputs, justice groupings,
// delta-encoded AND gates, and a trailing symbol table) plus a separate,
// simpler compact marshal/unmarshal binary format for quick round-tripping
// between aigkit processes.
//
// AI-Hints (practical):
//   - ReadAIGER/WriteAIGER are bit-exact: read(write(g)) round-trips every
//     PI, latch (init+next), AND set, PO (fanin+type), and named symbol.
//   - Marshal/Unmarshal never touch a filesystem; pass io.Reader/io.Writer
//     or use the byte-slice helpers if you already have the whole blob.
//   - Decode failures are always *DecodeError, wrapping the underlying
//     cause with github.com/pkg/errors and the byte offset where known;
//     unwrap with errors.As to recover it.
package aiger
