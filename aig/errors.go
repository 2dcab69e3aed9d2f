// SPDX-License-Identifier: MIT
// Package: aigkit/aig
//
// errors.go — sentinel errors for the aig package.
//
// Error policy:
//   - Sentinels are package-level vars; callers branch with errors.Is.
//   - Every violation here is a programmer error per the InvariantViolation,
//     NotSupported, and NameCollision error kinds: the library fails fast
//     and attempts no recovery. Sentinels are never wrapped with formatted
//     strings at definition site; call sites attach context via %w.
package aig

import "errors"

// ErrWrongKind indicates a mutator or accessor was called on a node of the
// wrong kind (e.g. SetNext on a non-latch literal).
var ErrWrongKind = errors.New("aig: operation requires a different node kind")

// ErrBufferFaninOrder indicates a buffer's fanin literal was set to a
// literal that is not strictly less than the buffer's own literal, which
// would break the forward-DAG invariant on buffer fanins.
var ErrBufferFaninOrder = errors.New("aig: buffer fanin must precede buffer literal")

// ErrJusticeNotTyped indicates create_justice was given a PO id whose type
// is not JUSTICE.
var ErrJusticeNotTyped = errors.New("aig: justice group member is not JUSTICE-typed")

// ErrPOOutOfRange indicates a PO id outside [0, n_pos).
var ErrPOOutOfRange = errors.New("aig: po id out of range")

// ErrNameCollision indicates SetName/SetPOName was called with an
// already-bound name or an already-named literal/PO.
var ErrNameCollision = errors.New("aig: name already bound")

// ErrNegatedName indicates an attempt to attach a name to a negated literal;
// names only ever attach to positive literals.
var ErrNegatedName = errors.New("aig: cannot name a negated literal")

// ErrCutpointNotBuffer indicates Cutpoint was called on a literal that is
// not a buffer, or a buffer without a bound name.
var ErrCutpointNotBuffer = errors.New("aig: cutpoint requires a named buffer")

// ErrHasBuffers indicates Clean met a live buffer in the sequential cone
// of the selected POs; Clean's output never contains buffers, so callers
// must fold or cutpoint them first.
var ErrHasBuffers = errors.New("aig: buffers are not permitted in clean's input cone")

// ErrNotCombinational indicates an operation that requires a purely
// combinational graph (no latches, no buffers) was given one that has
// either.
var ErrNotCombinational = errors.New("aig: operation requires a combinational graph")
