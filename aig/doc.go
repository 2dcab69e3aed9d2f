// SPDX-License-Identifier: MIT
//
// Package aig implements a literal-encoded, structurally-hashed And-Inverter
// Graph: two-input AND gates, negation-marked edges, latches forming a
// synchronous state layer, primary inputs, and typed primary outputs
// (OUTPUT, BAD_STATES, CONSTRAINT, JUSTICE, FAIRNESS).
//
// A Lit is an unsigned integer encoding (node id, polarity): the low bit is
// the inverter bit, the remaining bits identify a node. Literal 0 is
// constant-false, literal 1 is constant-true. Negation is arithmetic and
// free; this is the single most important invariant of the package.
//
// The Graph type owns a strash table mapping normalized (AND, left, right)
// triples to their literal, so structurally identical logic is never
// duplicated. Nodes are appended and never removed; a literal, once
// returned, is permanent. Latch next/init and PO fanin/type remain mutable
// until the caller is done building.
//
// AI-Hints (practical):
//   - Build with CreatePI/CreateLatch/CreateAnd/CreatePO; derive OR/XOR/ITE
//     from CreateAnd + Negate rather than hand-rolling fold logic.
//   - Use GetCone/GetSeqCone before Clean to know which POs you are keeping.
//   - Buffers only exist as Compose/cutpoint placeholders; Clean rejects
//     them on input — fold or cutpoint first.
package aig
