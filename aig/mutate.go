// SPDX-License-Identifier: MIT
// Package: aigkit/aig
//
// mutate.go — mutators on latches, buffers, and POs. Every latch and
// buffer mutator here asserts the target's kind via the wrapped
// ErrWrongKind sentinel (Cutpoint via ErrCutpointNotBuffer); PO mutators
// check the id range via ErrPOOutOfRange. Callers branch with errors.Is.
package aig

import "fmt"

// SetInit sets latch l's initialization value.
func (g *Graph) SetInit(l Lit, init InitVal) error {
	n := g.deref(l)
	if n.kind != KindLatch {
		return fmt.Errorf("SetInit(%d): %w", l, ErrWrongKind)
	}
	n.init = init
	return nil
}

// SetNext binds latch l's next-state literal.
func (g *Graph) SetNext(l, f Lit) error {
	n := g.deref(l)
	if n.kind != KindLatch {
		return fmt.Errorf("SetNext(%d): %w", l, ErrWrongKind)
	}
	n.next = f
	n.nextBound = true
	return nil
}

// SetBufIn rebinds buffer b's fanin literal. The fanin must be strictly
// less than b itself, preserving the forward-DAG invariant on buffers.
func (g *Graph) SetBufIn(b, f Lit) error {
	n := g.deref(b)
	if n.kind != KindBuffer {
		return fmt.Errorf("SetBufIn(%d): %w", b, ErrWrongKind)
	}
	if f >= Positive(b) {
		return fmt.Errorf("SetBufIn(%d, %d): %w", b, f, ErrBufferFaninOrder)
	}
	n.right = f
	return nil
}

// SetPOFanin replaces PO po's whole (fanin, type) record with a new
// fanin, preserving its type. This corrects a latent bug in the pyaig
// source, where the (fanin,type) tuple was written into as if mutable in
// place; here the whole record is replaced atomically.
func (g *Graph) SetPOFanin(poID int, f Lit) error {
	if poID < 0 || poID >= len(g.pos) {
		return ErrPOOutOfRange
	}
	g.pos[poID] = po{fanin: f, typ: g.pos[poID].typ}
	return nil
}

// SetPOType replaces PO po's type, preserving its fanin.
func (g *Graph) SetPOType(poID int, typ POType) error {
	if poID < 0 || poID >= len(g.pos) {
		return ErrPOOutOfRange
	}
	g.pos[poID] = po{fanin: g.pos[poID].fanin, typ: typ}
	return nil
}

// ConvertBufToPI converts buffer buf into a PI in place: the buffer slot
// is invalidated but the literal persists with the same identity, now of
// kind PI. Requires buf's fanin to already be bound (non-negative is
// always true for Lit, so this only asserts the node is a live buffer).
func (g *Graph) ConvertBufToPI(buf Lit) error {
	n := g.deref(buf)
	if n.kind != KindBuffer {
		return fmt.Errorf("ConvertBufToPI(%d): %w", buf, ErrWrongKind)
	}
	g.buffersValid[n.index] = false
	piIdx := len(g.pis)
	n.kind = KindPI
	n.index = piIdx
	n.left, n.right = 0, 0
	g.pis = append(g.pis, buf)
	return nil
}

// Cutpoint converts a named buffer into a PI in place, invalidating its
// buffer slot. It requires buf to be both a buffer and named, matching
// pyaig's cutpoint contract (unnamed cutpoints would be unrecoverable on
// the far side of a write/read round trip).
func (g *Graph) Cutpoint(buf Lit) error {
	if !g.IsBuffer(buf) {
		return fmt.Errorf("Cutpoint(%d): %w", buf, ErrCutpointNotBuffer)
	}
	if !g.HasName(buf) {
		return fmt.Errorf("Cutpoint(%d): %w", buf, ErrCutpointNotBuffer)
	}
	return g.ConvertBufToPI(buf)
}
