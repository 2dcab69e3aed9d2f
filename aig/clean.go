// SPDX-License-Identifier: MIT
// Package: aigkit/aig
//
// clean.go — Clean (cone extraction into a fresh Graph) and
// ExtractJusticePO (single-justice-property extraction).
package aig

// Clean returns a new Graph containing only the sequential cone of the
// given POs (all POs if pos is nil):
//
//  1. compute the sequential cone of every selected PO's fanin
//  2. walk construction order; rebuild each reached PI/AND/LATCH into the
//     fresh graph with identical latch init
//  3. preserve names: when a source literal maps to a negated destination
//     literal, the preserved name is prefixed with "~"
//  4. rebind latch next pointers; copy PO fanins, names, and types
//
// Buffers are not permitted anywhere in the selected cone: the canonical
// policy here is that callers convert or fold buffers before calling
// Clean (see Cutpoint). Encountering one is ErrHasBuffers.
func (g *Graph) Clean(pos []int) (*Graph, error) {
	if pos == nil {
		for i := range g.pos {
			pos = append(pos, i)
		}
	}

	roots := make([]Lit, len(pos))
	for i, id := range pos {
		roots[i] = g.pos[id].fanin
	}
	cone := g.GetSeqCone(roots, nil)

	dst := NewGraph()
	lm := NewLitMap()

	visit := func(src, df Lit) {
		if name, ok := g.GetNameByID(src); ok {
			if IsNegated(df) {
				_ = dst.SetName(Positive(df), "~"+name)
			} else {
				_ = dst.SetName(df, name)
			}
		}
		lm.Set(src, df)
	}

	for _, f := range g.ConstructionOrder() {
		if _, ok := cone[f]; !ok {
			continue
		}

		n := g.deref(f)
		switch n.kind {
		case KindPI:
			visit(f, dst.CreatePI(""))
		case KindAnd:
			visit(f, dst.CreateAnd(lm.MustGet(n.left), lm.MustGet(n.right)))
		case KindLatch:
			l := dst.CreateLatch("", n.init)
			visit(f, l)
		case KindBuffer:
			return nil, ErrHasBuffers
		}
	}

	// Second pass: rebind latch next pointers now that every literal in
	// the cone has a destination mapping.
	for _, f := range g.ConstructionOrder() {
		if _, ok := cone[f]; !ok {
			continue
		}
		if n := g.deref(f); n.kind == KindLatch && n.nextBound {
			_ = dst.SetNext(lm.MustGet(f), lm.MustGet(n.next))
		}
	}

	for _, id := range pos {
		p := g.pos[id]
		name, _ := g.GetNameByPO(id)
		dst.CreatePO(lm.MustGet(p.fanin), name, p.typ)
	}

	return dst, nil
}

// ExtractJusticePO produces a new Graph that keeps only the cone(s) needed
// for a single justice property jPO: every CONSTRAINT and FAIRNESS PO,
// and the JUSTICE POs of jPO's own group, with latches/PIs rebuilt on
// demand and a single justice group recreated at the destination.
func (g *Graph) ExtractJusticePO(jPO int) (*Graph, error) {
	groupIdx := -1
	for i, ids := range g.justice {
		for _, id := range ids {
			if id == jPO {
				groupIdx = i
			}
		}
	}

	var keep []int
	for _, e := range g.POsByType(POConstraint) {
		keep = append(keep, e.ID)
	}
	for _, e := range g.POsByType(POFairness) {
		keep = append(keep, e.ID)
	}
	var justicePOs []int
	if groupIdx >= 0 {
		justicePOs = g.justice[groupIdx]
	} else {
		justicePOs = []int{jPO}
	}
	keep = append(keep, justicePOs...)

	dst, err := g.Clean(keep)
	if err != nil {
		return nil, err
	}

	// Clean preserves PO order/type/fanin/names; recreate the justice
	// group over the tail of justicePOs' positions in dst.
	start := len(keep) - len(justicePOs)
	ids := make([]int, len(justicePOs))
	for i := range justicePOs {
		ids[i] = start + i
	}
	if _, err := dst.CreateJustice(ids); err != nil {
		return nil, err
	}

	return dst, nil
}
