// SPDX-License-Identifier: MIT
// Package: aigkit/aig
//
// compose.go — Compose rebuilds a source Graph inside this Graph using a
// caller-seeded literal map, e.g. to splice src's PIs onto arbitrary
// literals of g (self-loops back into an existing design, test harnesses
// stitching small AIGs into a larger one).
package aig

// Compose rebuilds src inside g, using the literal-to-literal map M
// (seeded by the caller, e.g. to splice src's PIs to arbitrary g
// literals). For every literal in src's construction order not already
// present in M, it creates the corresponding node in g; it then resolves
// buffer fanins and latch next pointers (which may reference literals
// created later in this same pass), and optionally copies POs.
func (g *Graph) Compose(src *Graph, m *LitMap, copyPOs bool) error {
	type pending struct {
		srcLit Lit
		dstLit Lit
	}
	var buffers, latches []pending

	for _, f := range src.ConstructionOrder() {
		if m.Has(f) {
			continue
		}

		n := src.deref(f)
		switch n.kind {
		case KindPI:
			m.Set(f, g.CreatePI(""))
		case KindAnd:
			m.Set(f, g.CreateAnd(m.MustGet(n.left), m.MustGet(n.right)))
		case KindBuffer:
			df := g.CreateBuffer(ConstFalse, "")
			m.Set(f, df)
			buffers = append(buffers, pending{f, df})
		case KindLatch:
			dl := g.CreateLatch("", n.init)
			m.Set(f, dl)
			latches = append(latches, pending{f, dl})
		}
	}

	for _, p := range buffers {
		bufIn := src.BufIn(p.srcLit)
		if err := g.SetBufIn(p.dstLit, m.MustGet(bufIn)); err != nil {
			return err
		}
	}

	for _, p := range latches {
		if next, bound := src.Next(p.srcLit); bound {
			if err := g.SetNext(p.dstLit, m.MustGet(next)); err != nil {
				return err
			}
		}
	}

	if copyPOs {
		for _, p := range src.POs() {
			name, _ := src.GetNameByPO(p.ID)
			g.CreatePO(m.MustGet(p.Fanin), name, p.Type)
		}
	}

	return nil
}
