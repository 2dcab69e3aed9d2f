// SPDX-License-Identifier: MIT
// Package: aigkit/aig
//
// query.go — read-only accessors: kind predicates, fanin/latch/PO/justice
// accessors, sizes, and deterministic iterators over PIs, latches, AND
// gates, nonterminals, POs, and POs-by-type. Iteration order always
// matches insertion (construction) order.
package aig

// IsConst0 reports whether f refers to the constant-0 node.
func (g *Graph) IsConst0(f Lit) bool { return g.deref(f).kind == KindConst0 }

// IsPI reports whether f refers to a primary input.
func (g *Graph) IsPI(f Lit) bool { return g.deref(f).kind == KindPI }

// IsLatch reports whether f refers to a latch.
func (g *Graph) IsLatch(f Lit) bool { return g.deref(f).kind == KindLatch }

// IsAnd reports whether f refers to an AND gate.
func (g *Graph) IsAnd(f Lit) bool { return g.deref(f).kind == KindAnd }

// IsBuffer reports whether f refers to a (possibly converted) buffer slot
// that is still of kind BUFFER.
func (g *Graph) IsBuffer(f Lit) bool { return g.deref(f).kind == KindBuffer }

// IsNonterminal reports whether f is an AND or BUFFER node.
func (g *Graph) IsNonterminal(f Lit) bool { return g.deref(f).isNonterminal() }

// AndFanins returns the (left, right) fanin literals of AND gate f.
func (g *Graph) AndFanins(f Lit) (left, right Lit) {
	n := g.deref(f)
	return n.left, n.right
}

// BufIn returns buffer b's fanin literal.
func (g *Graph) BufIn(b Lit) Lit { return g.deref(b).right }

// Init returns latch l's initialization value.
func (g *Graph) Init(l Lit) InitVal { return g.deref(l).init }

// Next returns latch l's next-state literal and whether it has been bound.
func (g *Graph) Next(l Lit) (Lit, bool) {
	n := g.deref(l)
	return n.next, n.nextBound
}

// Fanins returns the combinational fanins of f: both literals for an AND,
// the single fanin for a BUFFER, none otherwise. Latches are terminals in
// this view.
func (g *Graph) Fanins(f Lit) []Lit {
	n := g.deref(f)
	switch n.kind {
	case KindAnd:
		return []Lit{n.left, n.right}
	case KindBuffer:
		return []Lit{n.right}
	default:
		return nil
	}
}

// SeqFanins returns the fanins of f used for sequential traversal: like
// Fanins, but a latch also yields its next literal (nothing while next is
// unbound).
func (g *Graph) SeqFanins(f Lit) []Lit {
	n := g.deref(f)
	if n.kind == KindLatch {
		if !n.nextBound {
			return nil
		}
		return []Lit{n.next}
	}
	return g.Fanins(f)
}

// POFanin returns PO po's fanin literal.
func (g *Graph) POFanin(poID int) Lit { return g.pos[poID].fanin }

// POType returns PO po's type.
func (g *Graph) POType(poID int) POType { return g.pos[poID].typ }

// NPIs returns the number of primary inputs.
func (g *Graph) NPIs() int { return len(g.pis) }

// NLatches returns the number of latches.
func (g *Graph) NLatches() int { return len(g.latches) }

// NBuffers returns the number of buffer slots ever created (including
// invalidated ones).
func (g *Graph) NBuffers() int { return len(g.buffers) }

// NNonterminals returns the number of AND and BUFFER nodes combined.
func (g *Graph) NNonterminals() int {
	return len(g.nodes) - 1 - g.NLatches() - g.NPIs()
}

// NAnds returns the number of AND gates (nonterminals minus live buffers;
// buffers already converted to PIs are not counted either).
func (g *Graph) NAnds() int {
	count := 0
	for _, n := range g.nodes {
		if n.kind == KindAnd {
			count++
		}
	}
	return count
}

// NPOs returns the number of primary outputs.
func (g *Graph) NPOs() int { return len(g.pos) }

// NPOsByType returns the number of POs of the given type.
func (g *Graph) NPOsByType(typ POType) int {
	n := 0
	for _, p := range g.pos {
		if p.typ == typ {
			n++
		}
	}
	return n
}

// NJustice returns the number of justice groups.
func (g *Graph) NJustice() int { return len(g.justice) }

// PIs returns the ordered list of PI literals.
func (g *Graph) PIs() []Lit { return append([]Lit(nil), g.pis...) }

// PIByID returns the literal of the pi_id-th primary input.
func (g *Graph) PIByID(piID int) Lit { return g.pis[piID] }

// Latches returns the ordered list of latch literals.
func (g *Graph) Latches() []Lit { return append([]Lit(nil), g.latches...) }

// Buffers returns the ordered list of still-live buffer literals.
func (g *Graph) Buffers() []Lit {
	out := make([]Lit, 0, len(g.buffers))
	for i, b := range g.buffers {
		if g.buffersValid[i] {
			out = append(out, b)
		}
	}
	return out
}

// AndGates returns the ordered list of AND-gate literals, in construction
// order.
func (g *Graph) AndGates() []Lit {
	out := make([]Lit, 0, g.NAnds())
	for i, n := range g.nodes {
		if n.kind == KindAnd {
			out = append(out, litFromID(i))
		}
	}
	return out
}

// Nonterminals returns the ordered list of AND/BUFFER literals, in
// construction order. Construction order over nonterminals and PI/latch
// fanins is guaranteed to be a valid topological order.
func (g *Graph) Nonterminals() []Lit {
	out := make([]Lit, 0, g.NNonterminals())
	for i, n := range g.nodes {
		if n.isNonterminal() {
			out = append(out, litFromID(i))
		}
	}
	return out
}

// ConstructionOrder returns every node literal in construction (insertion)
// order, excluding CONST0 itself.
func (g *Graph) ConstructionOrder() []Lit {
	out := make([]Lit, 0, len(g.nodes)-1)
	for i := 1; i < len(g.nodes); i++ {
		out = append(out, litFromID(i))
	}
	return out
}

// POEntry is one row of iteration over POs: its id, fanin, and type.
type POEntry struct {
	ID    int
	Fanin Lit
	Type  POType
}

// POs returns every PO in creation order.
func (g *Graph) POs() []POEntry {
	out := make([]POEntry, len(g.pos))
	for i, p := range g.pos {
		out[i] = POEntry{ID: i, Fanin: p.fanin, Type: p.typ}
	}
	return out
}

// POsByType returns every PO of the given type, in creation order.
func (g *Graph) POsByType(typ POType) []POEntry {
	var out []POEntry
	for i, p := range g.pos {
		if p.typ == typ {
			out = append(out, POEntry{ID: i, Fanin: p.fanin, Type: p.typ})
		}
	}
	return out
}

// POFaninsByType returns the fanin literals of every PO of the given type,
// in creation order.
func (g *Graph) POFaninsByType(typ POType) []Lit {
	var out []Lit
	for _, p := range g.pos {
		if p.typ == typ {
			out = append(out, p.fanin)
		}
	}
	return out
}

// JusticeProperties returns every justice group as (index, PO ids).
func (g *Graph) JusticeProperties() [][]int {
	out := make([][]int, len(g.justice))
	for i, ids := range g.justice {
		out[i] = append([]int(nil), ids...)
	}
	return out
}

// JusticePOs returns the PO ids of justice group jID.
func (g *Graph) JusticePOs(jID int) []int {
	return append([]int(nil), g.justice[jID]...)
}
