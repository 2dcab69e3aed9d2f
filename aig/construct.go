// SPDX-License-Identifier: MIT
// Package: aigkit/aig
//
// construct.go — the construction contract: CreatePI, CreateLatch,
// CreateAnd (with strashing and trivial-identity folding), CreateBuffer,
// CreatePO, CreateJustice, and the derived Boolean builders (Or, Xor, Iff,
// Ite, Conjunction/Disjunction, balanced variants) expressed purely in
// terms of CreateAnd and Negate.
package aig

// CreatePI appends a primary input and returns its literal. If name is
// non-empty it is bound via SetName.
func (g *Graph) CreatePI(name string) Lit {
	idx := len(g.pis)
	f := litFromID(len(g.nodes))
	g.nodes = append(g.nodes, node{kind: KindPI, index: idx})
	g.pis = append(g.pis, f)

	if name != "" {
		g.SetName(f, name)
	}
	return f
}

// CreateLatch appends a latch with the given initialization value and
// returns its literal. The latch's next pointer is unbound until SetNext
// is called. If name is non-empty it is bound via SetName.
func (g *Graph) CreateLatch(name string, init InitVal) Lit {
	idx := len(g.latches)
	f := litFromID(len(g.nodes))
	g.nodes = append(g.nodes, node{kind: KindLatch, index: idx, init: init})
	g.latches = append(g.latches, f)

	if name != "" {
		g.SetName(f, name)
	}
	return f
}

// CreateAnd returns the literal for left AND right, canonicalizing,
// folding trivial identities, and structurally hashing so that two calls
// with the same normalized fanin pair return the same literal:
//
//  1. canonicalize so left >= right (by literal value)
//  2. right==0      -> 0
//     right==1      -> left
//     left==right   -> left
//     left==right^1 -> 0
//  3. strash lookup on (left,right); a hit returns the existing literal
//  4. a miss appends a new AND node and inserts it into the strash table
func (g *Graph) CreateAnd(left, right Lit) Lit {
	if left < right {
		left, right = right, left
	}

	switch {
	case right == ConstFalse:
		return ConstFalse
	case right == ConstTrue:
		return left
	case left == right:
		return left
	case left == Negate(right):
		return ConstFalse
	}

	key := strashKey{left, right}
	if f, ok := g.strash[key]; ok {
		return f
	}

	f := litFromID(len(g.nodes))
	g.nodes = append(g.nodes, node{kind: KindAnd, left: left, right: right})
	g.strash[key] = f
	return f
}

// CreateBuffer appends a single-fanin identity placeholder node and
// returns its literal. buf_in must later be bound (via SetBufIn) to a
// literal strictly less than the buffer's own literal. Buffers exist only
// as composition placeholders and cutpoints; Clean rejects them on input.
func (g *Graph) CreateBuffer(bufIn Lit, name string) Lit {
	idx := len(g.buffers)
	f := litFromID(len(g.nodes))
	g.nodes = append(g.nodes, node{kind: KindBuffer, index: idx, right: bufIn})
	g.buffers = append(g.buffers, f)
	g.buffersValid = append(g.buffersValid, true)

	if name != "" {
		g.SetName(f, name)
	}
	return f
}

// CreatePO appends a primary output with the given fanin, type, and
// (optional) name, and returns its id.
func (g *Graph) CreatePO(f Lit, name string, typ POType) int {
	id := len(g.pos)
	g.pos = append(g.pos, po{fanin: f, typ: typ})

	if name != "" {
		g.SetPOName(id, name)
	}
	return id
}

// CreateJustice asserts every po in poIDs has type JUSTICE, appends the
// group, and returns its index. It returns ErrJusticeNotTyped if any
// member PO is not JUSTICE-typed (ErrPOOutOfRange for an unknown id) and
// then appends nothing — this is a programmer error per the package's
// InvariantViolation policy, surfaced here as a returned error to keep
// the constructor usable from fallible call sites.
func (g *Graph) CreateJustice(poIDs []int) (int, error) {
	for _, id := range poIDs {
		if id < 0 || id >= len(g.pos) {
			return -1, ErrPOOutOfRange
		}
		if g.pos[id].typ != POJustice {
			return -1, ErrJusticeNotTyped
		}
	}

	jID := len(g.justice)
	cp := append([]int(nil), poIDs...)
	g.justice = append(g.justice, cp)
	return jID, nil
}

// RemoveJustice retypes every PO referenced by any justice group back to
// OUTPUT and clears the justice-group list, so callers can rebuild groups
// from scratch with CreateJustice.
func (g *Graph) RemoveJustice() {
	for _, ids := range g.justice {
		for _, id := range ids {
			g.pos[id].typ = POOutput
		}
	}
	g.justice = nil
}

// Or returns NOT(NOT(a) AND NOT(b)).
func (g *Graph) Or(a, b Lit) Lit {
	return Negate(g.CreateAnd(Negate(a), Negate(b)))
}

// Nand returns NOT(a AND b).
func (g *Graph) Nand(a, b Lit) Lit { return Negate(g.CreateAnd(a, b)) }

// Nor returns NOT(a OR b).
func (g *Graph) Nor(a, b Lit) Lit { return Negate(g.Or(a, b)) }

// Xor returns (a AND NOT b) OR (NOT a AND b).
func (g *Graph) Xor(a, b Lit) Lit {
	return g.Or(g.CreateAnd(a, Negate(b)), g.CreateAnd(Negate(a), b))
}

// Iff returns NOT(a XOR b).
func (g *Graph) Iff(a, b Lit) Lit { return Negate(g.Xor(a, b)) }

// Implies returns (NOT a) OR b.
func (g *Graph) Implies(a, b Lit) Lit { return g.Or(Negate(a), b) }

// Ite returns the if-then-else mux: (s AND t) OR (NOT s AND e).
func (g *Graph) Ite(s, t, e Lit) Lit {
	return g.Or(g.CreateAnd(s, t), g.CreateAnd(Negate(s), e))
}

// Conjunction folds fs left-to-right with CreateAnd, seeded at ConstTrue.
func (g *Graph) Conjunction(fs []Lit) Lit {
	res := ConstTrue
	for _, f := range fs {
		res = g.CreateAnd(res, f)
	}
	return res
}

// Disjunction folds fs left-to-right with Or, seeded at ConstFalse.
func (g *Graph) Disjunction(fs []Lit) Lit {
	res := ConstFalse
	for _, f := range fs {
		res = g.Or(res, f)
	}
	return res
}

// BalancedConjunction folds fs as a balanced binary tree (halving at the
// middle) instead of a left fold, so the resulting cone has logarithmic
// rather than linear depth.
func (g *Graph) BalancedConjunction(fs []Lit) Lit {
	return g.balancedFold(fs, ConstTrue, g.CreateAnd)
}

// BalancedDisjunction folds fs as a balanced binary tree using Or.
func (g *Graph) BalancedDisjunction(fs []Lit) Lit {
	return g.balancedFold(fs, ConstFalse, g.Or)
}

func (g *Graph) balancedFold(fs []Lit, identity Lit, op func(a, b Lit) Lit) Lit {
	switch len(fs) {
	case 0:
		return identity
	case 1:
		return fs[0]
	default:
		mid := len(fs) / 2
		return op(g.balancedFold(fs[:mid], identity, op), g.balancedFold(fs[mid:], identity, op))
	}
}

// Mux selects, per output column, the disjunction of (select[i] AND
// args[i][col]) across all rows i — a per-column multiplexer over a table
// of literal rows, grounded on pyaig's mux primitive.
func (g *Graph) Mux(sel []Lit, rows [][]Lit) []Lit {
	if len(rows) == 0 {
		return nil
	}
	width := len(rows[0])
	out := make([]Lit, width)
	for col := 0; col < width; col++ {
		terms := make([]Lit, len(rows))
		for i, row := range rows {
			terms[i] = g.CreateAnd(sel[i], row[col])
		}
		out[col] = g.Disjunction(terms)
	}
	return out
}
