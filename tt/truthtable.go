// SPDX-License-Identifier: MIT
// Package: aigkit/tt
//
// truthtable.go — TruthTable is an N-input Boolean function represented
// as a 2^N-bit bignum mask. Every bitwise op is masked back to 2^N bits
// after a NOT, and Cofactor/Permute/Exists/Forall/Depends are expressed in
// closed form over the Universe's cached cofactor masks.
package tt

import (
	"fmt"
	"math/big"
	"math/bits"
	"sort"
	"strings"
)

// TruthTable is an N-input Boolean function, backed by a 2^N-bit mask
// shared with its Universe.
type TruthTable struct {
	u *Universe
	d *big.Int
}

// Universe returns the TruthTable's owning Universe.
func (t TruthTable) Universe() *Universe { return t.u }

// NVars returns the function's input arity.
func (t TruthTable) NVars() int { return t.u.n }

// Equal reports bit-for-bit equality. Both operands must share a Universe.
func (t TruthTable) Equal(rhs TruthTable) bool {
	t.assertSameUniverse(rhs)
	return t.d.Cmp(rhs.d) == 0
}

func (t TruthTable) assertSameUniverse(rhs TruthTable) {
	if t.u != rhs.u {
		panic("tt: truth tables belong to different universes")
	}
}

// And returns the bitwise AND of t and rhs.
func (t TruthTable) And(rhs TruthTable) TruthTable {
	t.assertSameUniverse(rhs)
	return TruthTable{t.u, new(big.Int).And(t.d, rhs.d)}
}

// Or returns the bitwise OR of t and rhs.
func (t TruthTable) Or(rhs TruthTable) TruthTable {
	t.assertSameUniverse(rhs)
	return TruthTable{t.u, new(big.Int).Or(t.d, rhs.d)}
}

// Xor returns the bitwise XOR of t and rhs.
func (t TruthTable) Xor(rhs TruthTable) TruthTable {
	t.assertSameUniverse(rhs)
	return TruthTable{t.u, new(big.Int).Xor(t.d, rhs.d)}
}

// Not returns the bitwise complement of t, masked back to 2^N bits.
func (t TruthTable) Not() TruthTable {
	inv := new(big.Int).Not(t.d)
	inv.And(inv, t.u.mask)
	return TruthTable{t.u, inv}
}

// NegateIf returns Not() if c is true, else t unchanged.
func (t TruthTable) NegateIf(c bool) TruthTable {
	if c {
		return t.Not()
	}
	return t
}

// Implies returns (NOT t) OR rhs.
func (t TruthTable) Implies(rhs TruthTable) TruthTable { return t.Not().Or(rhs) }

// Iff returns NOT(t XOR rhs).
func (t TruthTable) Iff(rhs TruthTable) TruthTable { return t.Xor(rhs).Not() }

// Ite returns the if-then-else mux: (t AND then) OR (NOT t AND els).
func (t TruthTable) Ite(then, els TruthTable) TruthTable {
	return t.And(then).Or(t.Not().And(els))
}

// Cofactor restricts variable v to constant c, then replicates the kept
// half into the dropped half (by shifting by 2^v) so the result no longer
// depends on v.
func (t TruthTable) Cofactor(v int, c int) TruthTable {
	mask := t.u.cofactorMasks[c][v]
	d := new(big.Int).And(t.d, mask)

	nbits := uint(1) << uint(v)
	if c != 0 {
		d.Or(d, new(big.Int).Rsh(d, nbits))
	} else {
		d.Or(d, new(big.Int).Lsh(d, nbits))
	}
	d.And(d, t.u.mask)

	return TruthTable{t.u, d}
}

// Cofactors returns (Cofactor(v,1), Cofactor(v,0)).
func (t TruthTable) Cofactors(v int) (c1, c0 TruthTable) {
	return t.Cofactor(v, 1), t.Cofactor(v, 0)
}

// Permute swaps input variables x and y by recomposing the function from
// its four (x,y) cofactors.
func (t TruthTable) Permute(x, y int) TruthTable {
	cx1, cx0 := t.Cofactors(x)
	cx1y1, cx1y0 := cx1.Cofactors(y)
	cx0y1, cx0y0 := cx0.Cofactors(y)

	vx, vx0 := t.u.Var(x, 1), t.u.Var(x, 0)
	vy, vy0 := t.u.Var(y, 1), t.u.Var(y, 0)

	return vy.And(vx.And(cx1y1).Or(vx0.And(cx1y0))).
		Or(vy0.And(vx.And(cx0y1).Or(vx0.And(cx0y0))))
}

// NegateVar flips the sense of variable v within t, leaving every other
// variable's dependence unchanged.
func (t TruthTable) NegateVar(v int) TruthTable {
	vv, vv0 := t.u.Var(v, 1), t.u.Var(v, 0)
	c1, c0 := t.Cofactors(v)
	return vv.And(c0).Or(vv0.And(c1))
}

// Exists returns the existential quantification of t over v: c1 OR c0.
func (t TruthTable) Exists(v int) TruthTable {
	c1, c0 := t.Cofactors(v)
	return c1.Or(c0)
}

// Forall returns the universal quantification of t over v: c1 AND c0.
func (t TruthTable) Forall(v int) TruthTable {
	c1, c0 := t.Cofactors(v)
	return c1.And(c0)
}

// IsTautology reports whether t is identically 1.
func (t TruthTable) IsTautology() bool { return t.Equal(t.u.Const(1)) }

// IsContradiction reports whether t is identically 0.
func (t TruthTable) IsContradiction() bool { return t.Equal(t.u.Const(0)) }

// IsSatisfiable reports whether t is not identically 0.
func (t TruthTable) IsSatisfiable() bool { return !t.IsContradiction() }

// Depends reports whether t's value can change when v is flipped.
func (t TruthTable) Depends(v int) bool {
	c1, c0 := t.Cofactors(v)
	return c0.d.Cmp(c1.d) != 0
}

// DependVars returns every variable index t depends on, ascending.
func (t TruthTable) DependVars() []int {
	var out []int
	for v := 0; v < t.u.n; v++ {
		if t.Depends(v) {
			out = append(out, v)
		}
	}
	return out
}

// MinVariable returns the smallest variable index >= minv that t depends
// on, or -1 if none.
func (t TruthTable) MinVariable(minv int) int {
	for v := minv; v < t.u.n; v++ {
		if t.Depends(v) {
			return v
		}
	}
	return -1
}

// Count returns the number of minterms in the on-set (popcount of d).
func (t TruthTable) Count() int {
	count := 0
	words := t.d.Bits()
	for _, w := range words {
		count += bits.OnesCount(uint(w))
	}
	return count
}

// Copy returns an independent copy of t.
func (t TruthTable) Copy() TruthTable { return TruthTable{t.u, new(big.Int).Set(t.d)} }

// String renders t as a "+"-joined sum of cube expressions, using the
// universe's variable names; "0"/"1" for the two constants.
func (t TruthTable) String() string {
	sop := t.ISOP()
	if len(sop) == 0 {
		return "0"
	}
	if len(sop) == 1 && len(sop[0]) == 0 {
		return "1"
	}

	terms := make([]string, len(sop))
	for i, cube := range sop {
		terms[i] = cube.termString(t.u)
	}
	return strings.Join(terms, " + ")
}

// SOP renders t's ISOP cover as a canonical multi-line cube listing: one
// line per cube, one column per variable ('1'/'0'/'-'), trailing " 1".
func (t TruthTable) SOP() string {
	sop := t.ISOP()
	lines := make([]string, 0, len(sop))
	for _, cube := range sop {
		buf := make([]byte, 0, t.u.n+2)
		for i := 1; i <= t.u.n; i++ {
			switch {
			case cube.has(i):
				buf = append(buf, '1')
			case cube.has(-i):
				buf = append(buf, '0')
			default:
				buf = append(buf, '-')
			}
		}
		buf = append(buf, ' ', '1')
		lines = append(lines, string(buf))
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// GoString implements a debug representation matching pyaig's __repr__.
func (t TruthTable) GoString() string {
	return fmt.Sprintf("tt.TruthTable(%d, %X)", t.u.n, t.d)
}
