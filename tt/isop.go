// SPDX-License-Identifier: MIT
// Package: aigkit/tt
//
// isop.go — irredundant sum-of-products synthesis, bracketed between a
// lower bound L and an upper bound U (the classic Minato/Morreale
// algorithm): find the smallest variable either bound still depends on at
// or after index v, split on it, and recombine the three sub-covers.
package tt

// ISOP returns an irredundant cover of t: a disjunction of cubes that
// evaluates to exactly t. It is the fixed point of isop(t, t, 0).
func (t TruthTable) ISOP() []Cube {
	cover, f := t.u.isop(t, t, 0)
	if !f.Equal(t) {
		panic("tt: isop did not reproduce the source function")
	}
	return cover
}

// isop implements the recursive bracket: L (lower bound, must be covered)
// and U (upper bound, may not be exceeded), starting the search for a
// splitting variable at v.
func (u *Universe) isop(lo, hi TruthTable, v int) ([]Cube, TruthTable) {
	if lo.IsContradiction() {
		return nil, u.Const(0)
	}
	if hi.IsTautology() {
		return []Cube{{}}, u.Const(1)
	}

	lm := lo.MinVariable(v)
	um := hi.MinVariable(v)
	x := lm
	if um != -1 && (x == -1 || um < x) {
		x = um
	}

	fx := u.Var(x, 1)

	lo1, lo0 := lo.Cofactors(x)
	hi1, hi0 := hi.Cofactors(x)

	c0, f0 := u.isop(lo1.And(hi0.Not()), hi1, x+1)
	c1, f1 := u.isop(lo0.And(hi1.Not()), hi0, x+1)

	loNew := lo1.And(f0.Not()).Or(lo0.And(f1.Not()))
	cstar, fstar := u.isop(loNew, hi0.And(hi1), x+1)

	res := make([]Cube, 0, len(c0)+len(c1)+len(cstar))
	for _, c := range c0 {
		res = append(res, c.withLiteral(x+1))
	}
	for _, c := range c1 {
		res = append(res, c.withLiteral(-(x + 1)))
	}
	res = append(res, cstar...)

	f := f0.And(fx).Or(f1.And(fx.Not())).Or(fstar)

	return res, f
}
