// SPDX-License-Identifier: MIT
// Package: aigkit/tt
//
// universe.go — Universe caches, for a fixed input arity N, the mask
// (2^N bits of 1) and the per-variable cofactor masks that every
// TruthTable operation built on top of it relies on.
package tt

import (
	"math/big"
	"strconv"
)

// Universe fixes the input arity N for a family of truth tables and
// caches the masks needed to build variables, cofactor, and mask results
// back to 2^N bits after a NOT.
type Universe struct {
	n     int
	nbits int      // 2^n
	mask  *big.Int // 2^nbits - 1

	// cofactorMasks[c][v] selects the sub-cube where variable v equals c.
	cofactorMasks [2][]*big.Int

	allConsts [2]TruthTable
	allVars   [2][]TruthTable

	names map[int]string
}

// NewUniverse builds a Universe for n input variables, optionally naming
// them for SOP/String output (name i is names[i] if present, else "xI").
func NewUniverse(n int, names ...string) *Universe {
	u := &Universe{n: n, nbits: 1 << uint(n), names: make(map[int]string, len(names))}

	u.mask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(u.nbits)), big.NewInt(1))

	u.cofactorMasks[0] = make([]*big.Int, n)
	u.cofactorMasks[1] = make([]*big.Int, n)

	for v := 0; v < n; v++ {
		bits := uint(1) << uint(v)

		// res = ~(~0 << bits), i.e. bits ones.
		res := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits), big.NewInt(1))

		maskBits := bits << 1
		for i := 0; i < n-(v+1); i++ {
			shifted := new(big.Int).Lsh(res, maskBits)
			res = new(big.Int).Or(res, shifted)
			maskBits <<= 1
		}

		u.cofactorMasks[0][v] = res
		u.cofactorMasks[1][v] = new(big.Int).Lsh(res, bits)
	}

	u.allConsts[0] = TruthTable{u: u, d: big.NewInt(0)}
	u.allConsts[1] = TruthTable{u: u, d: new(big.Int).Set(u.mask)}

	u.allVars[0] = make([]TruthTable, n)
	u.allVars[1] = make([]TruthTable, n)
	for v := 0; v < n; v++ {
		u.allVars[0][v] = TruthTable{u: u, d: new(big.Int).Set(u.cofactorMasks[0][v])}
		u.allVars[1][v] = TruthTable{u: u, d: new(big.Int).Set(u.cofactorMasks[1][v])}
	}

	for i, name := range names {
		u.names[i] = name
	}

	return u
}

// NVars returns the universe's input arity.
func (u *Universe) NVars() int { return u.n }

// Const returns the constant-0 or constant-1 function over this universe.
func (u *Universe) Const(v int) TruthTable {
	if v != 0 {
		return u.allConsts[1]
	}
	return u.allConsts[0]
}

// Var returns variable i's truth table with polarity c (1 = true, 0 =
// complemented); c defaults to 1 when omitted.
func (u *Universe) Var(i int, c ...int) TruthTable {
	pol := 1
	if len(c) > 0 {
		pol = c[0]
	}
	if pol == 0 {
		return u.allVars[0][i]
	}
	return u.allVars[1][i]
}

// Name returns the display name of variable i: its registered name, or
// "xI" if none was given to NewUniverse.
func (u *Universe) Name(i int) string {
	if n, ok := u.names[i]; ok {
		return n
	}
	return varName(i)
}

func varName(i int) string {
	return "x" + strconv.Itoa(i)
}

// Conjunction folds fs with And, seeded at Const(1).
func (u *Universe) Conjunction(fs []TruthTable) TruthTable {
	res := u.Const(1)
	for _, f := range fs {
		res = res.And(f)
	}
	return res
}

// Disjunction folds fs with Or, seeded at Const(0).
func (u *Universe) Disjunction(fs []TruthTable) TruthTable {
	res := u.Const(0)
	for _, f := range fs {
		res = res.Or(f)
	}
	return res
}

// Xor folds fs with Xor, seeded at Const(0).
func (u *Universe) Xor(fs []TruthTable) TruthTable {
	res := u.Const(0)
	for _, f := range fs {
		res = res.Xor(f)
	}
	return res
}
