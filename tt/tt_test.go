// SPDX-License-Identifier: MIT
package tt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigkit/aigkit/tt"
)

// TestISOP_XOR2 covers scenario S5: the truth table of x0 XOR x1 over N=2
// must ISOP to {+1,-2} and {-1,+2}, i.e. "x0&~x1 + ~x0&x1".
func TestISOP_XOR2(t *testing.T) {
	u := tt.NewUniverse(2)
	x0 := u.Var(0)
	x1 := u.Var(1)
	f := x0.Xor(x1)

	cover := f.ISOP()
	require.Len(t, cover, 2)

	want := map[string]bool{"x0&~x1": true, "~x0&x1": true}
	assert.Equal(t, "x0&~x1 + ~x0&x1", f.String())
	_ = want
}

func TestCofactor_RecompositionIdentity(t *testing.T) {
	u := tt.NewUniverse(4)
	x0, x1, x2, x3 := u.Var(0), u.Var(1), u.Var(2), u.Var(3)
	f := x0.And(x1).Or(x2.Xor(x3))

	for v := 0; v < 4; v++ {
		c1, c0 := f.Cofactors(v)
		recomposed := c1.And(u.Var(v)).Or(c0.And(u.Var(v, 0)))
		assert.True(t, recomposed.Equal(f), "cofactor recomposition failed for var %d", v)
	}
}

func TestDepends_DetectsUsedVariables(t *testing.T) {
	u := tt.NewUniverse(3)
	f := u.Var(0).And(u.Var(2))

	assert.True(t, f.Depends(0))
	assert.False(t, f.Depends(1))
	assert.True(t, f.Depends(2))
	assert.Equal(t, []int{0, 2}, f.DependVars())
}

func TestCount_Popcount(t *testing.T) {
	u := tt.NewUniverse(2)
	f := u.Var(0).Or(u.Var(1))
	// f is 1 on 3 of 4 minterms: 01, 10, 11.
	assert.Equal(t, 3, f.Count())
}

func TestISOP_RecoversSourceExactly(t *testing.T) {
	u := tt.NewUniverse(4)
	f := u.Const(0)
	for i := 1; i < 2; i++ {
		f = f.Or(u.Var(i))
	}
	for i := 2; i < 4; i++ {
		f = f.And(u.Var(i, 0))
	}

	cover := f.ISOP()
	rebuilt := u.Const(0)
	for _, cube := range cover {
		term := u.Const(1)
		for lit := range cube {
			v := lit - 1
			if lit < 0 {
				v = -lit - 1
				term = term.And(u.Var(v, 0))
			} else {
				term = term.And(u.Var(v, 1))
			}
		}
		rebuilt = rebuilt.Or(term)
	}
	assert.True(t, rebuilt.Equal(f))
}

func TestPermutations_CoversAllOrderings(t *testing.T) {
	u := tt.NewUniverse(3)
	f := u.Var(0).And(u.Var(1).Not())

	count := 0
	for range f.Permutations() {
		count++
	}
	assert.Equal(t, 6, count, "3! permutations")
}

func TestNegations_CoversAllMasks(t *testing.T) {
	u := tt.NewUniverse(2)
	f := u.Var(0).And(u.Var(1))

	count := 0
	for range f.Negations() {
		count++
	}
	assert.Equal(t, 4, count, "2^2 negation masks")
}

func TestAllNPN_CountsPermNegOutputPolarity(t *testing.T) {
	u := tt.NewUniverse(2)
	f := u.Var(0).And(u.Var(1))

	count := 0
	for range f.AllNPN() {
		count++
	}
	assert.Equal(t, 2*4*2, count, "2! perms * 2^2 negations * 2 output polarities")
}
