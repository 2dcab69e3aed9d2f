// SPDX-License-Identifier: MIT
package ttaig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigkit/aigkit/aig"
	"github.com/aigkit/aigkit/tt"
	"github.com/aigkit/aigkit/ttaig"
)

func buildConjDisj(n int) *aig.Graph {
	g := aig.NewGraph()
	pis := make([]aig.Lit, n)
	for i := range pis {
		pis[i] = g.CreatePI("")
	}
	g.CreatePO(g.Conjunction(pis), "", aig.POOutput)
	g.CreatePO(g.CreateAnd(g.Disjunction(pis), aig.Negate(g.Conjunction(pis))), "", aig.POOutput)
	return g
}

// TestAIGToTT_ConjunctionDisjunction covers property #4's spirit: the
// conjunction PO's truth table must equal AND of all variables, and the
// second PO must equal (OR of all vars) AND NOT(AND of all vars).
func TestAIGToTT_ConjunctionDisjunction(t *testing.T) {
	g := buildConjDisj(4)

	u, pairs, err := ttaig.AIGToTT(g)
	require.NoError(t, err)
	require.Len(t, pairs, 1)

	want := u.Conjunction([]tt.TruthTable{u.Var(0), u.Var(1), u.Var(2), u.Var(3)})
	assert.True(t, pairs[0].Even.Equal(want))

	wantOr := u.Disjunction([]tt.TruthTable{u.Var(0), u.Var(1), u.Var(2), u.Var(3)})
	assert.True(t, pairs[0].Odd.Equal(wantOr.And(want.Not())))
}

func TestAIGToTT_RejectsSequential(t *testing.T) {
	g := aig.NewGraph()
	l := g.CreateLatch("l", aig.InitZero)
	require.NoError(t, g.SetNext(l, l))
	g.CreatePO(l, "", aig.POOutput)
	g.CreatePO(l, "", aig.POOutput)

	_, _, err := ttaig.AIGToTT(g)
	assert.ErrorIs(t, err, aig.ErrNotCombinational)
}

// TestCutToTT_AgreesWithAIGToTT checks that evaluating a root literal via
// an explicit cut of all PIs matches the same function computed wholesale.
func TestCutToTT_AgreesWithAIGToTT(t *testing.T) {
	g := buildConjDisj(3)
	u, pairs, err := ttaig.AIGToTT(g)
	require.NoError(t, err)

	root := g.POFanin(0)
	cut := g.PIs()

	got := ttaig.CutToTT(u, g, root, cut)
	assert.True(t, got.Equal(pairs[0].Even))
}
