// SPDX-License-Identifier: MIT
package aig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigkit/aigkit/aig"
)

// TestCreateAnd_TrivialFolds covers scenario S1: a AND a must fold to a,
// and all other trivial identities named in the construction contract.
func TestCreateAnd_TrivialFolds(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI("a")

	assert.Equal(t, a, g.CreateAnd(a, a), "l==r folds to the literal itself")
	assert.Equal(t, aig.ConstFalse, g.CreateAnd(a, aig.ConstFalse), "r==0 folds to const0")
	assert.Equal(t, a, g.CreateAnd(a, aig.ConstTrue), "r==1 folds to left")
	assert.Equal(t, aig.ConstFalse, g.CreateAnd(a, aig.Negate(a)), "l==r^1 folds to const0")
	assert.Equal(t, 0, g.NAnds())
}

// TestCreateAnd_Strashing covers scenario S2: create_and(a,b) and
// create_and(b,a) must return the same literal, and only one AND node is
// created regardless of argument order.
func TestCreateAnd_Strashing(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI("a")
	b := g.CreatePI("b")

	f1 := g.CreateAnd(a, b)
	f2 := g.CreateAnd(b, a)

	assert.Equal(t, f1, f2)
	assert.Equal(t, 1, g.NAnds())

	left, right := g.AndFanins(f1)
	assert.True(t, left > right, "left must strictly exceed right after normalization")
}

func TestNegateIf_Involution(t *testing.T) {
	for _, f := range []aig.Lit{0, 1, 2, 3, 42} {
		for _, c := range []bool{true, false} {
			assert.Equal(t, f, aig.NegateIf(aig.NegateIf(f, c), c))
		}
	}
}

func TestNames_UniqueAndPositiveOnly(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI("a")

	err := g.SetName(aig.Negate(a), "neg")
	assert.ErrorIs(t, err, aig.ErrNegatedName)

	err = g.SetName(a, "a")
	assert.ErrorIs(t, err, aig.ErrNameCollision, "a is already named")

	b := g.CreatePI("")
	err = g.SetName(b, "a")
	assert.ErrorIs(t, err, aig.ErrNameCollision, "name already bound to a different literal")
}

func TestFillPINames_SkipsAlreadyNamed(t *testing.T) {
	g := aig.NewGraph()
	named := g.CreatePI("keepme")
	_ = g.CreatePI("")
	_ = g.CreatePI("")

	g.FillPINames("pi")

	name, ok := g.GetNameByID(named)
	require.True(t, ok)
	assert.Equal(t, "keepme", name)

	assert.True(t, g.NameExists("pi0"))
	assert.True(t, g.NameExists("pi1"))
	assert.False(t, g.NameExists("pi2"))
}

func TestJustice_RequiresJusticeTypedPOs(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI("a")

	outputPO := g.CreatePO(a, "", aig.POOutput)
	_, err := g.CreateJustice([]int{outputPO})
	assert.ErrorIs(t, err, aig.ErrJusticeNotTyped)

	justicePO := g.CreatePO(a, "", aig.POJustice)
	jID, err := g.CreateJustice([]int{justicePO})
	require.NoError(t, err)
	assert.Equal(t, 0, jID)
	assert.Equal(t, 1, g.NJustice())
}

func TestGetCone_CombinationalStopsAtLatches(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI("a")
	l := g.CreateLatch("l", aig.InitZero)
	f := g.CreateAnd(a, l)

	cone := g.GetCone([]aig.Lit{f}, nil, nil)
	assert.Contains(t, cone, f)
	assert.Contains(t, cone, l)
	assert.Contains(t, cone, a)

	require.NoError(t, g.SetNext(l, a))
	seqCone := g.GetSeqCone([]aig.Lit{f}, nil)
	assert.Contains(t, seqCone, l)
}

func TestTopologicalSort_FaninsPrecedeFanouts(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI("a")
	b := g.CreatePI("b")
	c := g.CreateAnd(a, b)
	d := g.CreateAnd(c, a)

	order := g.TopologicalSort([]aig.Lit{d}, nil)

	pos := make(map[aig.Lit]int, len(order))
	for i, f := range order {
		pos[f] = i
	}

	assert.Less(t, pos[a], pos[c])
	assert.Less(t, pos[b], pos[c])
	assert.Less(t, pos[c], pos[d])
}

func TestClean_PreservesPINameUnderNegatedPOFanin(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI("a")
	na := aig.Negate(a)
	g.CreatePO(na, "out", aig.POOutput)

	clean, err := g.Clean(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, clean.NPOs())

	// the PI itself was preserved positively, so its name carries through
	// unprefixed; a negated PO fanin does not rename the PI.
	name, ok := clean.GetNameByID(clean.PIByID(0))
	require.True(t, ok, "the PI's name carries through Clean")
	assert.Equal(t, "a", name)
}

func TestClean_WithBuffer_ErrHasBuffers(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI("a")
	buf := g.CreateBuffer(a, "buf")
	g.CreatePO(buf, "", aig.POOutput)

	_, err := g.Clean(nil)
	assert.ErrorIs(t, err, aig.ErrHasBuffers)
}

func TestCutpoint_ConvertsNamedBufferToPI(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI("a")
	buf := g.CreateBuffer(a, "cut")

	require.NoError(t, g.Cutpoint(buf))
	assert.True(t, g.IsPI(buf))
	assert.Equal(t, 2, g.NPIs())
}

func TestCompose_SplicesSourceIntoDestination(t *testing.T) {
	src := aig.NewGraph()
	sa := src.CreatePI("a")
	sb := src.CreatePI("b")
	sf := src.CreateAnd(sa, sb)
	src.CreatePO(sf, "out", aig.POOutput)

	dst := aig.NewGraph()
	da := dst.CreatePI("da")
	db := dst.CreatePI("db")

	m := aig.NewLitMap()
	m.Set(sa, da)
	m.Set(sb, db)

	require.NoError(t, dst.Compose(src, m, true))
	assert.Equal(t, 1, dst.NAnds())
	assert.Equal(t, 1, dst.NPOs())

	got := m.MustGet(sf)
	assert.Equal(t, dst.CreateAnd(da, db), got)
}
