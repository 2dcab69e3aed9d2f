// SPDX-License-Identifier: MIT
package aiger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigkit/aigkit/aig"
	"github.com/aigkit/aigkit/aiger"
)

// TestAIGERRoundTrip_Latches covers scenario S3: write(g), read it back,
// write again — the second encoding must be byte-identical to the first.
func TestAIGERRoundTrip_Latches(t *testing.T) {
	g := aig.NewGraph()
	x := g.CreatePI("x")
	l := g.CreateLatch("l", aig.InitZero)
	require.NoError(t, g.SetNext(l, aig.Negate(g.Xor(x, l))))
	g.CreatePO(l, "out", aig.POOutput)

	first, _, err := aiger.WriteAIGERBytes(g)
	require.NoError(t, err)

	g2, err := aiger.ReadAIGERBytes(first)
	require.NoError(t, err)

	second, _, err := aiger.WriteAIGERBytes(g2)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second), "second encoding must equal the first byte-for-byte")
}

// TestAIGERJusticeEncoding covers scenario S4: three PIs, one NONDET
// latch, five JUSTICE POs in one justice property, one FAIRNESS PO.
func TestAIGERJusticeEncoding(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI("a")
	b := g.CreatePI("b")
	c := g.CreatePI("c")
	l := g.CreateLatch("l", aig.InitNondet)
	require.NoError(t, g.SetNext(l, aig.ConstFalse))

	var justiceIDs []int
	for i := 0; i < 5; i++ {
		justiceIDs = append(justiceIDs, g.CreatePO(a, "", aig.POJustice))
	}
	_, err := g.CreateJustice(justiceIDs)
	require.NoError(t, err)
	g.CreatePO(b, "", aig.POFairness)

	_ = c

	data, _, err := aiger.WriteAIGERBytes(g)
	require.NoError(t, err)

	lines := bytes.SplitN(data, []byte("\n"), 2)
	header := string(lines[0])
	assert.Equal(t, "aig 4 3 1 0 0 0 0 1 1", header)

	g2, err := aiger.ReadAIGERBytes(data)
	require.NoError(t, err)
	require.Equal(t, 1, g2.NJustice())
	assert.Len(t, g2.JusticePOs(0), 5)
	assert.Equal(t, 1, g2.NPOsByType(aig.POFairness))
}

// TestMarshalRoundTrip covers property #6: PIs/latches/ANDs survive, and
// OUTPUT-only POs come back typed BAD_STATES per the marshal convention.
func TestMarshalRoundTrip(t *testing.T) {
	g := aig.NewGraph()
	a := g.CreatePI("a")
	b := g.CreatePI("b")
	l := g.CreateLatch("l", aig.InitOne)
	require.NoError(t, g.SetNext(l, g.CreateAnd(a, b)))
	g.CreatePO(g.CreateAnd(a, l), "", aig.POOutput)

	data, err := aiger.MarshalBytes(g)
	require.NoError(t, err)

	g2, err := aiger.UnmarshalBytes(data)
	require.NoError(t, err)

	assert.Equal(t, g.NPIs(), g2.NPIs())
	assert.Equal(t, g.NLatches(), g2.NLatches())
	assert.Equal(t, g.NAnds(), g2.NAnds())
	assert.Equal(t, 0, g2.NPOsByType(aig.POOutput))
	assert.Equal(t, 1, g2.NPOsByType(aig.POBadStates))
}

// TestUnmarshal_RejectsTruncatedStream covers MalformedInput on a marshal
// stream that ends early.
func TestUnmarshal_RejectsTruncatedStream(t *testing.T) {
	g := aig.NewGraph()
	g.CreatePI("a")
	data, err := aiger.MarshalBytes(g)
	require.NoError(t, err)

	// Dropping the last byte removes the constraint count, so Unmarshal
	// must fail with a decode error instead of returning a graph.
	truncated := data[:len(data)-1]
	_, err = aiger.UnmarshalBytes(truncated)
	assert.Error(t, err)
}

// TestReadAIGER_BadHeader covers the malformed-header error path.
func TestReadAIGER_BadHeader(t *testing.T) {
	_, err := aiger.ReadAIGERBytes([]byte("notaig 1 2 3\n"))
	assert.ErrorIs(t, err, aiger.ErrBadHeader)
}
