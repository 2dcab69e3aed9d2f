// SPDX-License-Identifier: MIT
package sim_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigkit/aigkit/aig"
	"github.com/aigkit/aigkit/sim"
)

// TestSimulate_Counter covers scenario S6: a 3-bit counter enabled every
// frame must produce bit-0 toggling every frame, bit-1 every two frames,
// bit-2 every four frames.
func TestSimulate_Counter(t *testing.T) {
	g := aig.NewGraph()
	en := g.CreatePI("enable")
	latches := g.Counter(3, en, aig.ConstFalse)
	for i, l := range latches {
		g.CreatePO(l, []string{"bit0", "bit1", "bit2"}[i], aig.POOutput)
	}

	piValues := make([][]int, 8)
	for i := range piValues {
		piValues[i] = []int{1}
	}

	frames, err := sim.Simulate(g, []int{0, 0, 0}, piValues)
	require.NoError(t, err)
	require.Len(t, frames, 8)

	// Each frame's 'next' literal is itself an AND-gate expression already
	// evaluated within that same frame, so it reports the post-increment
	// counter value without waiting for the following frame's snapshot.
	nextOf := func(l aig.Lit) aig.Lit {
		n, _ := g.Next(l)
		return n
	}

	var bit0, bit1, bit2 []int
	for _, fr := range frames {
		bit0 = append(bit0, fr.Get(nextOf(latches[0])))
		bit1 = append(bit1, fr.Get(nextOf(latches[1])))
		bit2 = append(bit2, fr.Get(nextOf(latches[2])))
	}

	assert.Equal(t, []int{1, 0, 1, 0, 1, 0, 1, 0}, bit0)
	assert.Equal(t, []int{0, 1, 1, 0, 0, 1, 1, 0}, bit1)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1, 1, 0}, bit2)

	out := sim.FormatTrace(frames, map[string]aig.Lit{
		"bit0": nextOf(latches[0]), "bit1": nextOf(latches[1]), "bit2": nextOf(latches[2]),
	})
	assert.True(t, strings.HasPrefix(out, "bit0: 1 0 1 0 1 0 1 0\n"))
}

func TestReadCEX_SkipsNoiseLines(t *testing.T) {
	input := "c a comment\nresult\nprop\n000\n1\n1\n.\nu trailing noise\n"
	cex, err := sim.ReadCEX(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "result", cex.Result)
	assert.Equal(t, "prop", cex.Prop)
	assert.Equal(t, []int{0, 0, 0}, cex.LatchValues)
	assert.Equal(t, [][]int{{1}, {1}}, cex.PIValues)
}
