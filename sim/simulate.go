// SPDX-License-Identifier: MIT
// Package: aigkit/sim
//
// simulate.go — the combinational simulator, ported from pyaig's
// pyaig_values/simulate: a Frame stores {0,1} on positive literals and
// applies the inverter bit on read/write; Simulate drives successive
// frames from an initial latch assignment and per-frame PI assignments,
// evaluating every AND gate in construction order and then computing the
// next frame's latch values by reading each latch's next literal under
// the current frame (a latch with no bound next reads 0 in the next frame).
package sim

import (
	"fmt"

	"github.com/aigkit/aigkit/aig"
)

// Frame holds one simulation step's {0,1} values, keyed by positive
// literal with the inverter bit applied transparently on Get/Set.
type Frame struct {
	v map[aig.Lit]int
}

// NewFrame returns a Frame with only CONST0 bound, matching a fresh
// pyaig_values.
func NewFrame() *Frame {
	return &Frame{v: map[aig.Lit]int{aig.ConstFalse: 0}}
}

// Get returns the value of literal f, honoring its inverter bit.
func (fr *Frame) Get(f aig.Lit) int {
	return fr.v[aig.Positive(f)] ^ boolToInt(aig.IsNegated(f))
}

// Set stores v at literal f, honoring its inverter bit so that a later
// Get of the positive literal recovers the uninverted value.
func (fr *Frame) Set(f aig.Lit, v int) {
	fr.v[aig.Positive(f)] = v ^ boolToInt(aig.IsNegated(f))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Simulate drives g for len(piValues) frames, given an initial value per
// latch (in g.Latches() order) and, per frame, a value per PI (in
// g.PIs() order). It returns one Frame per simulated step.
func Simulate(g *aig.Graph, latchValues []int, piValues [][]int) ([]*Frame, error) {
	latches := g.Latches()
	if len(latchValues) != len(latches) {
		return nil, fmt.Errorf("sim.Simulate: got %d latch values, graph has %d latches", len(latchValues), len(latches))
	}

	values := NewFrame()
	for i, l := range latches {
		values.Set(l, latchValues[i])
	}

	pis := g.PIs()
	frames := make([]*Frame, 0, len(piValues))

	for k, frame := range piValues {
		if len(frame) != len(pis) {
			return nil, fmt.Errorf("sim.Simulate: frame %d has %d PI values, graph has %d PIs", k, len(frame), len(pis))
		}
		for i, f := range pis {
			values.Set(f, frame[i])
		}

		for _, f := range g.AndGates() {
			left, right := g.AndFanins(f)
			values.Set(f, values.Get(left)&values.Get(right))
		}

		frames = append(frames, values)

		next := NewFrame()
		for _, l := range latches {
			nl, bound := g.Next(l)
			if !bound {
				continue
			}
			next.Set(l, values.Get(nl))
		}
		values = next
	}

	return frames, nil
}
