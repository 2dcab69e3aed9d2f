// SPDX-License-Identifier: MIT
// Package: aigkit/ttaig
//
// ttaig.go — AIGToTT walks a combinational AIG in construction order,
// mirroring pyaig's aig_to_tt_map: CutToTT walks backward from a single
// root over an iterative, explicit-stack postorder (per the package's
// no-recursion policy for graph-sized traversals), memoizing exactly the
// literals it visits.
package ttaig

import (
	"fmt"

	"github.com/aigkit/aigkit/aig"
	"github.com/aigkit/aigkit/tt"
)

// POPair is one (even, odd) pair of PO truth tables, pyaig's
// caller-convention grouping of consecutive POs.
type POPair struct {
	Even tt.TruthTable
	Odd  tt.TruthTable
}

// AIGToTT requires g to be purely combinational (no latches, no buffers)
// and to have an even number of POs. It builds an N=NPIs()-wide Universe,
// seeds each PI to var(i), walks construction order computing
// M[and] = M[left] & M[right] with polarity applied on read, and returns
// the universe plus one POPair per consecutive pair of POs.
func AIGToTT(g *aig.Graph) (*tt.Universe, []POPair, error) {
	if g.NLatches() > 0 || len(g.Buffers()) > 0 {
		return nil, nil, fmt.Errorf("ttaig.AIGToTT: %w", aig.ErrNotCombinational)
	}
	if g.NPOs()%2 != 0 {
		return nil, nil, fmt.Errorf("ttaig.AIGToTT: odd PO count")
	}

	u := tt.NewUniverse(g.NPIs())
	m := make(map[aig.Lit]tt.TruthTable, g.Len())
	m[aig.ConstFalse] = u.Const(0)

	for i, pi := range g.PIs() {
		m[pi] = u.Var(i)
	}

	read := func(f aig.Lit) tt.TruthTable {
		return m[aig.Positive(f)].NegateIf(aig.IsNegated(f))
	}

	for _, f := range g.AndGates() {
		left, right := g.AndFanins(f)
		m[f] = read(left).And(read(right))
	}

	pos := g.POs()
	pairs := make([]POPair, len(pos)/2)
	for i := range pairs {
		pairs[i] = POPair{
			Even: read(pos[2*i].Fanin),
			Odd:  read(pos[2*i+1].Fanin),
		}
	}
	return u, pairs, nil
}

// cutFrame is one stack entry of CutToTT's iterative postorder: a literal
// together with the fanins of it that still need visiting.
type cutFrame struct {
	lit    aig.Lit
	fanins []aig.Lit
}

// CutToTT computes the truth table of root with respect to an ordered cut
// of size >= u.NVars(): the last N cut members are assigned var(0..N-1)
// in order, any earlier cut members are forced to constant-0, and every
// other node is expanded through its AND fanins with negation applied on
// read. Traversal is an explicit-stack postorder, not recursive, so it
// tolerates arbitrarily deep AIGs.
func CutToTT(u *tt.Universe, g *aig.Graph, root aig.Lit, cut []aig.Lit) tt.TruthTable {
	n := u.NVars()
	memo := make(map[aig.Lit]tt.TruthTable, len(cut)+16)
	memo[aig.ConstFalse] = u.Const(0)

	start := len(cut) - n
	for i, f := range cut {
		p := aig.Positive(f)
		if i >= start {
			memo[p] = u.Var(i - start)
		} else {
			memo[p] = u.Const(0)
		}
	}

	read := func(f aig.Lit) tt.TruthTable {
		return memo[aig.Positive(f)].NegateIf(aig.IsNegated(f))
	}

	rootPos := aig.Positive(root)
	if _, ok := memo[rootPos]; !ok {
		var stack []*cutFrame
		stack = append(stack, &cutFrame{lit: rootPos, fanins: g.Fanins(rootPos)})

		for len(stack) > 0 {
			top := stack[len(stack)-1]

			if _, done := memo[top.lit]; done {
				stack = stack[:len(stack)-1]
				continue
			}

			advanced := false
			for len(top.fanins) > 0 {
				fi := aig.Positive(top.fanins[0])
				top.fanins = top.fanins[1:]
				if _, done := memo[fi]; done {
					continue
				}
				stack = append(stack, &cutFrame{lit: fi, fanins: g.Fanins(fi)})
				advanced = true
				break
			}
			if advanced {
				continue
			}

			left, right := g.AndFanins(top.lit)
			memo[top.lit] = read(left).And(read(right))
			stack = stack[:len(stack)-1]
		}
	}

	return read(root)
}
