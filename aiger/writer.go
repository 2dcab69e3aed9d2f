// SPDX-License-Identifier: MIT
// Package: aigkit/aiger
//
// writer.go — binary AIGER encoder, ported from pyaig's _aiger_writer /
// write_aiger_file: assigns AIGER indices to every node, emits the
// minimal-suffix header, latches, PO sections (including justice group
// headers), the delta-encoded AND section, and the symbol table.
package aiger

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/aigkit/aigkit/aig"
)

// WriteAIGER encodes g as binary AIGER to w, returning the map from g's
// node literals (polarity preserved) to their assigned AIGER literals.
func WriteAIGER(w io.Writer, g *aig.Graph, opts ...WriteOption) (map[aig.Lit]int, error) {
	cfg := newWriteConfig(opts)

	I := g.NPIs()
	L := g.NLatches()
	nonterminals := g.Nonterminals()
	A := len(nonterminals)

	O := g.NPOsByType(aig.POOutput)
	B := g.NPOsByType(aig.POBadStates)
	C := g.NPOsByType(aig.POConstraint)
	justice := g.JusticeProperties()
	J := len(justice)
	F := g.NPOsByType(aig.POFairness)

	cfg.log("aiger: encoding", "pis", I, "latches", L, "ands", A)

	// Assign AIGER indices: 0=const, PIs, latches, nonterminals in order.
	aigerOf := make(map[aig.Lit]int, 1+I+L+A)
	aigerOf[aig.ConstFalse] = 0
	idx := 1
	for _, pi := range g.PIs() {
		aigerOf[pi] = idx << 1
		idx++
	}
	for _, l := range g.Latches() {
		aigerOf[l] = idx << 1
		idx++
	}
	for _, n := range nonterminals {
		aigerOf[n] = idx << 1
		idx++
	}

	aigerLit := func(f aig.Lit) int {
		base := aigerOf[aig.Positive(f)]
		if aig.IsNegated(f) {
			return base | 1
		}
		return base
	}

	bw := bufio.NewWriter(w)

	M := I + L + A
	header := fmt.Sprintf("aig %d %d %d %d %d", M, I, L, O, A)
	if B+C+J+F > 0 {
		header += fmt.Sprintf(" %d", B)
	}
	if C+J+F > 0 {
		header += fmt.Sprintf(" %d", C)
	}
	if J+F > 0 {
		header += fmt.Sprintf(" %d", J)
	}
	if F > 0 {
		header += fmt.Sprintf(" %d", F)
	}
	if _, err := fmt.Fprintf(bw, "%s\n", header); err != nil {
		return nil, err
	}

	for _, l := range g.Latches() {
		next, _ := g.Next(l)
		nl := aigerLit(next)
		switch g.Init(l) {
		case aig.InitZero:
			fmt.Fprintf(bw, "%d\n", nl)
		case aig.InitOne:
			fmt.Fprintf(bw, "%d 1\n", nl)
		default:
			fmt.Fprintf(bw, "%d %d\n", nl, aigerOf[l])
		}
	}

	writePOs := func(typ aig.POType) {
		for _, p := range g.POsByType(typ) {
			fmt.Fprintf(bw, "%d\n", aigerLit(p.Fanin))
		}
	}
	writePOs(aig.POOutput)
	writePOs(aig.POBadStates)
	writePOs(aig.POConstraint)

	for _, ids := range justice {
		fmt.Fprintf(bw, "%d\n", len(ids))
	}
	for _, ids := range justice {
		for _, poID := range ids {
			fmt.Fprintf(bw, "%d\n", aigerLit(g.POFanin(poID)))
		}
	}
	writePOs(aig.POFairness)

	for _, n := range nonterminals {
		self := aigerOf[n]
		var al, ar int
		if g.IsBuffer(n) {
			al = aigerLit(g.BufIn(n))
			ar = al
		} else {
			left, right := g.AndFanins(n)
			al, ar = aigerLit(left), aigerLit(right)
		}
		if al < ar {
			al, ar = ar, al
		}
		if err := putU(bw, uint64(self-al)); err != nil {
			return nil, err
		}
		if err := putU(bw, uint64(al-ar)); err != nil {
			return nil, err
		}
	}

	for i, pi := range g.PIs() {
		if name, ok := g.GetNameByID(pi); ok {
			fmt.Fprintf(bw, "i%d %s\n", i, name)
		}
	}
	for i, l := range g.Latches() {
		if name, ok := g.GetNameByID(l); ok {
			fmt.Fprintf(bw, "l%d %s\n", i, name)
		}
	}
	writePONames := func(prefix string, typ aig.POType) {
		for i, p := range g.POsByType(typ) {
			if name, ok := g.GetNameByPO(p.ID); ok {
				fmt.Fprintf(bw, "%s%d %s\n", prefix, i, name)
			}
		}
	}
	writePONames("o", aig.POOutput)
	writePONames("b", aig.POBadStates)
	writePONames("c", aig.POConstraint)
	for i, ids := range justice {
		if len(ids) == 0 {
			continue
		}
		if name, ok := g.GetNameByPO(ids[0]); ok {
			fmt.Fprintf(bw, "j%d %s\n", i, name)
		}
	}
	writePONames("f", aig.POFairness)

	if err := bw.Flush(); err != nil {
		return nil, err
	}
	return aigerOf, nil
}

// WriteAIGERBytes encodes g as binary AIGER into a freshly allocated
// byte slice, returning it alongside the node->AIGER-literal map.
func WriteAIGERBytes(g *aig.Graph, opts ...WriteOption) ([]byte, map[aig.Lit]int, error) {
	var buf bytes.Buffer
	m, err := WriteAIGER(&buf, g, opts...)
	if err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), m, nil
}
