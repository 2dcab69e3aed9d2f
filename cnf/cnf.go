// SPDX-License-Identifier: MIT
// Package: aigkit/cnf
//
// cnf.go — ported from pyaig's write_cnf: variables numbered 1..k in
// order const/PI/latch/AND; const-0 forced false; one unit clause per PO
// fanin; three Tseitin clauses per AND gate.
package cnf

import (
	"bufio"
	"fmt"
	"io"

	"github.com/aigkit/aigkit/aig"
)

// Write emits a DIMACS CNF encoding of g's combinational structure to w,
// returning the map from g's node literals (positive only) to CNF
// variable numbers.
func Write(w io.Writer, g *aig.Graph) (map[aig.Lit]int, error) {
	vars := make(map[aig.Lit]int)
	next := 1

	vars[aig.ConstFalse] = next
	next++
	for _, pi := range g.PIs() {
		vars[pi] = next
		next++
	}
	for _, l := range g.Latches() {
		vars[l] = next
		next++
	}
	ands := g.AndGates()
	for _, a := range ands {
		vars[a] = next
		next++
	}

	cnfLit := func(f aig.Lit) int {
		v := vars[aig.Positive(f)]
		if aig.IsNegated(f) {
			return -v
		}
		return v
	}

	nClauses := len(ands)*3 + 1 + g.NPOs()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p %d %d\n", next-1, nClauses)
	fmt.Fprintf(bw, "-1 0\n")

	for _, p := range g.POs() {
		fmt.Fprintf(bw, "%d 0\n", cnfLit(p.Fanin))
	}

	for _, a := range ands {
		left, right := g.AndFanins(a)
		x, y, z := cnfLit(a), cnfLit(left), cnfLit(right)
		fmt.Fprintf(bw, "%d %d 0\n", -x, y)
		fmt.Fprintf(bw, "%d %d 0\n", -x, z)
		fmt.Fprintf(bw, "%d %d %d 0\n", x, -y, -z)
	}

	if err := bw.Flush(); err != nil {
		return nil, err
	}
	return vars, nil
}
