// SPDX-License-Identifier: MIT
// Package: aigkit/aiger
//
// reader.go — binary AIGER decoder, ported from pyaig's read_aiger_file:
// header, PIs, latches (init token rule), ASCII PO sections including
// justice group-size headers, the delta-encoded binary AND section, and
// the trailing symbol table.
package aiger

import (
	"bufio"
	"bytes"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/aigkit/aigkit/aig"
)

var symbolLineRe = regexp.MustCompile(`^([ilobcfj])(\d+) (.*)$`)

// ReadAIGER decodes a binary AIGER file from r into a fresh *aig.Graph.
// Decode failures are *DecodeError, wrapping one of the Err* sentinels.
func ReadAIGER(r io.Reader, opts ...ReadOption) (*aig.Graph, error) {
	cfg := newReadConfig(opts)
	br := bufio.NewReader(r)

	headerLine, err := br.ReadString('\n')
	if err != nil && headerLine == "" {
		return nil, decodeErr(0, ErrTruncated)
	}
	fields := strings.Fields(headerLine)
	if len(fields) < 6 || fields[0] != "aig" {
		return nil, decodeErr(0, ErrBadHeader)
	}

	counts := make([]int, len(fields)-1)
	for i, tok := range fields[1:] {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			return nil, decodeErr(0, ErrBadHeader)
		}
		counts[i] = n
	}
	_, I, L, O, A := counts[0], counts[1], counts[2], counts[3], counts[4]
	var B, C, J, F int
	if len(counts) > 5 {
		B = counts[5]
	}
	if len(counts) > 6 {
		C = counts[6]
	}
	if len(counts) > 7 {
		J = counts[7]
	}
	if len(counts) > 8 {
		F = counts[8]
	}

	cfg.log("aiger: decoding header", "pis", I, "latches", L, "outputs", O, "ands", A)

	g := aig.NewGraph()

	// vars[k] holds the positive literal of AIGER variable k; vars[0] is CONST0.
	vars := make([]aig.Lit, 1, I+L+A+1)
	vars[0] = aig.ConstFalse

	for i := 0; i < I; i++ {
		vars = append(vars, g.CreatePI(""))
	}

	type latchTok struct {
		next aig.Lit
		init aig.InitVal
	}
	latchToks := make([]latchTok, L)
	for i := 0; i < L; i++ {
		line, err := br.ReadString('\n')
		if err != nil && line == "" {
			return nil, decodeErr(-1, ErrTruncated)
		}
		toks := strings.Fields(line)
		if len(toks) == 0 {
			return nil, decodeErr(-1, ErrBadHeader)
		}
		next, err := strconv.Atoi(toks[0])
		if err != nil {
			return nil, decodeErr(-1, ErrBadHeader)
		}
		init := aig.InitZero
		if len(toks) >= 2 {
			switch toks[1] {
			case "0":
				init = aig.InitZero
			case "1":
				init = aig.InitOne
			default:
				init = aig.InitNondet
			}
		}
		latchToks[i] = latchTok{next: aig.Lit(next), init: init}
		vars = append(vars, g.CreateLatch("", init))
	}

	readLits := func(n int) ([]int, error) {
		out := make([]int, n)
		for i := 0; i < n; i++ {
			line, err := br.ReadString('\n')
			if err != nil && line == "" {
				return nil, decodeErr(-1, ErrTruncated)
			}
			v, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				return nil, decodeErr(-1, ErrBadHeader)
			}
			out[i] = v
		}
		return out, nil
	}

	posOutput, err := readLits(O)
	if err != nil {
		return nil, err
	}
	posBad, err := readLits(B)
	if err != nil {
		return nil, err
	}
	posConstraint, err := readLits(C)
	if err != nil {
		return nil, err
	}

	nJPos, err := readLits(J)
	if err != nil {
		return nil, err
	}
	posJustice := make([][]int, J)
	for i, n := range nJPos {
		grp, err := readLits(n)
		if err != nil {
			return nil, err
		}
		posJustice[i] = grp
	}

	posFairness, err := readLits(F)
	if err != nil {
		return nil, err
	}

	lit := func(x int) aig.Lit {
		return aig.NegateIf(vars[x>>1], x&1 != 0)
	}

	for i := 0; i < A; i++ {
		gLit := (I + L + 1 + i) << 1
		d1, err := getU(br)
		if err != nil {
			return nil, decodeErr(-1, ErrTruncated)
		}
		d2, err := getU(br)
		if err != nil {
			return nil, decodeErr(-1, ErrTruncated)
		}
		left := lit(gLit - int(d1))
		right := lit(gLit - int(d1) - int(d2))
		vars = append(vars, g.CreateAnd(left, right))
	}

	for i, tk := range latchToks {
		l := vars[I+1+i]
		if err := g.SetNext(l, lit(int(tk.next))); err != nil {
			return nil, decodeErr(-1, err)
		}
	}

	outputPOs := make([]int, O)
	for i, f := range posOutput {
		outputPOs[i] = g.CreatePO(lit(f), "", aig.POOutput)
	}
	badPOs := make([]int, B)
	for i, f := range posBad {
		badPOs[i] = g.CreatePO(lit(f), "", aig.POBadStates)
	}
	constraintPOs := make([]int, C)
	for i, f := range posConstraint {
		constraintPOs[i] = g.CreatePO(lit(f), "", aig.POConstraint)
	}
	for _, grp := range posJustice {
		ids := make([]int, len(grp))
		for i, f := range grp {
			ids[i] = g.CreatePO(lit(f), "", aig.POJustice)
		}
		if _, err := g.CreateJustice(ids); err != nil {
			return nil, decodeErr(-1, err)
		}
	}
	fairnessPOs := make([]int, F)
	for i, f := range posFairness {
		fairnessPOs[i] = g.CreatePO(lit(f), "", aig.POFairness)
	}

	for {
		line, err := br.ReadString('\n')
		line = strings.TrimRight(line, "\n")
		if line != "" {
			m := symbolLineRe.FindStringSubmatch(line)
			if m == nil {
				return nil, decodeErr(-1, ErrBadSymbol)
			}
			idx, convErr := strconv.Atoi(m[2])
			if convErr != nil {
				return nil, decodeErr(-1, ErrBadSymbol)
			}
			name := m[3]
			switch m[1] {
			case "i":
				bindIfFresh(g, vars[1+idx], name)
			case "l":
				bindIfFresh(g, vars[1+I+idx], name)
			case "o":
				if idx < len(outputPOs) {
					bindPOIfFresh(g, outputPOs[idx], name)
				}
			case "b":
				if idx < len(badPOs) {
					bindPOIfFresh(g, badPOs[idx], name)
				}
			case "c":
				if idx < len(constraintPOs) {
					bindPOIfFresh(g, constraintPOs[idx], name)
				}
			case "f":
				if idx < len(fairnessPOs) {
					bindPOIfFresh(g, fairnessPOs[idx], name)
				}
			case "j":
				if idx < len(posJustice) {
					grpIDs := g.JusticePOs(idx)
					if len(grpIDs) > 0 {
						bindPOIfFresh(g, grpIDs[0], name)
					}
				}
			}
		}
		if err != nil {
			break
		}
	}

	return g, nil
}

func bindIfFresh(g *aig.Graph, f aig.Lit, name string) {
	if !g.HasName(f) && !g.NameExists(name) {
		_ = g.SetName(f, name)
	}
}

func bindPOIfFresh(g *aig.Graph, poID int, name string) {
	if !g.POHasName(poID) {
		_ = g.SetPOName(poID, name)
	}
}

// ReadAIGERBytes is a convenience wrapper over ReadAIGER for an in-memory blob.
func ReadAIGERBytes(data []byte, opts ...ReadOption) (*aig.Graph, error) {
	return ReadAIGER(bytes.NewReader(data), opts...)
}
