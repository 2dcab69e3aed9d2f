// SPDX-License-Identifier: MIT
// Package: aigkit/sim
//
// format.go — FormatTrace, a supplemented pretty-printer grounded on
// pyaig's print_cex: one row per named signal, one column per frame,
// names padded on the right to the longest name, "?" for any value
// outside {0,1}.
package sim

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aigkit/aigkit/aig"
)

// FormatTrace renders frames as one line per (name, literal) pair in
// symbols, sorted by name, each followed by its value in every frame.
func FormatTrace(frames []*Frame, symbols map[string]aig.Lit) string {
	if len(symbols) == 0 {
		return ""
	}

	names := make([]string, 0, len(symbols))
	maxLen := 0
	for n := range symbols {
		names = append(names, n)
		if len(n) > maxLen {
			maxLen = len(n)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	for _, n := range names {
		f := symbols[n]
		fmt.Fprintf(&b, "%-*s:", maxLen, n)
		for _, fr := range frames {
			v := fr.Get(f)
			s := "?"
			if v == 0 || v == 1 {
				s = fmt.Sprintf("%d", v)
			}
			fmt.Fprintf(&b, " %s", s)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
