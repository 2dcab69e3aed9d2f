// SPDX-License-Identifier: MIT
//
// Package ttaig evaluates And-Inverter Graphs into truth tables: AIGToTT
// converts a purely combinational AIG wholesale, seeding one truth-table
// variable per PI; CutToTT computes the truth table of a single literal
// with respect to an arbitrary ordered cut, forcing everything outside
// the cut's trailing N members to constant-0.
//
// AI-Hints (practical):
//   - AIGToTT rejects any AIG with latches or buffers (aig.ErrNotCombinational).
//   - CutToTT is iterative, not recursive, so it tolerates industrial-depth
//     AIGs; it memoizes exactly the literals it visits, not the whole graph.
package ttaig
