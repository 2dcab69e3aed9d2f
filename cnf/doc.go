// SPDX-License-Identifier: MIT
//
// Package cnf emits a minimal DIMACS CNF encoding of an And-Inverter
// Graph's combinational structure (Tseitin clauses per AND gate, unit
// clauses per PO fanin), the external-collaborator contract described
// alongside the AIGER codec.
package cnf
