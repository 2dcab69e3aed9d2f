// Package aigkit is your in-memory toolkit for building, encoding, and
// evaluating And-Inverter Graphs in Go.
//
// aigkit brings together:
//
//   - aig        — the literal-encoded, structurally-hashed graph itself:
//     PIs, latches, AND gates, typed primary outputs, justice groups,
//     cone/topological-order traversal, cleaning, and composition.
//   - aiger      — the binary AIGER file codec, plus a compact
//     marshal/unmarshal format for quick in-process round-tripping.
//   - tt         — a bignum-backed truth-table engine: cofactoring,
//     quantification, permutation, NPN-class traversal, and ISOP synthesis.
//   - ttaig      — evaluates AIGs into truth tables, wholesale or cut-wise.
//   - sim        — a combinational simulator and counter-example reader.
//   - cnf        — a minimal DIMACS CNF emitter (Tseitin encoding).
//   - cmd/aigctl — a small CLI built on the above.
//
// Quick mental model:
//
//	literal = (node_id << 1) | polarity
//
// every edge in the graph carries its own inversion bit, which is what
// makes structural hashing collapse equivalent logic for free.
//
// Dive into each subpackage's doc comment for the full API.
package aigkit
