// SPDX-License-Identifier: MIT
//
// Package sim drives an And-Inverter Graph combinationally, frame by
// frame, from an initial latch assignment and a sequence of PI
// assignments, and parses the AIGER-witness-like counter-example format
// those frames usually come from.
//
// AI-Hints (practical):
//   - Values is {0,1}-only; there is no "X"/unknown state.
//   - ReadCEX skips blank lines and lines starting with 'u' or 'c' before
//     the result/prop header lines, per the witness dialect this package
//     targets.
package sim
