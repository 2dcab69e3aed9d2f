// SPDX-License-Identifier: MIT
//
// Package tt implements a truth-table engine over bit-packed bignum masks:
// an N-input Boolean function is a 2^N-bit mask, and a Universe caches the
// per-variable cofactor masks needed to cofactor, permute, and existentially
// or universally quantify any function over those N inputs in closed form.
//
// The package also provides ISOP (irredundant sum-of-products) synthesis
// and NPN-class traversal (all functions reachable from one by input
// permutation, input negation, and output negation).
//
// AI-Hints (practical):
//   - Build one Universe per arity with NewUniverse(n); every TruthTable it
//     produces (via Var/Const) shares that Universe and can be combined
//     freely with And/Or/Xor/Not.
//   - Permutations/Negations/AllNPN are Go 1.23 range-over-func iterators;
//     range over them directly rather than collecting to a slice first.
package tt
