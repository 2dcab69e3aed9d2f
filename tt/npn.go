// SPDX-License-Identifier: MIT
// Package: aigkit/tt
//
// npn.go — NPN-class traversal: Permutations walks all n! input
// permutations via a Heap-like next-permutation swap sequence reflected
// into Permute calls; Negations walks all 2^n input negation masks;
// AllNPN composes both with output negation.
package tt

// Permutations yields t under every permutation of its input variables,
// each exactly once and starting with t itself, via a next-permutation
// swap algorithm whose swaps are mirrored as Permute calls on the running
// function (one Permute per swap, rather than rebuilding each permuted
// function from t).
func (t TruthTable) Permutations() func(yield func(TruthTable) bool) {
	return func(yield func(TruthTable) bool) {
		n := t.NVars()
		a := make([]int, n)
		for i := range a {
			a[i] = i
		}
		cur := t

		for {
			if !yield(cur) {
				return
			}

			j := -1
			for k := 1; k < n; k++ {
				if a[k] > a[k-1] {
					j = k
					break
				}
			}
			if j == -1 {
				return
			}

			l := -1
			for k := 0; k < n; k++ {
				if a[j] > a[k] {
					l = k
					break
				}
			}
			a[j], a[l] = a[l], a[j]
			cur = cur.Permute(l, j)

			k, l := j-1, 0
			for k > l {
				a[k], a[l] = a[l], a[k]
				cur = cur.Permute(l, k)
				k--
				l++
			}
		}
	}
}

// Negations yields every function derived from t by negating some subset
// of its input variables, indexed by mask m in [0, 2^n).
func (t TruthTable) Negations() func(yield func(TruthTable) bool) {
	return func(yield func(TruthTable) bool) {
		n := t.NVars()
		for m := 0; m < (1 << uint(n)); m++ {
			cur := t.Copy()
			for v := 0; v < n; v++ {
				if m&(1<<uint(v)) != 0 {
					cur = cur.NegateVar(v)
				}
			}
			if !yield(cur) {
				return
			}
		}
	}
}

// AllNPN yields every function in t's NPN class: every permutation, every
// input negation of that permutation, and both output polarities.
func (t TruthTable) AllNPN() func(yield func(TruthTable) bool) {
	return func(yield func(TruthTable) bool) {
		for p := range t.Permutations() {
			for n := range p.Negations() {
				if !yield(n) {
					return
				}
				if !yield(n.Not()) {
					return
				}
			}
		}
	}
}
