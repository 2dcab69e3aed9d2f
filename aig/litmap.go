// SPDX-License-Identifier: MIT
// Package: aigkit/aig
//
// litmap.go — LitMap is a literal-to-literal map that takes negation into
// account, used by Clean, Compose, and ExtractJusticePO to remember which
// destination literal a source literal was rebuilt as. It is seeded with
// CONST0 -> CONST0.
package aig

// LitMap maps literals from one graph's numbering to another's, handling
// negation transparently: Get/Set always operate on the positive identity
// internally and apply NegateIfNegated on the way in and out.
type LitMap struct {
	m map[Lit]Lit
}

// NewLitMap returns a LitMap seeded with CONST0 -> CONST0.
func NewLitMap() *LitMap {
	return &LitMap{m: map[Lit]Lit{ConstFalse: ConstFalse}}
}

// Get returns the destination literal for f, with f's polarity applied to
// the stored positive mapping.
func (lm *LitMap) Get(f Lit) (Lit, bool) {
	v, ok := lm.m[Positive(f)]
	if !ok {
		return 0, false
	}
	return NegateIfNegated(v, f), true
}

// MustGet is Get without the ok result, for call sites that have already
// established f is mapped.
func (lm *LitMap) MustGet(f Lit) Lit {
	v, _ := lm.Get(f)
	return v
}

// Set records that source literal f maps to destination literal g,
// normalizing by f's polarity.
func (lm *LitMap) Set(f, g Lit) {
	lm.m[Positive(f)] = NegateIfNegated(g, f)
}

// Has reports whether f's positive identity is already mapped.
func (lm *LitMap) Has(f Lit) bool {
	_, ok := lm.m[Positive(f)]
	return ok
}
