// SPDX-License-Identifier: MIT
// Package: aigkit/aig
//
// names.go — two bijections (positive-literal <-> name, po-id <-> name)
// with deterministic iteration, plus FillPINames/FillPONames which assign
// sequential names to any unnamed PI/PO by incrementing a counter until a
// fresh name is produced.
package aig

import "fmt"

// SetName binds name to the positive literal f. Negated literals cannot
// be named (ErrNegatedName); an already-bound name or literal is
// ErrNameCollision. SetName never rebinds — callers remove first.
func (g *Graph) SetName(f Lit, name string) error {
	if IsNegated(f) {
		return fmt.Errorf("SetName(%d,%q): %w", f, name, ErrNegatedName)
	}
	if _, ok := g.nameToLit[name]; ok {
		return fmt.Errorf("SetName(%d,%q): %w", f, name, ErrNameCollision)
	}
	if _, ok := g.litToName[f]; ok {
		return fmt.Errorf("SetName(%d,%q): %w", f, name, ErrNameCollision)
	}
	g.nameToLit[name] = f
	g.litToName[f] = name
	return nil
}

// GetIDByName returns the literal bound to name, and whether it exists.
func (g *Graph) GetIDByName(name string) (Lit, bool) {
	f, ok := g.nameToLit[name]
	return f, ok
}

// HasName reports whether literal f has a bound name.
func (g *Graph) HasName(f Lit) bool {
	_, ok := g.litToName[f]
	return ok
}

// NameExists reports whether name is already bound to some literal.
func (g *Graph) NameExists(name string) bool {
	_, ok := g.nameToLit[name]
	return ok
}

// GetNameByID returns the name bound to literal f, and whether it exists.
func (g *Graph) GetNameByID(f Lit) (string, bool) {
	n, ok := g.litToName[f]
	return n, ok
}

// RemoveName unbinds literal f's name.
func (g *Graph) RemoveName(f Lit) {
	if name, ok := g.litToName[f]; ok {
		delete(g.litToName, f)
		delete(g.nameToLit, name)
	}
}

// IterNames returns a snapshot of every (literal, name) pair.
func (g *Graph) IterNames() map[Lit]string {
	out := make(map[Lit]string, len(g.litToName))
	for k, v := range g.litToName {
		out[k] = v
	}
	return out
}

// SetPOName binds name to PO po. An out-of-range id, already-bound name,
// or already-named PO is an error.
func (g *Graph) SetPOName(poID int, name string) error {
	if poID < 0 || poID >= len(g.pos) {
		return fmt.Errorf("SetPOName(%d,%q): %w", poID, name, ErrPOOutOfRange)
	}
	if _, ok := g.nameToPO[name]; ok {
		return fmt.Errorf("SetPOName(%d,%q): %w", poID, name, ErrNameCollision)
	}
	if _, ok := g.poToName[poID]; ok {
		return fmt.Errorf("SetPOName(%d,%q): %w", poID, name, ErrNameCollision)
	}
	g.nameToPO[name] = poID
	g.poToName[poID] = name
	return nil
}

// GetPOByName returns the PO id bound to name, and whether it exists.
func (g *Graph) GetPOByName(name string) (int, bool) {
	id, ok := g.nameToPO[name]
	return id, ok
}

// POHasName reports whether PO po has a bound name.
func (g *Graph) POHasName(poID int) bool {
	_, ok := g.poToName[poID]
	return ok
}

// RemovePOName unbinds PO po's name.
func (g *Graph) RemovePOName(poID int) {
	if name, ok := g.poToName[poID]; ok {
		delete(g.poToName, poID)
		delete(g.nameToPO, name)
	}
}

// GetNameByPO returns the name bound to PO po, and whether it exists.
func (g *Graph) GetNameByPO(poID int) (string, bool) {
	n, ok := g.poToName[poID]
	return n, ok
}

// FillPINames assigns template+N (incrementing N from 0 until the name is
// fresh) to every unnamed PI, in construction order.
func (g *Graph) FillPINames(template string) {
	n := 0
	for _, pi := range g.pis {
		if g.HasName(pi) {
			continue
		}
		name := freshName(template, &n, g.NameExists)
		_ = g.SetName(pi, name)
	}
}

// FillPONames assigns template+N (incrementing N from 0 until the name is
// fresh) to every unnamed PO, in creation order.
func (g *Graph) FillPONames(template string) {
	n := 0
	for id := range g.pos {
		if g.POHasName(id) {
			continue
		}
		name := freshName(template, &n, func(s string) bool {
			_, ok := g.nameToPO[s]
			return ok
		})
		_ = g.SetPOName(id, name)
	}
}

func freshName(template string, counter *int, exists func(string) bool) string {
	for {
		name := fmt.Sprintf("%s%d", template, *counter)
		*counter++
		if !exists(name) {
			return name
		}
	}
}
