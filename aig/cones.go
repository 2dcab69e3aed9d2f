// SPDX-License-Identifier: MIT
// Package: aigkit/aig
//
// cones.go — cone computation and topological ordering. Both are
// expressed as iterative DFS over an explicit stack so deep, industrial
// AIGs never overflow the goroutine stack; recursion is reserved for the
// call sites that are documented to tolerate it (ISOP, in package tt).
package aig

// FaninFunc selects which edges GetCone follows out of a literal.
type FaninFunc func(g *Graph, f Lit) []Lit

// CombFanins is the default fanin function: AND/BUFFER fanins only,
// treating latches as terminals.
func CombFanins(g *Graph, f Lit) []Lit { return positiveOf(g.Fanins(f)) }

// SeqFanins also follows LATCH -> next, closing sequential cycles.
func SeqFanins(g *Graph, f Lit) []Lit { return positiveOf(g.SeqFanins(f)) }

func positiveOf(fs []Lit) []Lit {
	out := make([]Lit, len(fs))
	for i, f := range fs {
		out[i] = Positive(f)
	}
	return out
}

// GetCone returns the set of positive literals reachable backward from
// roots via fanin (default: combinational), excluding anything in stop.
// Roots themselves are included unless also in stop. Traversal is an
// iterative DFS so it tolerates arbitrarily deep graphs.
func (g *Graph) GetCone(roots []Lit, stop map[Lit]struct{}, fanins FaninFunc) map[Lit]struct{} {
	if fanins == nil {
		fanins = CombFanins
	}
	visited := make(map[Lit]struct{})

	stack := make([]Lit, len(roots))
	copy(stack, roots)

	for len(stack) > 0 {
		cur := Positive(stack[len(stack)-1])
		stack = stack[:len(stack)-1]

		if _, skip := stop[cur]; skip {
			continue
		}
		if _, seen := visited[cur]; seen {
			continue
		}
		visited[cur] = struct{}{}

		for _, fi := range fanins(g, cur) {
			if _, seen := visited[fi]; !seen {
				stack = append(stack, fi)
			}
		}
	}

	return visited
}

// GetSeqCone is GetCone using the sequential fanin function (follows
// LATCH -> next in addition to AND/BUFFER fanins).
func (g *Graph) GetSeqCone(roots []Lit, stop map[Lit]struct{}) map[Lit]struct{} {
	return g.GetCone(roots, stop, SeqFanins)
}

// toposortFrame is one stack entry of the iterative topological sort: a
// literal together with the fanins of it that still need visiting.
type toposortFrame struct {
	lit     Lit
	fanins  []Lit
	visited bool
}

// TopologicalSort produces a post-order-derived topological ordering of
// the combinational fanin DAG reachable from roots, stopping at stop:
// fanins precede fanouts. Implemented iteratively with an explicit stack
// of (literal, remaining-fanins) frames, per the package's no-recursion
// policy for graph-sized traversals.
func (g *Graph) TopologicalSort(roots []Lit, stop map[Lit]struct{}) []Lit {
	visited := make(map[Lit]struct{})
	var order []Lit

	var stack []*toposortFrame

	push := func(f Lit) {
		f = Positive(f)
		if _, skip := stop[f]; skip {
			return
		}
		if _, seen := visited[f]; seen {
			return
		}
		stack = append(stack, &toposortFrame{lit: f, fanins: CombFanins(g, f)})
	}

	for i := len(roots) - 1; i >= 0; i-- {
		push(roots[i])
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if _, seen := visited[top.lit]; seen {
			stack = stack[:len(stack)-1]
			continue
		}

		advanced := false
		for len(top.fanins) > 0 {
			fi := top.fanins[0]
			top.fanins = top.fanins[1:]
			if _, skip := stop[fi]; skip {
				continue
			}
			if _, seen := visited[fi]; seen {
				continue
			}
			stack = append(stack, &toposortFrame{lit: fi, fanins: CombFanins(g, fi)})
			advanced = true
			break
		}
		if advanced {
			continue
		}

		visited[top.lit] = struct{}{}
		order = append(order, top.lit)
		stack = stack[:len(stack)-1]
	}

	return order
}

// BuildFanouts (re)computes the fanout index by walking construction
// order once. Call it before GetFanouts; it is not kept implicitly
// up to date across further mutation.
func (g *Graph) BuildFanouts() {
	g.fanouts = make(map[Lit]map[Lit]struct{})
	for _, f := range g.ConstructionOrder() {
		for _, fi := range positiveOf(g.Fanins(f)) {
			set, ok := g.fanouts[fi]
			if !ok {
				set = make(map[Lit]struct{})
				g.fanouts[fi] = set
			}
			set[f] = struct{}{}
		}
	}
}

// GetFanouts returns the union of fanouts of every literal in fs, per the
// index last built by BuildFanouts.
func (g *Graph) GetFanouts(fs []Lit) map[Lit]struct{} {
	res := make(map[Lit]struct{})
	for _, f := range fs {
		for fo := range g.fanouts[f] {
			res[fo] = struct{}{}
		}
	}
	return res
}
