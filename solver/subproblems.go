package solver

import (
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/coloring"
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/core"
)

// Subproblem is a partial assignment together with the obligation to
// extend it to a complete proper coloring. Sub-problems are value
// typed: each carries its own copy of the assignment, and ownership
// transfers to the worker that pops or receives it.
type Subproblem struct {
	Color coloring.Assignment
}

// GenerateSubproblems expands the search tree breadth-first to the
// given depth and returns the frontier as a work list.
//
// Each level picks the DSATUR vertex of every frontier sub-problem and
// emits one child per feasible color; infeasible branches are pruned in
// situ, so the list holds at most k^depth entries. A sub-problem whose
// assignment is already complete is carried forward unchanged.
//
// Because the chooser is deterministic, a worker continuing the search
// from any returned sub-problem reaches exactly the leaves under the
// corresponding branch of the serial search: the union over the list
// is the full search space with no overlap.
func GenerateSubproblems(g *core.Graph, k int, degree []int, depth int) []Subproblem {
	out := []Subproblem{{Color: coloring.NewAssignment(g.VertexCount())}}

	for level := 0; level < depth; level++ {
		next := make([]Subproblem, 0, len(out)*max(k, 1))

		for _, sp := range out {
			u := coloring.ChooseVertex(g, sp.Color, degree)
			if u == coloring.NoVertex {
				next = append(next, sp)
				continue
			}
			for c := 0; c < k; c++ {
				if !coloring.Feasible(g, u, c, sp.Color) {
					continue
				}
				child := sp.Color.Clone()
				child[u] = c
				next = append(next, Subproblem{Color: child})
			}
		}

		out = next
		if len(out) == 0 {
			break
		}
	}
	return out
}
