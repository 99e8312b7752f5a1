package coloring

import (
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/core"
)

// Greedy runs the one-shot greedy DSATUR pass: repeatedly pick the next
// vertex with ChooseVertex and give it the smallest feasible color in
// {0..k−1}. It stops on completion or on the first vertex with no
// feasible color.
//
// Returns the assignment, the number of vertices visited, and whether
// every vertex received a color. A failed greedy pass proves nothing:
// the caller falls through to the exact search.
func Greedy(g *core.Graph, k int) (Assignment, int64, bool) {
	n := g.VertexCount()
	a := NewAssignment(n)
	degree := g.Degrees()

	var nodes int64
	for step := 0; step < n; step++ {
		u := ChooseVertex(g, a, degree)
		if u == NoVertex {
			break
		}
		nodes++

		placed := false
		for c := 0; c < k; c++ {
			if Feasible(g, u, c, a) {
				a[u] = c
				placed = true
				break
			}
		}
		if !placed {
			return nil, nodes, false
		}
	}
	return a, nodes, true
}
